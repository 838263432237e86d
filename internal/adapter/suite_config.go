package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// SuiteConfig is the on-disk shape of a goldrun configuration file.
// Tool settings live alongside it under their own keys and are read
// through viper; only the suite definitions are decoded here.
type SuiteConfig struct {
	Suites []m.Suite `yaml:"suites"`
}

// SuiteConfigAdapter loads suite definitions and discovers their
// test files.
type SuiteConfigAdapter interface {
	LoadSuites(path m.Path) ([]m.Suite, error)
	DiscoverTests(suite m.Suite) ([]m.Path, error)
}

// LocalSuiteConfigAdapter is the os-backed SuiteConfigAdapter.
type LocalSuiteConfigAdapter struct{}

// NewLocalSuiteConfigAdapter constructs a LocalSuiteConfigAdapter.
func NewLocalSuiteConfigAdapter() *LocalSuiteConfigAdapter {
	return &LocalSuiteConfigAdapter{}
}

// LoadSuites reads and decodes the suite definitions from the config
// file at path.
func (a *LocalSuiteConfigAdapter) LoadSuites(path m.Path) ([]m.Suite, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg SuiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	for i, suite := range cfg.Suites {
		if strings.TrimSpace(suite.Name) == "" {
			return nil, fmt.Errorf("config %s: suite %d has no name", path, i)
		}

		if strings.TrimSpace(suite.Cmd) == "" {
			return nil, fmt.Errorf("config %s: suite %q has no cmd", path, suite.Name)
		}
	}

	return cfg.Suites, nil
}

// DiscoverTests expands the suite's glob patterns into the ordered
// list of test paths. Matches are sorted within each pattern so runs
// are deterministic; expect files are never tests themselves.
func (a *LocalSuiteConfigAdapter) DiscoverTests(suite m.Suite) ([]m.Path, error) {
	var tests []m.Path

	seen := make(map[string]bool)

	for _, pattern := range suite.Paths {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("suite %q: bad pattern %q: %w", suite.Name, pattern, err)
		}

		sort.Strings(matches)

		for _, match := range matches {
			if filepath.Ext(match) == ".expect" || seen[match] {
				continue
			}

			seen[match] = true
			tests = append(tests, m.Path(match))
		}
	}

	return tests, nil
}
