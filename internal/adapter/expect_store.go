package adapter

import (
	"os"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// ExpectStore reads and writes stored expectation files. Reads report
// absence separately from failure: a missing file is a legitimate
// state, not an error.
type ExpectStore interface {
	m.ExpectWriter

	// ReadExpect returns the file content and whether it exists.
	ReadExpect(path m.Path) (content string, ok bool, err error)
}

// LocalExpectStore is the os-backed ExpectStore implementation.
type LocalExpectStore struct{}

// NewLocalExpectStore constructs a LocalExpectStore.
func NewLocalExpectStore() *LocalExpectStore {
	return &LocalExpectStore{}
}

// ReadExpect loads the expect file at path. ok is false when no file
// is stored there.
func (s *LocalExpectStore) ReadExpect(path m.Path) (string, bool, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}

		return "", false, err
	}

	return string(data), true, nil
}

// WriteExpect stores content at path, overwriting any previous
// expectation.
func (s *LocalExpectStore) WriteExpect(path m.Path, content string) error {
	return os.WriteFile(string(path), []byte(content), 0o644)
}
