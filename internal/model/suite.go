package model

import (
	"errors"
	"fmt"
	"io"
)

// Suite describes one configured test suite: a name, glob patterns
// selecting test files, and the command template used to run them.
type Suite struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
	Cmd   string   `yaml:"cmd"`
}

// ReportOpts controls how a suite result is rendered. Style, when
// set, is applied to each report head line; color belongs to the
// presentation layer, not to the result model.
type ReportOpts struct {
	ShowDiff bool
	Diff     DiffFunc
	Style    func(Category, string) string
	// StyleName decorates the suite name in the report header.
	StyleName func(string) string
}

// ErrConsumed is returned when a suite result is printed twice.
var ErrConsumed = errors.New("suite result already consumed")

// SuiteResult aggregates the results of running one suite. Results
// keeps discovery order. Errors collects suite-level execution
// failures, which are reported separately and are never test outcomes.
type SuiteResult struct {
	Name    string
	Results []TestResult
	Errors  []error

	consumed bool
}

// Filter returns a new suite result narrowed to the requested
// category. A nil filter keeps every result. Order is preserved and
// suite-level errors always pass through untouched.
func (s SuiteResult) Filter(only *Category) SuiteResult {
	if only == nil {
		return SuiteResult{Name: s.Name, Results: s.Results, Errors: s.Errors}
	}

	kept := make([]TestResult, 0, len(s.Results))

	for _, res := range s.Results {
		if res.Category() == *only {
			kept = append(kept, res)
		}
	}

	return SuiteResult{Name: s.Name, Results: kept, Errors: s.Errors}
}

// Print renders the suite report to w and consumes the result: a
// second call returns ErrConsumed. totalTests is the number of tests
// before any filtering, so the header stays honest when the body has
// been narrowed.
func (s *SuiteResult) Print(w io.Writer, totalTests int, opts ReportOpts) error {
	if s.consumed {
		return ErrConsumed
	}

	s.consumed = true

	style := opts.Style
	if style == nil {
		style = func(_ Category, line string) string { return line }
	}

	styleName := opts.StyleName
	if styleName == nil {
		styleName = func(name string) string { return name }
	}

	if _, err := fmt.Fprintf(w, "%s (%d tests)\n", styleName(s.Name), totalTests); err != nil {
		return err
	}

	for i := range s.Results {
		res := &s.Results[i]

		line := res.ReportStr(opts.ShowDiff, opts.Diff)
		head := res.ReportHead()
		line = style(res.Category(), head) + line[len(head):]

		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}

	if len(s.Errors) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "  %s\n", style(CategoryFail, "suite errors")); err != nil {
		return err
	}

	for _, suiteErr := range s.Errors {
		if _, err := fmt.Fprintf(w, "    %s\n", style(CategoryFail, suiteErr.Error())); err != nil {
			return err
		}
	}

	return nil
}
