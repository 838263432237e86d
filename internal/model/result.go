// Package model defines the data structures for expect testing.
package model

import (
	"strings"
)

// Path represents a file system path.
type Path string

// WithExtension returns the path with its final extension segment
// replaced by ext. A path without an extension gets ext appended.
func (p Path) WithExtension(ext string) Path {
	s := string(p)

	dot := strings.LastIndexByte(s, '.')
	slash := strings.LastIndexByte(s, '/')

	if dot > slash {
		s = s[:dot]
	}

	return Path(s + "." + ext)
}

// Outcome is the classification of one test: exactly one of Correct,
// Missing, or Mismatch. The set is sealed; every consumer switches
// over all three variants.
type Outcome interface {
	outcome()
}

// Correct means the generated expectation matched the stored one.
type Correct struct{}

// Missing means no expectation is stored yet. Generated holds the
// expect string that would become the new expectation.
type Missing struct {
	Generated string
}

// Mismatch means the stored expectation exists and differs. Both texts
// are retained verbatim for diffing and persistence.
type Mismatch struct {
	Generated string // freshly generated expect string
	Stored    string // contents of the expect file on disk
}

func (Correct) outcome()  {}
func (Missing) outcome()  {}
func (Mismatch) outcome() {}

// Category is the reporting bucket an outcome falls into. It is also
// the value of the --only filter.
type Category string

const (
	// CategoryPass selects tests whose outcome is Correct.
	CategoryPass Category = "pass"
	// CategoryFail selects tests whose outcome is Mismatch.
	CategoryFail Category = "fail"
	// CategoryMiss selects tests with no stored expectation.
	CategoryMiss Category = "miss"
)

// DiffFunc renders a human-readable delta between two texts. The
// stored (on-disk) text comes first, the generated text second.
type DiffFunc func(stored, generated string) string

// ExpectWriter persists expect file content. Implemented by the
// adapter layer so the model stays off the filesystem.
type ExpectWriter interface {
	WriteExpect(path Path, content string) error
}

// TestResult holds everything captured and derived for one test.
// It is immutable once constructed.
type TestResult struct {
	Path   Path   // identity of the test, unique within a suite run
	Status int    // raw exit status
	Stdout string // captured stdout, byte-exact
	Stderr string // captured stderr, byte-exact
	Index  int    // discovery order within the suite

	Outcome Outcome
}

// Category maps the outcome to its reporting bucket.
func (r *TestResult) Category() Category {
	switch r.Outcome.(type) {
	case Correct:
		return CategoryPass
	case Mismatch:
		return CategoryFail
	case Missing:
		return CategoryMiss
	}

	return CategoryMiss
}

// SaveResults writes the generated expect string to the expect file.
// A Correct result touches nothing: no write, no mtime change.
func (r *TestResult) SaveResults(store ExpectWriter) error {
	switch out := r.Outcome.(type) {
	case Correct:
		return nil
	case Missing:
		return store.WriteExpect(r.Path.WithExtension("expect"), out.Generated)
	case Mismatch:
		return store.WriteExpect(r.Path.WithExtension("expect"), out.Generated)
	}

	return nil
}

// ReportHead returns the one-line summary for this test, tagged by
// category. Styling is the caller's job.
func (r *TestResult) ReportHead() string {
	return "⚬ " + string(r.Category()) + " - " + string(r.Path)
}

// ReportStr renders the report for this test. When showDiff is set a
// Missing result appends the generated expect string verbatim (there
// is nothing to diff against) and a Mismatch appends diff(stored,
// generated). Correct never appends anything.
func (r *TestResult) ReportStr(showDiff bool, diff DiffFunc) string {
	var buf strings.Builder

	buf.WriteString(r.ReportHead())

	switch out := r.Outcome.(type) {
	case Correct:
	case Missing:
		if showDiff {
			buf.WriteString("\n")
			buf.WriteString(out.Generated)
		}
	case Mismatch:
		if showDiff && diff != nil {
			buf.WriteString("\n")
			buf.WriteString(diff(out.Stored, out.Generated))
		}
	}

	return buf.String()
}
