// Package domain holds the expect-testing core: canonical
// serialization of captured output, classification against stored
// expectations, and the suite runner that ties them together.
package domain

import (
	"strconv"
	"strings"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// ExpectExtension is the extension of stored expectation files.
const ExpectExtension = "expect"

// FormatExpect serializes a test's captured output into the canonical
// expect string:
//
//	---CODE---
//	<exit status>
//	---STDOUT---
//	<stdout>---STDERR---
//	<stderr>
//
// The output is byte-exact: nothing is normalized, truncated, or
// escaped. If stdout or stderr itself contains a section marker the
// result is ambiguous to re-parse; the format is write/compare only
// and is never parsed back into components.
func FormatExpect(status int, stdout, stderr string) string {
	var buf strings.Builder

	buf.WriteString("---CODE---\n")
	buf.WriteString(strconv.Itoa(status))
	buf.WriteString("\n")

	buf.WriteString("---STDOUT---\n")
	buf.WriteString(stdout)

	buf.WriteString("---STDERR---\n")
	buf.WriteString(stderr)

	return buf.String()
}

// ExpectPath resolves the expect file location for a test: the test's
// own path with its extension replaced by ".expect".
func ExpectPath(path m.Path) m.Path {
	return path.WithExtension(ExpectExtension)
}

// Classify compares a generated expect string against the stored one.
// A nil stored value means no expectation has been recorded yet.
// Equality is exact byte comparison; this is the single decision
// point for pass/fail/new semantics.
func Classify(generated string, stored *string) m.Outcome {
	if stored == nil {
		return m.Missing{Generated: generated}
	}

	if *stored == generated {
		return m.Correct{}
	}

	return m.Mismatch{Generated: generated, Stored: *stored}
}
