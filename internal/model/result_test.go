package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore counts writes so tests can assert that a Correct
// result never touches the store.
type recordingStore struct {
	writes   int
	lastPath Path
	lastBody string
	err      error
}

func (s *recordingStore) WriteExpect(path Path, content string) error {
	s.writes++
	s.lastPath = path
	s.lastBody = content

	return s.err
}

func TestPathWithExtension(t *testing.T) {
	tests := []struct {
		name string
		in   Path
		want Path
	}{
		{"simple", "tests/basic.tcl", "tests/basic.expect"},
		{"no extension", "tests/basic", "tests/basic.expect"},
		{"dotted directory", "suite.d/case", "suite.d/case.expect"},
		{"multiple dots", "tests/case.gen.tcl", "tests/case.gen.expect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithExtension("expect"))
		})
	}
}

func TestTestResultCategory(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    Category
	}{
		{"correct is pass", Correct{}, CategoryPass},
		{"mismatch is fail", Mismatch{Generated: "a", Stored: "b"}, CategoryFail},
		{"missing is miss", Missing{Generated: "a"}, CategoryMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TestResult{Path: "tests/a.tcl", Outcome: tt.outcome}
			assert.Equal(t, tt.want, res.Category())
		})
	}
}

func TestSaveResults_CorrectWritesNothing(t *testing.T) {
	store := &recordingStore{}
	res := TestResult{Path: "tests/a.tcl", Outcome: Correct{}}

	require.NoError(t, res.SaveResults(store))
	assert.Zero(t, store.writes)
}

func TestSaveResults_MissingWritesGenerated(t *testing.T) {
	store := &recordingStore{}
	res := TestResult{
		Path:    "tests/a.tcl",
		Outcome: Missing{Generated: "---CODE---\n0\n---STDOUT---\n---STDERR---\n"},
	}

	require.NoError(t, res.SaveResults(store))
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, Path("tests/a.expect"), store.lastPath)
	assert.Equal(t, "---CODE---\n0\n---STDOUT---\n---STDERR---\n", store.lastBody)
}

func TestSaveResults_MismatchOverwritesStored(t *testing.T) {
	store := &recordingStore{}
	res := TestResult{
		Path:    "tests/a.tcl",
		Outcome: Mismatch{Generated: "new", Stored: "old"},
	}

	require.NoError(t, res.SaveResults(store))
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, "new", store.lastBody)
}

func TestSaveResults_WriteErrorSurfaces(t *testing.T) {
	store := &recordingStore{err: assert.AnError}
	res := TestResult{Path: "tests/a.tcl", Outcome: Missing{Generated: "x"}}

	require.ErrorIs(t, res.SaveResults(store), assert.AnError)
}

func TestReportStr_Correct(t *testing.T) {
	res := TestResult{Path: "tests/ok.tcl", Outcome: Correct{}}

	called := false
	diff := func(_, _ string) string { called = true; return "" }

	assert.Equal(t, "⚬ pass - tests/ok.tcl", res.ReportStr(true, diff))
	assert.False(t, called, "diff must not run for a correct result")
}

func TestReportStr_MissingAppendsGenerated(t *testing.T) {
	res := TestResult{Path: "tests/new.tcl", Outcome: Missing{Generated: "blob"}}

	assert.Equal(t, "⚬ miss - tests/new.tcl", res.ReportStr(false, nil))
	assert.Equal(t, "⚬ miss - tests/new.tcl\nblob", res.ReportStr(true, nil))
}

func TestReportStr_MismatchDiffArgumentOrder(t *testing.T) {
	stored := "---CODE---\n1\n---STDOUT---\n---STDERR---\n"
	generated := "---CODE---\n0\n---STDOUT---\n---STDERR---\n"
	res := TestResult{
		Path:    "tests/exit.tcl",
		Outcome: Mismatch{Generated: generated, Stored: stored},
	}

	var gotFirst, gotSecond string

	out := res.ReportStr(true, func(a, b string) string {
		gotFirst, gotSecond = a, b
		return "DIFF"
	})

	assert.Equal(t, "⚬ fail - tests/exit.tcl\nDIFF", out)
	assert.Equal(t, stored, gotFirst, "stored file content goes first")
	assert.Equal(t, generated, gotSecond)
}

func TestReportStr_MismatchWithoutDiffFlag(t *testing.T) {
	res := TestResult{Path: "tests/exit.tcl", Outcome: Mismatch{Generated: "g", Stored: "s"}}

	assert.Equal(t, "⚬ fail - tests/exit.tcl", res.ReportStr(false, nil))
}
