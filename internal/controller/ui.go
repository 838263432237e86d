// Package controller provides output adapters for displaying expect
// test results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// SuiteSummary holds the per-suite counters shown in the run summary
// table. Counters reflect the suite before any --only filtering.
type SuiteSummary struct {
	Name string
	Pass int
	Fail int
	Miss int
	Errs int
}

// SuiteListing describes one configured suite for the list command.
type SuiteListing struct {
	Name  string
	Tests int
	Cmd   string
}

// UI defines the interface for displaying suite runs and results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// StartRun announces a run of totalTests tests across threads
	// workers.
	StartRun(totalTests, threads int)
	// TestCompleted reports one finished test. May be called from
	// worker goroutines in any order.
	TestCompleted(res m.TestResult)
	// FinishRun closes whatever StartRun opened.
	FinishRun()
	// DisplaySuiteResult renders and consumes one suite result.
	DisplaySuiteResult(suite m.SuiteResult, totalTests int, showDiff bool, diff m.DiffFunc) error
	// DisplayRunSummary renders the per-suite counter table.
	DisplayRunSummary(rows []SuiteSummary) error
	// DisplaySuiteList renders the configured suites table.
	DisplaySuiteList(rows []SuiteListing) error
}

// NewUI selects the UI implementation: interactive terminals get the
// TUI, everything else the plain printer.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
