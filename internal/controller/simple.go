package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/goldrun/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	nameStyle = lipgloss.NewStyle().Bold(true)
)

// styleLine colors a report line by its category.
func styleLine(cat m.Category, line string) string {
	switch cat {
	case m.CategoryPass:
		return passStyle.Render(line)
	case m.CategoryFail:
		return failStyle.Render(line)
	case m.CategoryMiss:
		return missStyle.Render(line)
	}

	return line
}

// reportOpts bundles the shared presentation options for printing a
// suite result.
func reportOpts(showDiff bool, diff m.DiffFunc) m.ReportOpts {
	return m.ReportOpts{
		ShowDiff: showDiff,
		Diff:     diff,
		Style:    styleLine,
		StyleName: func(name string) string {
			return nameStyle.Render(name)
		},
	}
}

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// StartRun announces the run.
func (s *SimpleUI) StartRun(totalTests, threads int) {
	s.printf("Running %d tests with %d worker(s)\n", totalTests, threads)
}

// TestCompleted is a no-op: the plain printer reports per suite, not
// per test.
func (s *SimpleUI) TestCompleted(_ m.TestResult) {}

// FinishRun is a no-op for SimpleUI.
func (s *SimpleUI) FinishRun() {}

// DisplaySuiteResult prints the suite report with colored category
// tags. This consumes the suite result.
func (s *SimpleUI) DisplaySuiteResult(suite m.SuiteResult, totalTests int, showDiff bool, diff m.DiffFunc) error {
	return suite.Print(s.cmd.OutOrStdout(), totalTests, reportOpts(showDiff, diff))
}

// DisplayRunSummary renders the per-suite pass/fail/miss table.
func (s *SimpleUI) DisplayRunSummary(rows []SuiteSummary) error {
	s.printf("\n%s", renderSummaryTable(rows))
	return nil
}

// DisplaySuiteList renders the configured suites and their discovered
// test counts.
func (s *SimpleUI) DisplaySuiteList(rows []SuiteListing) error {
	s.printf("\n%s", renderSuiteListTable(rows))
	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(rows []SuiteSummary) string {
	totals := SuiteSummary{Name: "total"}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Pass", "Fail", "Miss", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, row := range rows {
		table.Append([]string{
			row.Name,
			fmt.Sprintf("%d", row.Pass),
			fmt.Sprintf("%d", row.Fail),
			fmt.Sprintf("%d", row.Miss),
			fmt.Sprintf("%d", row.Errs),
		})

		totals.Pass += row.Pass
		totals.Fail += row.Fail
		totals.Miss += row.Miss
		totals.Errs += row.Errs
	}

	table.SetFooter([]string{
		totals.Name,
		fmt.Sprintf("%d", totals.Pass),
		fmt.Sprintf("%d", totals.Fail),
		fmt.Sprintf("%d", totals.Miss),
		fmt.Sprintf("%d", totals.Errs),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSuiteListTable(rows []SuiteListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Tests", "Cmd"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	totalTests := 0

	for _, row := range rows {
		table.Append([]string{row.Name, fmt.Sprintf("%d", row.Tests), row.Cmd})

		totalTests += row.Tests
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", len(rows)),
		fmt.Sprintf("%d", totalTests),
		"",
	})

	table.Render()

	return tableBuffer.String()
}
