package controller

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// StartRun opens the live progress view.
func (t *TUI) StartRun(totalTests, threads int) {
	model := newProgressModel(totalTests, threads)

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		_, _ = t.program.Run()
		close(t.done)
	}()
}

// TestCompleted feeds one finished test into the progress view. Safe
// to call from worker goroutines.
func (t *TUI) TestCompleted(res m.TestResult) {
	if t.program == nil {
		return
	}

	t.program.Send(testDoneMsg{category: res.Category()})
}

// FinishRun closes the progress view and waits for it to stop.
func (t *TUI) FinishRun() {
	if t.program == nil {
		return
	}

	t.program.Send(runFinishedMsg{})
	<-t.done
	t.program = nil
}

// DisplaySuiteResult renders the suite report, paginating when it
// does not fit the terminal. This consumes the suite result.
func (t *TUI) DisplaySuiteResult(suite m.SuiteResult, totalTests int, showDiff bool, diff m.DiffFunc) error {
	var buf bytes.Buffer
	if err := suite.Print(&buf, totalTests, reportOpts(showDiff, diff)); err != nil {
		return err
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	model := newPagerModel(lines)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the report is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayRunSummary renders the per-suite counter table.
func (t *TUI) DisplayRunSummary(rows []SuiteSummary) error {
	_, err := fmt.Fprintf(t.output, "\n%s", renderSummaryTable(rows))
	return err
}

// DisplaySuiteList renders the configured suites table.
func (t *TUI) DisplaySuiteList(rows []SuiteListing) error {
	_, err := fmt.Fprintf(t.output, "\n%s", renderSuiteListTable(rows))
	return err
}

// testDoneMsg reports one classified test to the progress model.
type testDoneMsg struct {
	category m.Category
}

// runFinishedMsg tells the progress model to quit.
type runFinishedMsg struct{}

// progressModel is the Bubble Tea model for the live run progress.
type progressModel struct {
	spinner  spinner.Model
	total    int
	threads  int
	pass     int
	fail     int
	miss     int
	quitting bool
}

func newProgressModel(total, threads int) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return progressModel{
		spinner: s,
		total:   total,
		threads: threads,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case testDoneMsg:
		switch msg.category {
		case m.CategoryPass:
			pm.pass++
		case m.CategoryFail:
			pm.fail++
		case m.CategoryMiss:
			pm.miss++
		}

		return pm, nil

	case runFinishedMsg:
		pm.quitting = true
		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	return pm, nil
}

func (pm progressModel) View() string {
	if pm.quitting {
		return ""
	}

	completed := pm.pass + pm.fail + pm.miss

	return fmt.Sprintf("%s running tests %d/%d with %d worker(s) (pass %d | fail %d | miss %d)\n",
		pm.spinner.View(), completed, pm.total, pm.threads, pm.pass, pm.fail, pm.miss)
}

// pagerModel is the Bubble Tea model for scrolling long suite reports.
type pagerModel struct {
	lines    []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(lines []string) pagerModel {
	return pagerModel{
		lines:    lines,
		height:   0, // Will be set on first WindowSizeMsg
		width:    0,
		offset:   0,
		quitting: false,
	}
}

func (pg pagerModel) Init() tea.Cmd {
	return nil
}

func (pg pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pg.height = msg.Height
		pg.width = msg.Width

		return pg, nil

	case tea.KeyMsg:
		return pg.handleKeyPress(msg)
	}

	return pg, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pg pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pg.quitting = true
		return pg, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pg.quitting = true
		return pg, tea.Quit

	case "down", "j":
		pg.offset++

		maxOffset := pg.maxOffset()
		if pg.offset > maxOffset {
			pg.offset = maxOffset
		}

		return pg, nil

	case "up", "k":
		pg.offset--
		if pg.offset < 0 {
			pg.offset = 0
		}

		return pg, nil

	case "g", "home":
		pg.offset = 0

		return pg, nil

	case "G", "end":
		pg.offset = pg.maxOffset()

		return pg, nil

	case "d", "pgdown":
		pg.offset += pg.linesPerPage()

		maxOffset := pg.maxOffset()
		if pg.offset > maxOffset {
			pg.offset = maxOffset
		}

		return pg, nil

	case "u", "pgup":
		pg.offset -= pg.linesPerPage()
		if pg.offset < 0 {
			pg.offset = 0
		}

		return pg, nil
	}

	return pg, nil
}

// linesPerPage calculates how many report lines fit on screen.
func (pg pagerModel) linesPerPage() int {
	if pg.height == 0 {
		return 10 // Default
	}
	// Reserve space for the footer (blank + position + help).
	reserved := 3

	available := pg.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (pg pagerModel) maxOffset() int {
	maxOff := len(pg.lines) - pg.linesPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the report is too large to fit on
// screen.
func (pg pagerModel) needsPagination() bool {
	if len(pg.lines) == 0 {
		return false
	}

	return len(pg.lines) > pg.linesPerPage() && pg.height > 0
}

func (pg pagerModel) View() string {
	var b strings.Builder

	if !pg.needsPagination() {
		for _, line := range pg.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}

		return b.String()
	}

	perPage := pg.linesPerPage()

	start := pg.offset
	if start >= len(pg.lines) {
		start = len(pg.lines) - 1
		if start < 0 {
			start = 0
		}
	}

	end := start + perPage
	if end > len(pg.lines) {
		end = len(pg.lines)
	}

	for _, line := range pg.lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(pg.lines))
	b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")

	return b.String()
}
