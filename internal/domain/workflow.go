package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mouse-blink/goldrun/internal/adapter"
	"github.com/mouse-blink/goldrun/internal/controller"
	m "github.com/mouse-blink/goldrun/internal/model"
)

// RunArgs contains the arguments for running expect suites.
type RunArgs struct {
	Config   m.Path
	Suites   []string // suite names to run; empty means all
	Only     *m.Category
	ShowDiff bool
	Save     bool
	Threads  int
	Timeout  time.Duration // per-test execution bound; zero means unbounded
}

// ListArgs contains the arguments for listing configured suites.
type ListArgs struct {
	Config m.Path
	Suites []string
}

// Workflow orchestrates the discover → run → filter → report →
// persist pipeline behind the CLI commands.
type Workflow interface {
	// Run executes the selected suites and reports their results. It
	// returns the number of unresolved problems (failed or missing
	// tests left unsaved, plus suite errors); deciding the process
	// exit code from that number is the CLI's business.
	Run(ctx context.Context, args RunArgs) (int, error)
	// List reports the configured suites and their discovered tests.
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	config adapter.SuiteConfigAdapter
	store  adapter.ExpectStore
	ui     controller.UI
	runner Runner
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	config adapter.SuiteConfigAdapter,
	store adapter.ExpectStore,
	ui controller.UI,
	runner Runner,
) Workflow {
	return &workflow{
		config: config,
		store:  store,
		ui:     ui,
		runner: runner,
	}
}

// suitePlan pairs a suite with its discovered tests.
type suitePlan struct {
	suite m.Suite
	tests []m.Path
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (int, error) {
	plans, err := w.plan(args.Config, args.Suites)
	if err != nil {
		return 0, err
	}

	totalTests := 0
	for _, plan := range plans {
		totalTests += len(plan.tests)
	}

	w.ui.StartRun(totalTests, args.Threads)

	results := make([]m.SuiteResult, 0, len(plans))

	for _, plan := range plans {
		res := w.runner.RunSuite(ctx, SuiteRunArgs{
			Suite:    plan.suite,
			Tests:    plan.tests,
			Threads:  args.Threads,
			Timeout:  args.Timeout,
			OnResult: w.ui.TestCompleted,
		})
		results = append(results, res)
	}

	w.ui.FinishRun()

	problems := 0
	summaries := make([]controller.SuiteSummary, 0, len(results))

	for i := range results {
		res := &results[i]

		if args.Save {
			w.saveSuite(res)
		}

		summary := summarize(res)
		summaries = append(summaries, summary)

		problems += summary.Errs
		if !args.Save {
			problems += summary.Fail + summary.Miss
		}

		filtered := res.Filter(args.Only)
		if err := w.ui.DisplaySuiteResult(filtered, len(plans[i].tests), args.ShowDiff, adapter.UnifiedDiff); err != nil {
			return 0, fmt.Errorf("display suite %s: %w", res.Name, err)
		}
	}

	if err := w.ui.DisplayRunSummary(summaries); err != nil {
		return 0, fmt.Errorf("display summary: %w", err)
	}

	return problems, nil
}

func (w *workflow) List(_ context.Context, args ListArgs) error {
	plans, err := w.plan(args.Config, args.Suites)
	if err != nil {
		return err
	}

	rows := make([]controller.SuiteListing, 0, len(plans))
	for _, plan := range plans {
		rows = append(rows, controller.SuiteListing{
			Name:  plan.suite.Name,
			Tests: len(plan.tests),
			Cmd:   plan.suite.Cmd,
		})
	}

	return w.ui.DisplaySuiteList(rows)
}

// plan loads the configuration, narrows it to the requested suite
// names, and discovers each suite's tests.
func (w *workflow) plan(configPath m.Path, names []string) ([]suitePlan, error) {
	suites, err := w.config.LoadSuites(configPath)
	if err != nil {
		return nil, err
	}

	selected, err := selectSuites(suites, names)
	if err != nil {
		return nil, err
	}

	plans := make([]suitePlan, 0, len(selected))

	for _, suite := range selected {
		tests, err := w.config.DiscoverTests(suite)
		if err != nil {
			return nil, err
		}

		slog.Debug("discovered tests", "suite", suite.Name, "count", len(tests))
		plans = append(plans, suitePlan{suite: suite, tests: tests})
	}

	return plans, nil
}

// saveSuite persists updated expectations for every non-correct
// result. Write failures join the suite's error list; they never
// abort the remaining saves.
func (w *workflow) saveSuite(res *m.SuiteResult) {
	for i := range res.Results {
		if err := res.Results[i].SaveResults(w.store); err != nil {
			slog.Error("failed to save expect file", "test", res.Results[i].Path, "error", err)
			res.Errors = append(res.Errors, fmt.Errorf("save %s: %w", res.Results[i].Path, err))
		}
	}
}

func summarize(res *m.SuiteResult) controller.SuiteSummary {
	summary := controller.SuiteSummary{Name: res.Name, Errs: len(res.Errors)}

	for i := range res.Results {
		switch res.Results[i].Category() {
		case m.CategoryPass:
			summary.Pass++
		case m.CategoryFail:
			summary.Fail++
		case m.CategoryMiss:
			summary.Miss++
		}
	}

	return summary
}

func selectSuites(suites []m.Suite, names []string) ([]m.Suite, error) {
	if len(names) == 0 {
		return suites, nil
	}

	byName := make(map[string]m.Suite, len(suites))
	for _, suite := range suites {
		byName[suite.Name] = suite
	}

	selected := make([]m.Suite, 0, len(names))

	for _, name := range names {
		suite, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown suite %q", name)
		}

		selected = append(selected, suite)
	}

	return selected, nil
}
