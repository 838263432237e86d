package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/goldrun/internal/adapter"
	m "github.com/mouse-blink/goldrun/internal/model"
	"github.com/mouse-blink/goldrun/pkg"
)

// SuiteRunArgs contains the arguments for running one suite.
type SuiteRunArgs struct {
	Suite   m.Suite
	Tests   []m.Path // discovery order
	Threads int
	// Timeout bounds each test's execution; zero means unbounded.
	Timeout time.Duration
	// OnResult, when set, is called as each test finishes. Calls may
	// arrive in any order from worker goroutines.
	OnResult func(m.TestResult)
}

// Runner executes the tests of a suite and aggregates their results
// in discovery order.
type Runner interface {
	RunSuite(ctx context.Context, args SuiteRunArgs) m.SuiteResult
}

type runner struct {
	exec  adapter.TestExecAdapter
	store adapter.ExpectStore
}

// NewRunner constructs a Runner backed by the provided execution and
// expect-store adapters.
func NewRunner(exec adapter.TestExecAdapter, store adapter.ExpectStore) Runner {
	return &runner{exec: exec, store: store}
}

// RunSuite runs every test in parallel, bounded by args.Threads. Each
// test is executed, serialized, and classified independently; results
// land in an index-slotted collector so the aggregate keeps discovery
// order no matter when workers finish. Tests that cannot be run at
// all become suite-level errors, never outcomes.
func (r *runner) RunSuite(ctx context.Context, args SuiteRunArgs) m.SuiteResult {
	slog.Debug("running suite", "suite", args.Suite.Name, "tests", len(args.Tests), "threads", args.Threads)

	slots := pkg.NewSlots[m.TestResult](len(args.Tests))

	var suiteErrs pkg.List[error]

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, test := range args.Tests {
		index, testPath := i, test

		group.Go(func() error {
			testCtx := ctx

			if args.Timeout > 0 {
				var cancel context.CancelFunc
				testCtx, cancel = context.WithTimeout(ctx, args.Timeout)

				defer cancel()
			}

			res, err := r.runOne(testCtx, args.Suite, testPath, index)
			if err != nil {
				slog.Error("test execution failed", "test", testPath, "error", err)
				suiteErrs.Append(err)

				return nil
			}

			if putErr := slots.Put(index, res); putErr != nil {
				suiteErrs.Append(putErr)
				return nil
			}

			if args.OnResult != nil {
				args.OnResult(res)
			}

			return nil
		})
	}

	// Workers report failures through the error list, never abort.
	_ = group.Wait()

	return m.SuiteResult{
		Name:    args.Suite.Name,
		Results: slots.Filled(),
		Errors:  suiteErrs.Items(),
	}
}

func (r *runner) runOne(ctx context.Context, suite m.Suite, testPath m.Path, index int) (m.TestResult, error) {
	capture, err := r.exec.RunTest(ctx, suite.Cmd, testPath)
	if err != nil {
		return m.TestResult{}, fmt.Errorf("%s: %w", testPath, err)
	}

	generated := FormatExpect(capture.Status, capture.Stdout, capture.Stderr)

	stored, ok, err := r.store.ReadExpect(ExpectPath(testPath))
	if err != nil {
		return m.TestResult{}, fmt.Errorf("%s: read expect file: %w", testPath, err)
	}

	var storedPtr *string
	if ok {
		storedPtr = &stored
	}

	res := m.TestResult{
		Path:    testPath,
		Status:  capture.Status,
		Stdout:  capture.Stdout,
		Stderr:  capture.Stderr,
		Index:   index,
		Outcome: Classify(generated, storedPtr),
	}

	slog.Debug("classified test", "test", testPath, "category", res.Category())

	return res, nil
}
