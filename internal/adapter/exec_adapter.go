// Package adapter contains execution, storage, and diff adapters for
// the goldrun CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	m "github.com/mouse-blink/goldrun/internal/model"
)

// CmdPlaceholder marks where the test path is substituted into a
// suite's command template.
const CmdPlaceholder = "{}"

// ExecCapture is the raw output of one test execution. A non-zero
// Status is data, never an error.
type ExecCapture struct {
	Status int
	Stdout string
	Stderr string
}

// TestExecAdapter abstracts running a single test file. An error
// means the test could not be run at all (command missing, timeout);
// those become suite-level errors, not outcomes.
type TestExecAdapter interface {
	RunTest(ctx context.Context, cmdTemplate string, testPath m.Path) (ExecCapture, error)
}

// LocalTestExecAdapter runs tests through the shell using os/exec.
// Execution time is bounded by the caller's context deadline.
type LocalTestExecAdapter struct{}

// NewLocalTestExecAdapter constructs a LocalTestExecAdapter.
func NewLocalTestExecAdapter() *LocalTestExecAdapter {
	return &LocalTestExecAdapter{}
}

// RunTest substitutes the test path into the command template and
// runs it, capturing exit status, stdout, and stderr byte-exact.
func (a *LocalTestExecAdapter) RunTest(ctx context.Context, cmdTemplate string, testPath m.Path) (ExecCapture, error) {
	cmdLine := BuildCommand(cmdTemplate, testPath)

	cmd := exec.CommandContext(ctx, "sh", "-c", cmdLine)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	capture := ExecCapture{
		Status: 0,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		return capture, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ExecCapture{}, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		capture.Status = exitErr.ExitCode()
		return capture, nil
	}

	return ExecCapture{}, err
}

// BuildCommand substitutes testPath into the template at the {}
// placeholder, or appends it when the template has no placeholder.
func BuildCommand(cmdTemplate string, testPath m.Path) string {
	if strings.Contains(cmdTemplate, CmdPlaceholder) {
		return strings.ReplaceAll(cmdTemplate, CmdPlaceholder, string(testPath))
	}

	return cmdTemplate + " " + string(testPath)
}
