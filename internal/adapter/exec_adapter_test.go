package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/goldrun/internal/model"
)

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     m.Path
		want     string
	}{
		{"placeholder", "tclsh {}", "tests/a.tcl", "tclsh tests/a.tcl"},
		{"placeholder mid-template", "run {} --strict", "t.txt", "run t.txt --strict"},
		{"repeated placeholder", "cp {} {}.bak", "a", "cp a a.bak"},
		{"no placeholder appends", "cat", "tests/a.txt", "cat tests/a.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildCommand(tt.template, tt.path))
		})
	}
}

func TestRunTest_CapturesStdout(t *testing.T) {
	adapter := NewLocalTestExecAdapter()

	capture, err := adapter.RunTest(context.Background(), "echo hi; echo nope >&2", "ignored")
	require.NoError(t, err)

	assert.Equal(t, 0, capture.Status)
	assert.Equal(t, "hi\n", capture.Stdout)
	assert.Equal(t, "nope\n", capture.Stderr)
}

func TestRunTest_NonZeroStatusIsData(t *testing.T) {
	adapter := NewLocalTestExecAdapter()

	capture, err := adapter.RunTest(context.Background(), "echo before; exit 3", "ignored")
	require.NoError(t, err)

	assert.Equal(t, 3, capture.Status)
	assert.Equal(t, "before\n", capture.Stdout)
}

func TestRunTest_SubstitutesPath(t *testing.T) {
	adapter := NewLocalTestExecAdapter()

	capture, err := adapter.RunTest(context.Background(), "echo {}", "tests/a.tcl")
	require.NoError(t, err)

	assert.Equal(t, "tests/a.tcl\n", capture.Stdout)
}

func TestRunTest_DeadlineIsError(t *testing.T) {
	adapter := NewLocalTestExecAdapter()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := adapter.RunTest(ctx, "sleep 5", "ignored")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunTest_CanceledContext(t *testing.T) {
	adapter := NewLocalTestExecAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.RunTest(ctx, "echo hi", "ignored")
	require.Error(t, err)
}
