package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/goldrun/internal/model"
)

func TestParseOnly(t *testing.T) {
	tests := []struct {
		value string
		want  *m.Category
	}{
		{"", nil},
		{"pass", categoryPtr(m.CategoryPass)},
		{"fail", categoryPtr(m.CategoryFail)},
		{"miss", categoryPtr(m.CategoryMiss)},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			got, err := parseOnly(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func categoryPtr(cat m.Category) *m.Category {
	return &cat
}

func TestParseOnly_Invalid(t *testing.T) {
	for _, value := range []string{"passing", "PASS", "correct"} {
		_, err := parseOnly(value)
		require.Error(t, err, value)
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, m.Path("./goldrun.yaml"), configPath())
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" Error ", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), tt.value)
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"run", "list", "init", "version"} {
		assert.True(t, names[want], want)
	}
}
