package adapter

import (
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a unified diff between the stored expect file
// content and the freshly generated one. Pure rendering, no side
// effects; satisfies model.DiffFunc.
func UnifiedDiff(stored, generated string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(stored),
		B:        difflib.SplitLines(generated),
		FromFile: "expected",
		ToFile:   "generated",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		// Only reachable through a failing writer, which a string
		// builder is not.
		slog.Error("failed to render diff", "error", err)
		return ""
	}

	return text
}
