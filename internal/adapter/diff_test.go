package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedDiff(t *testing.T) {
	diff := UnifiedDiff("a\nb\nc\n", "a\nX\nc\n")

	assert.Contains(t, diff, "--- expected")
	assert.Contains(t, diff, "+++ generated")
	assert.Contains(t, diff, "-b")
	assert.Contains(t, diff, "+X")
}

func TestUnifiedDiff_StoredIsMinusSide(t *testing.T) {
	diff := UnifiedDiff("old\n", "new\n")

	assert.Contains(t, diff, "-old")
	assert.Contains(t, diff, "+new")
}

func TestUnifiedDiff_Identical(t *testing.T) {
	assert.Empty(t, UnifiedDiff("same\n", "same\n"))
}
