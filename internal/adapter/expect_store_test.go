package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/goldrun/internal/model"
)

func TestExpectStore_MissingFile(t *testing.T) {
	store := NewLocalExpectStore()

	content, ok, err := store.ReadExpect(m.Path(filepath.Join(t.TempDir(), "absent.expect")))
	require.NoError(t, err)

	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestExpectStore_WriteThenRead(t *testing.T) {
	store := NewLocalExpectStore()
	path := m.Path(filepath.Join(t.TempDir(), "a.expect"))

	require.NoError(t, store.WriteExpect(path, "---CODE---\n0\n---STDOUT---\nhi\n---STDERR---\n"))

	content, ok, err := store.ReadExpect(path)
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, "---CODE---\n0\n---STDOUT---\nhi\n---STDERR---\n", content)
}

func TestExpectStore_Overwrite(t *testing.T) {
	store := NewLocalExpectStore()
	path := m.Path(filepath.Join(t.TempDir(), "a.expect"))

	require.NoError(t, store.WriteExpect(path, "old"))
	require.NoError(t, store.WriteExpect(path, "new"))

	content, ok, err := store.ReadExpect(path)
	require.NoError(t, err)

	assert.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestExpectStore_ReadErrorIsNotAbsence(t *testing.T) {
	store := NewLocalExpectStore()

	// A directory, not a file.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a.expect"), 0o755))

	_, ok, err := store.ReadExpect(m.Path(filepath.Join(dir, "a.expect")))
	require.Error(t, err)
	assert.False(t, ok)
}
