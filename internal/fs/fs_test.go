package fs

import (
	"os"
	"path/filepath"
	"testing"

	"peruse/internal/errors"
	"peruse/internal/log"
	"peruse/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWalker(t *testing.T, patterns ...string) *Walker {
	t.Helper()
	if len(patterns) == 0 {
		patterns = []string{".*", "__pycache__"}
	}
	w, err := NewWalker(patterns, log.Nop())
	require.NoError(t, err)
	return w
}

func TestNewWalker(t *testing.T) {
	t.Run("valid patterns", func(t *testing.T) {
		w, err := NewWalker([]string{".*", "*.log"}, log.Nop())
		require.NoError(t, err)
		assert.NotNil(t, w)
	})

	t.Run("no patterns", func(t *testing.T) {
		w, err := NewWalker(nil, log.Nop())
		require.NoError(t, err)
		assert.NotNil(t, w)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := NewWalker([]string{"[oops"}, log.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compiling exclude pattern")
	})
}

func TestListOrdering(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, map[string]string{
		"Zebra/":     "",
		"apple/":     "",
		"Banana.txt": "b",
		"cherry.c":   "c",
	})

	w := newTestWalker(t)
	entries, err := w.List(dir)
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	// Directories first, then files, case-insensitive within each group
	assert.Equal(t, []string{"apple", "Zebra", "Banana.txt", "cherry.c"}, names)
	assert.True(t, entries[0].IsDir)
	assert.True(t, entries[1].IsDir)
	assert.False(t, entries[2].IsDir)
	assert.False(t, entries[3].IsDir)
}

func TestListExclusions(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestTree(t, dir, map[string]string{
		".hidden":           "x",
		".git/config":       "x",
		"__pycache__/a.pyc": "x",
		"kept.txt":          "x",
		"app.log":           "x",
	})

	t.Run("default excludes", func(t *testing.T) {
		w := newTestWalker(t)
		entries, err := w.List(dir)
		require.NoError(t, err)

		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		assert.Equal(t, []string{"app.log", "kept.txt"}, names)
	})

	t.Run("custom pattern", func(t *testing.T) {
		w := newTestWalker(t, ".*", "__pycache__", "*.log")
		entries, err := w.List(dir)
		require.NoError(t, err)

		require.Len(t, entries, 1)
		assert.Equal(t, "kept.txt", entries[0].Name)
	})
}

func TestListMissingDirectory(t *testing.T) {
	w := newTestWalker(t)
	_, err := w.List(filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.True(t, errors.IsReadError(err))

	var fe *errors.FileError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Path(), "nope")
}

func TestReadText(t *testing.T) {
	t.Run("plain file", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{
			"main.c": "int main(void) { return 0; }\n",
		})

		w := newTestWalker(t)
		text, err := w.ReadText(filepath.Join(dir, "main.c"))
		require.NoError(t, err)
		assert.Equal(t, "int main(void) { return 0; }\n", text)
	})

	t.Run("undecodable bytes are replaced", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "garbled.txt")
		require.NoError(t, os.WriteFile(path, []byte("ok\xff\xfezz"), 0644))

		w := newTestWalker(t)
		text, err := w.ReadText(path)
		require.NoError(t, err)
		assert.Equal(t, "ok��zz", text)
	})

	t.Run("missing file", func(t *testing.T) {
		w := newTestWalker(t)
		_, err := w.ReadText(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsReadError(err))
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), nil, 0644))

		w := newTestWalker(t)
		text, err := w.ReadText(filepath.Join(dir, "empty"))
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
