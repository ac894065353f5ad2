package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("Game 1: 1 red\n"), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"))
	writeFile(t, filepath.Join(root, "a.txt"))
	writeFile(t, filepath.Join(root, "nested", "c.txt"))
	writeFile(t, filepath.Join(root, "notes.md"))

	files, err := FindFilesByExtension(root, ".txt")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "nested", "c.txt"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir(), "") })
}

func TestResolveInputs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	single := filepath.Join(root, "games.dat")
	writeFile(t, single)
	writeFile(t, filepath.Join(root, "dir", "x.txt"))

	files, err := ResolveInputs(single, ".txt")
	require.NoError(t, err)
	require.Equal(t, []string{single}, files)

	files, err = ResolveInputs(filepath.Join(root, "dir"), ".txt")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "dir", "x.txt")}, files)

	_, err = ResolveInputs(filepath.Join(root, "missing.txt"), ".txt")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
