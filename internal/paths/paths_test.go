package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFile_Relative(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	f, err := ResolveFile("./notes/../todo.txt")
	require.NoError(t, err)
	require.Equal(t, "todo.txt", f.Path)
	require.Equal(t, filepath.Join(cwd, "todo.txt"), f.Abs)
}

func TestResolveFile_Absolute(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.txt")

	f, err := ResolveFile(target)
	require.NoError(t, err)
	require.Equal(t, target, f.Path)
	require.Equal(t, target, f.Abs)
}

func TestResolveFile_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := ResolveFile("~/docs/a.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "docs", "a.txt"), f.Path)
	require.Equal(t, f.Path, f.Abs)

	f, err = ResolveFile("~")
	require.NoError(t, err)
	require.Equal(t, home, f.Abs)
}

func TestResolveFile_TildeUserUntouched(t *testing.T) {
	f, err := ResolveFile("~bob/a.txt")
	require.NoError(t, err)
	require.Equal(t, "~bob/a.txt", f.Path)
}

func TestResolveFile_Empty(t *testing.T) {
	_, err := ResolveFile("  ")
	require.ErrorIs(t, err, ErrNoPath)
}
