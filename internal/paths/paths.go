// Package paths turns the file argument into the paths vedit works with.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPath is returned for an empty argument.
var ErrNoPath = errors.New("no file path given")

// File is a resolved file argument.
type File struct {
	// Path is used for loading, saving and status messages. Relative
	// arguments stay relative to the working directory; "~" is expanded.
	Path string

	// Abs is the absolute form of Path, used as the history key and by the watcher.
	Abs string
}

// ResolveFile resolves arg, which may be relative, absolute or start with "~".
func ResolveFile(arg string) (File, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return File{}, ErrNoPath
	}

	path, err := expandHome(arg)
	if err != nil {
		return File{}, err
	}
	path = filepath.Clean(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Abs: abs}, nil
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// "~user" forms are left untouched.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
