// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// ErrIsDirectory is returned by OpenReadOnly when the path names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// OpenReadOnly opens the file at path for reading only. Directories are
// rejected so that callers see one uniform failure for anything that is not a
// readable file.
func OpenReadOnly(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("path must not be empty")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, ErrIsDirectory)
	}

	return f, nil
}
