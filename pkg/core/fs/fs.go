// Package fs provides the file reads applets perform. Applets should use
// this package instead of direct os calls.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rcarmo/go-timefmt/pkg/libctime"
)

// ReadFile reads an entire file.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ModTime returns the modification time of path in whole seconds. A file
// stamped before 1970 reads as epoch 0.
func ModTime(path string) (libctime.Epoch, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, unwrapPath(err)
	}
	sec := info.ModTime().Unix()
	if sec < 0 {
		return 0, nil
	}
	return libctime.Epoch(sec), nil
}

// Chtimes updates atime/mtime for a path.
func Chtimes(path string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// unwrapPath drops the operation and path from err; callers print the path
// themselves.
func unwrapPath(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
