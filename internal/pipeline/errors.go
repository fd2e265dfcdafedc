package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by FileError.
var (
	// ErrInvalidUTF8 is returned when a candidate's bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

	// ErrNotRegular is returned when a path passed to RewriteFile is not a
	// regular file (or a symlink to one).
	ErrNotRegular = errors.New("not a regular file")
)

// FileError records the operation and path that failed.
type FileError struct {
	Op   string // walk, stat, read, decode, write
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("path error %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func wrapFileError(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}
