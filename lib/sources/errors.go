package sources

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyStdin is returned when standard input ends before yielding a byte.
var ErrEmptyStdin = errors.New("standard input is empty")

// FileOpenError reports a named file that could not be opened or sized.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("reading file '%v': %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// ShortReadError reports a file that changed size between being measured and
// being read.
type ShortReadError struct {
	Path     string
	Expected int64
	Read     int
	Err      error
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("file '%v' changed during execution (expected %v bytes, read %v)", e.Path, e.Expected, e.Read)
}

func (e *ShortReadError) Unwrap() error {
	return e.Err
}
