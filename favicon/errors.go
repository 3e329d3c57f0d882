package favicon

import (
	"errors"

	"favicongen/render"
)

var (
	// ErrMissingSource means the source image path does not exist.
	ErrMissingSource = errors.New("source image not found")
	// ErrUnsupportedFormat means no registered decoder understands the source.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrIO covers every other read, encode or write failure.
	ErrIO = errors.New("i/o failure")
	// ErrInvalidConfig reports an unusable output table or option.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidSize reports a non-positive target size.
	ErrInvalidSize = render.ErrInvalidSize
)

// Error records the operation and file that failed.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
