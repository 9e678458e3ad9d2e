package reticle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHexColor is returned for color tokens that are not exactly
	// six hex digits after trimming.
	ErrInvalidHexColor = errors.New("reticle: invalid hex color")

	// ErrIO marks read, write and create-directory failures at the artifact
	// or input boundary. Match it with errors.Is; use errors.As with
	// *PathError to recover the attempted path.
	ErrIO = errors.New("reticle: i/o failure")

	// ErrInvalidProfileName is returned when a profile name sanitizes to
	// nothing.
	ErrInvalidProfileName = errors.New("reticle: empty profile name")

	// ErrUnknownFormat is returned for profile files whose extension has no
	// registered codec.
	ErrUnknownFormat = errors.New("reticle: unknown profile format")
)

// PathError records an I/O failure together with the operation and the path
// that was attempted.
type PathError struct {
	Op   string
	Path string
	Err  error
}

// NewPathError wraps err as an I/O failure on path.
func NewPathError(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error { return e.Err }

// Is reports ErrIO so that every PathError matches errors.Is(err, ErrIO).
func (e *PathError) Is(target error) bool { return target == ErrIO }
