package ginternals

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNotFound is the root of all the errors caused by something
	// missing, whether it's a path on disk or an object in the store
	ErrNotFound = errors.New("not found")

	// ErrPathNotFound is an error corresponding to a path of the
	// working tree not existing
	ErrPathNotFound = fmt.Errorf("path %w", ErrNotFound)

	// ErrObjectNotFound is an error corresponding to an object not
	// being in the store
	ErrObjectNotFound = fmt.Errorf("object %w", ErrNotFound)

	// ErrAccessDenied is an error corresponding to an entry that
	// cannot be read
	ErrAccessDenied = errors.New("access denied")

	// ErrCycleDetected is an error thrown when a directory is reached
	// twice while building a tree, usually because of a symbolic link
	// pointing to one of its parents
	ErrCycleDetected = errors.New("directory cycle detected")

	// ErrIOFailure is an error corresponding to an underlying read or
	// write failure
	ErrIOFailure = errors.New("i/o failure")
)

// FSError converts an error returned by a filesystem operation into one
// of our sentinel errors. The original message is kept.
func FSError(op, path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("could not %s %s: %s: %w", op, path, err.Error(), ErrPathNotFound)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("could not %s %s: %s: %w", op, path, err.Error(), ErrAccessDenied)
	default:
		return fmt.Errorf("could not %s %s: %s: %w", op, path, err.Error(), ErrIOFailure)
	}
}
