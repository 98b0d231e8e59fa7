package tempfile

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInstantiated is returned when a Definer is constructed while
	// another one is still registered for the process
	ErrAlreadyInstantiated = errors.New("temp log file definer must not be instantiated twice")

	// ErrTempFileCreation matches every CreationError through errors.Is
	ErrTempFileCreation = errors.New("failed to create temporary log file")

	ErrInvalidPattern = errors.New("prefix and suffix must not contain path separators, suffix must not contain '*'")
	ErrEmptyPrefix    = errors.New("refusing to clean temporary files without a prefix")
)

// CreationError describes a failed attempt at creating the temporary log file.
type CreationError struct {
	Dir     string
	Pattern string
	Err     error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%s in %s (pattern %q): %s", ErrTempFileCreation, e.Dir, e.Pattern, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

func (e *CreationError) Is(target error) bool {
	return target == ErrTempFileCreation
}
