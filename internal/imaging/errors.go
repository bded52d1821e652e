package imaging

import "errors"

// Error classes reported by buffer operations and transforms. Callers wrap
// them with context via fmt.Errorf and test for them with errors.Is.
var (
	// ErrInvalidArgument means a transform parameter failed its precondition
	// (wrong type or out-of-range value). The buffer is left untouched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptBuffer means a buffer is not a non-empty rectangular grid.
	ErrCorruptBuffer = errors.New("corrupt image buffer")

	// ErrIO means an image file could not be read, decoded, encoded or written.
	ErrIO = errors.New("image i/o failure")
)
