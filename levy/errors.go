package levy

import "errors"

var (
	// ErrInvalidParameter reports a non-positive or non-finite step size,
	// tolerance or term count supplied by the caller.
	ErrInvalidParameter = errors.New("levy: invalid parameter")

	// ErrShape reports a matrix or increment whose dimensions do not match
	// what the operation requires.
	ErrShape = errors.New("levy: shape mismatch")

	// ErrNumericDomain reports an input that pushes a special-function
	// evaluation or a square root outside its domain.
	ErrNumericDomain = errors.New("levy: numeric domain violation")
)
