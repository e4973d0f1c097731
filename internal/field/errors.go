package field

import "errors"

var (
	// ErrInvalidGrid indicates a row or column count below one.
	ErrInvalidGrid = errors.New("field: grid needs at least one row and one column")

	// ErrInvalidCanvas indicates a non-positive or non-finite canvas size.
	ErrInvalidCanvas = errors.New("field: canvas size must be positive and finite")
)
