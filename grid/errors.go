package grid

import "errors"

// Sentinel errors for map parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrInvalidRune indicates a character outside the #/./S/E alphabet.
	ErrInvalidRune = errors.New("grid: invalid map character")
	// ErrMissingStart indicates no 'S' cell was found.
	ErrMissingStart = errors.New("grid: map has no start cell")
	// ErrMissingEnd indicates no 'E' cell was found.
	ErrMissingEnd = errors.New("grid: map has no end cell")
)
