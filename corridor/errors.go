package corridor

import "errors"

// Sentinel errors for graph compilation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Compress.
	ErrNilGrid = errors.New("corridor: grid is nil")
)
