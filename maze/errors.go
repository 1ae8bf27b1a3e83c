package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("maze: rows and columns must be positive")
	// ErrOutOfBounds indicates a cell, or the edge leaving it, lies outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrInvalidDirection indicates a value outside North, South, East and West.
	ErrInvalidDirection = errors.New("maze: invalid direction")
)
