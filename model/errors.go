package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive
	// row or column count, or from an empty or ragged cell pattern.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrIndexOutOfBounds is returned when a coordinate lies outside the grid.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
