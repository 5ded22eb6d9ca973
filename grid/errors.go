package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input holds no tiles.
	ErrEmptyGrid = errors.New("grid: net must contain at least one tile")
	// ErrBadTile indicates an unknown tile symbol in the net text.
	ErrBadTile = errors.New("grid: unknown tile symbol")
)
