package walk

import "errors"

var (
	// ErrNoPath indicates the notes have no blank line before the path.
	ErrNoPath = errors.New("walk: notes hold no path")

	// ErrNoStart indicates the first row has no open tile.
	ErrNoStart = errors.New("walk: no open tile on the first row")

	// ErrFellOff indicates a warp landed outside the net.
	ErrFellOff = errors.New("walk: warp left the net")

	// ErrNotBoundary indicates a wrap was requested away from the net edge.
	ErrNotBoundary = errors.New("walk: step does not leave the net")

	// ErrWarperNil is returned when Run has nothing to resolve edge steps with.
	ErrWarperNil = errors.New("walk: warper is nil")
)
