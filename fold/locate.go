package fold

import (
	"fmt"

	"github.com/katalvlaran/cubefold/grid"
)

// LocateFaces splits the bounding box of g into size×size blocks and
// returns, in row-major order, the blocks whose top-left tile is part of
// the net. Exactly six such blocks must exist.
//
// A bounding box that is not a whole number of blocks is scanned up to
// its last partial block row and column.
// Returns ErrFaceSize if size < 1, ErrFaceCount if the block count is not six.
// Complexity: O(W×H / size²).
func LocateFaces(g *grid.Grid, size int) ([]Face, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: %d for a %dx%d net", ErrFaceSize, size, g.Width, g.Height)
	}

	rows := (g.Height + size - 1) / size
	cols := (g.Width + size - 1) / size
	faces := make([]Face, 0, 6)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			anchor := grid.Position{Row: 1 + row*size, Col: 1 + col*size}
			if g.At(anchor) == grid.Void {
				continue
			}
			faces = append(faces, Face{Index: len(faces), Anchor: anchor, Size: size})
		}
	}
	if len(faces) != 6 {
		return nil, fmt.Errorf("%w: found %d of size %d", ErrFaceCount, len(faces), size)
	}

	return faces, nil
}
