package walk

import (
	"fmt"

	"github.com/katalvlaran/cubefold/grid"
)

// Torus wraps the flat net: stepping off one end of a row or column
// re-enters at its other end with the same facing.
type Torus struct {
	Grid *grid.Grid
}

// Warp returns the far tile of p's row or column along -d.
// Complexity: O(W+H).
func (t Torus) Warp(p grid.Position, d grid.Direction) (grid.Position, grid.Direction, error) {
	g := t.Grid
	if g.At(p) == grid.Void || g.At(p.Step(d)) != grid.Void {
		return p, d, fmt.Errorf("%w: %s %s", ErrNotBoundary, p, d)
	}
	back := d.Opposite()
	q := p
	for g.At(q.Step(back)) != grid.Void {
		q = q.Step(back)
	}
	return q, d, nil
}
