package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubefold/grid"
)

// TestDirection_Rotations checks turn, opposite and facing arithmetic.
func TestDirection_Rotations(t *testing.T) {
	cases := []struct {
		d                   grid.Direction
		left, right, behind grid.Direction
		facing              int
	}{
		{grid.Right, grid.Up, grid.Down, grid.Left, 0},
		{grid.Down, grid.Right, grid.Left, grid.Up, 1},
		{grid.Left, grid.Down, grid.Up, grid.Right, 2},
		{grid.Up, grid.Left, grid.Right, grid.Down, 3},
	}
	for _, c := range cases {
		require.Equal(t, c.left, c.d.TurnLeft(), "%s.TurnLeft", c.d)
		require.Equal(t, c.right, c.d.TurnRight(), "%s.TurnRight", c.d)
		require.Equal(t, c.behind, c.d.Opposite(), "%s.Opposite", c.d)
		require.Equal(t, c.facing, c.d.Facing(), "%s.Facing", c.d)
		require.Equal(t, c.d, c.d.TurnLeft().TurnRight())
	}
}

// TestPosition_Step verifies unit steps and their inverse.
func TestPosition_Step(t *testing.T) {
	p := grid.Position{Row: 5, Col: 7}
	require.Equal(t, grid.Position{Row: 5, Col: 8}, p.Step(grid.Right))
	require.Equal(t, grid.Position{Row: 6, Col: 7}, p.Step(grid.Down))
	require.Equal(t, grid.Position{Row: 5, Col: 6}, p.Step(grid.Left))
	require.Equal(t, grid.Position{Row: 4, Col: 7}, p.Step(grid.Up))
	require.Equal(t, grid.Position{Row: 5, Col: 4}, p.Offset(grid.Left, 3))
	for _, d := range grid.Directions {
		require.Equal(t, p, p.Step(d).Step(d.Opposite()))
	}
	require.Equal(t, "5,7", p.String())
}

// TestStringers covers the human-readable names.
func TestStringers(t *testing.T) {
	require.Equal(t, "Up", grid.Up.String())
	require.Equal(t, "Direction(9)", grid.Direction(9).String())
	require.Equal(t, "wall", grid.Wall.String())
	require.Equal(t, byte('.'), grid.Open.Symbol())
	require.Equal(t, byte(' '), grid.Void.Symbol())
}
