package fold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubefold/fold"
	"github.com/katalvlaran/cubefold/grid"
)

// cubeNets lists the 11 distinct cube nets as block layouts ('#' face).
var cubeNets = map[string][]string{
	"cross-0-0":  {"#", "####", "#"},
	"cross-0-1":  {"#", "####", " #"},
	"cross-0-2":  {"#", "####", "  #"},
	"cross-0-3":  {"#", "####", "   #"},
	"cross-1-1":  {" #", "####", " #"},
	"cross-1-2":  {" #", "####", "  #"},
	"step-1":     {"##", " ###", " #"},
	"step-2":     {"##", " ###", "  #"},
	"step-3":     {"##", " ###", "   #"},
	"stairs":     {"##", " ##", "  ##"},
	"two-threes": {"###", "  ###"},
}

// sampleNet is the classic 4×4-face example net.
const sampleNet = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.`

// expand scales a block layout to faces of side n filled with open tiles.
func expand(layout []string, n int) string {
	var sb strings.Builder
	for i, row := range layout {
		for r := 0; r < n; r++ {
			line := make([]byte, 0, len(row)*n)
			for j := 0; j < len(row); j++ {
				sym := byte(' ')
				if row[j] == '#' {
					sym = '.'
				}
				for c := 0; c < n; c++ {
					line = append(line, sym)
				}
			}
			sb.WriteString(strings.TrimRight(string(line), " "))
			if i < len(layout)-1 || r < n-1 {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// mustGrid expands and parses a layout.
func mustGrid(t testing.TB, layout []string, n int) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(expand(layout, n))
	require.NoError(t, err)
	return g
}

// boundarySteps lists every (tile, direction) that leaves the net.
func boundarySteps(g *grid.Grid) []fold.Key {
	var out []fold.Key
	for _, p := range g.Positions() {
		for _, d := range grid.Directions {
			if g.At(p.Step(d)) == grid.Void {
				out = append(out, fold.Key{Pos: p, Dir: d})
			}
		}
	}
	return out
}
