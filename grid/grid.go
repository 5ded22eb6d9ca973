package grid

import (
	"fmt"
	"sort"
	"strings"
)

// New constructs a Grid of the given bounds from a tile map.
// It deep-copies the input and drops Void entries so the result is immutable.
// Returns ErrEmptyGrid if no non-void tile remains.
// Complexity: O(T) time and memory, T = number of tiles.
func New(width, height int, tiles map[Position]Tile) (*Grid, error) {
	cells := make(map[Position]Tile, len(tiles))
	for p, t := range tiles {
		if t == Void {
			continue
		}
		cells[p] = t
	}
	if len(cells) == 0 || width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Width: width, Height: height, tiles: cells}, nil
}

// Parse reads the net text format (' ' void, '.' open, '#' wall).
// Row 1 is the first line and column 1 the first byte of each line.
// Trailing newlines are ignored; interior blank lines count as empty rows.
// Complexity: O(W×H).
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	tiles := make(map[Position]Tile)
	width := 0
	for i, line := range lines {
		if len(line) > width {
			width = len(line)
		}
		for j := 0; j < len(line); j++ {
			p := Position{Row: i + 1, Col: j + 1}
			switch line[j] {
			case ' ':
			case '.':
				tiles[p] = Open
			case '#':
				tiles[p] = Wall
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadTile, line[j], p)
			}
		}
	}

	return New(width, len(lines), tiles)
}

// At returns the tile at p, or Void if p lies outside the net.
// Complexity: O(1).
func (g *Grid) At(p Position) Tile {
	return g.tiles[p]
}

// InBounds reports whether p lies within the bounding box.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 1 && p.Row <= g.Height && p.Col >= 1 && p.Col <= g.Width
}

// Len returns the number of non-void tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Positions returns all non-void positions in row-major order.
// Complexity: O(T log T).
func (g *Grid) Positions() []Position {
	out := make([]Position, 0, len(g.tiles))
	for p := range g.tiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// FirstOpen returns the leftmost open tile of the given row.
// Complexity: O(W).
func (g *Grid) FirstOpen(row int) (Position, bool) {
	for col := 1; col <= g.Width; col++ {
		p := Position{Row: row, Col: col}
		if g.tiles[p] == Open {
			return p, true
		}
	}
	return Position{}, false
}

// String renders the grid back into the Parse text format, with trailing
// void trimmed from each row.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 1; row <= g.Height; row++ {
		line := make([]byte, g.Width)
		for col := 1; col <= g.Width; col++ {
			line[col-1] = g.tiles[Position{Row: row, Col: col}].Symbol()
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		if row < g.Height {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
