// Package grid defines positions, directions and tiles for the
// grid subpackage of github.com/katalvlaran/cubefold.
package grid

import "fmt"

// Position is a 1-based tile coordinate.
type Position struct {
	Row, Col int
}

// String renders the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Step returns the neighbouring position one tile away in direction d.
// Complexity: O(1).
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Offset returns p moved by n tiles in direction d.
func (p Position) Offset(d Direction, n int) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + n*dr, Col: p.Col + n*dc}
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Direction is a planar heading. The numeric value is the facing score.
type Direction uint8

const (
	// Right heads toward increasing column.
	Right Direction = iota
	// Down heads toward increasing row.
	Down
	// Left heads toward decreasing column.
	Left
	// Up heads toward decreasing row.
	Up
)

// Directions lists all headings in clockwise order starting from Right.
// Every scan over directions uses this order.
var Directions = [4]Direction{Right, Down, Left, Up}

// offsets[d] is the (row, col) delta for direction d.
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

var directionNames = [4]string{"Right", "Down", "Left", "Up"}

// Delta returns the row and column change of a single step.
func (d Direction) Delta() (dr, dc int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// TurnLeft rotates 90° counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// TurnRight rotates 90° clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// Opposite rotates 180°.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Facing returns the password score of the direction.
func (d Direction) Facing() int { return int(d) }

func (d Direction) String() string {
	if d > Up {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Tile is the state of a single net position.
type Tile uint8

const (
	// Void marks a position outside the net.
	Void Tile = iota
	// Open is a walkable tile.
	Open
	// Wall blocks movement.
	Wall
)

func (t Tile) String() string {
	switch t {
	case Void:
		return "void"
	case Open:
		return "open"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// Symbol returns the text symbol used by Parse.
func (t Tile) Symbol() byte {
	switch t {
	case Open:
		return '.'
	case Wall:
		return '#'
	}
	return ' '
}

// Grid is an immutable sparse net of tiles. Width and Height bound the
// 1-based positions; tiles holds only Open and Wall entries.
type Grid struct {
	Width, Height int
	tiles         map[Position]Tile
}
