package fold

import (
	"github.com/katalvlaran/cubefold/cube"
	"github.com/katalvlaran/cubefold/grid"
)

// Face is one n×n block of the net. Anchor is its top-left tile.
// Label and the per-direction cube faces are unset (zero) until the net
// has been labelled; a labelled Face is never modified again.
type Face struct {
	Index  int // discovery order, row-major
	Anchor grid.Position
	Size   int
	Label  cube.Face
	toward [4]cube.Face
}

// Toward returns the cube face reached by leaving f in direction d,
// whether that neighbour is flat in the net or across a cut edge.
func (f Face) Toward(d grid.Direction) cube.Face {
	return f.toward[d&3]
}

// Labelled reports whether the face has been assigned a cube face.
func (f Face) Labelled() bool {
	return f.Label.Valid()
}

// Sibling returns the anchor of the block adjacent to f in direction d.
// The block may lie outside the net.
// Complexity: O(1).
func (f Face) Sibling(d grid.Direction) grid.Position {
	return f.Anchor.Offset(d, f.Size)
}

// Contains reports whether tile p lies within the face.
func (f Face) Contains(p grid.Position) bool {
	return p.Row >= f.Anchor.Row && p.Row < f.Anchor.Row+f.Size &&
		p.Col >= f.Anchor.Col && p.Col < f.Anchor.Col+f.Size
}

// Boundary returns the n tiles along the side of f facing direction d.
// The sequence starts at the corner shared with the side facing
// d.TurnLeft() and runs clockwise, so for Right it runs top to bottom,
// for Down right to left, for Left bottom to top and for Up left to right.
// Complexity: O(n).
func (f Face) Boundary(d grid.Direction) []grid.Position {
	last := f.Size - 1
	start := f.Anchor
	switch d {
	case grid.Right:
		start = start.Offset(grid.Right, last)
	case grid.Down:
		start = grid.Position{Row: start.Row + last, Col: start.Col + last}
	case grid.Left:
		start = start.Offset(grid.Down, last)
	}

	along := d.TurnRight()
	tiles := make([]grid.Position, f.Size)
	for i := range tiles {
		tiles[i] = start.Offset(along, i)
	}
	return tiles
}

// LeadingVertex returns the cube corner where the Boundary(d) sequence
// starts: the vertex shared by f, the face toward d and the face toward
// d.TurnLeft().
func (f Face) LeadingVertex(d grid.Direction) (cube.Vertex, bool) {
	return cube.CommonVertex(f.Label, f.Toward(d), f.Toward(d.TurnLeft()))
}

// Net is a labelled cube net: six faces of a common size plus the BFS
// order in which they were labelled.
type Net struct {
	size  int
	faces []Face
	at    map[grid.Position]int // anchor -> face index
	order []int
}

// newNet indexes the located faces by anchor.
func newNet(size int, faces []Face) *Net {
	n := &Net{
		size:  size,
		faces: make([]Face, len(faces)),
		at:    make(map[grid.Position]int, len(faces)),
		order: make([]int, 0, len(faces)),
	}
	copy(n.faces, faces)
	for i := range n.faces {
		n.faces[i].Index = i
		n.at[n.faces[i].Anchor] = i
	}
	return n
}

// Size returns the face side length.
func (n *Net) Size() int {
	return n.size
}

// Faces returns a copy of the faces in discovery order.
func (n *Net) Faces() []Face {
	out := make([]Face, len(n.faces))
	copy(out, n.faces)
	return out
}

// Face returns the face with the given discovery index.
func (n *Net) Face(i int) (Face, bool) {
	if i < 0 || i >= len(n.faces) {
		return Face{}, false
	}
	return n.faces[i], true
}

// FaceAt returns the face containing tile p.
// Complexity: O(1).
func (n *Net) FaceAt(p grid.Position) (Face, bool) {
	if p.Row < 1 || p.Col < 1 {
		return Face{}, false
	}
	anchor := grid.Position{
		Row: 1 + (p.Row-1)/n.size*n.size,
		Col: 1 + (p.Col-1)/n.size*n.size,
	}
	i, ok := n.at[anchor]
	if !ok {
		return Face{}, false
	}
	return n.faces[i], true
}

// FaceByLabel returns the face folded onto cube face l.
func (n *Net) FaceByLabel(l cube.Face) (Face, bool) {
	for _, f := range n.faces {
		if f.Label == l {
			return f, true
		}
	}
	return Face{}, false
}

// Flat returns the index of the face adjacent to face i in direction d
// within the flat net.
func (n *Net) Flat(i int, d grid.Direction) (int, bool) {
	if i < 0 || i >= len(n.faces) {
		return 0, false
	}
	j, ok := n.at[n.faces[i].Sibling(d)]
	return j, ok
}

// FlatEdges counts the cube edges that stay connected in the flat net.
// It is 5 for every cube net.
func (n *Net) FlatEdges() int {
	sides := 0
	for i := range n.faces {
		for _, d := range grid.Directions {
			if _, ok := n.Flat(i, d); ok {
				sides++
			}
		}
	}
	return sides / 2
}

// Order returns face indices in the order the BFS labelled them.
func (n *Net) Order() []int {
	out := make([]int, len(n.order))
	copy(out, n.order)
	return out
}

// Key addresses a warp: a boundary tile and the direction stepped off it.
type Key struct {
	Pos grid.Position
	Dir grid.Direction
}

// Dest is where a warp lands and the facing assumed on arrival.
type Dest struct {
	Pos    grid.Position
	Facing grid.Direction
}

// Entry is a single stitched warp.
type Entry struct {
	From Key
	To   Dest
}
