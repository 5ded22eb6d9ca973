package cube

import (
	"errors"
	"fmt"
)

// ErrNotAFace is returned by Parse for an unknown face name.
var ErrNotAFace = errors.New("cube: unknown face")

// Face is a cube face, stored as the set of its four vertices.
type Face uint8

// Face labels. The zero Face is "no face".
const (
	Front  Face = 0b0000_1111
	Top    Face = 0b0011_0011
	Bottom Face = 0b1100_1100
	Left   Face = 0b1001_1001
	Right  Face = 0b0110_0110
	Back   Face = 0b1111_0000
)

// Faces lists all six labels.
var Faces = [6]Face{Front, Back, Left, Right, Top, Bottom}

// Edge is a cube edge, stored as the set of its two vertices.
type Edge uint8

// Edge identities.
const (
	FrontTop    Edge = 0b0000_0011
	FrontRight  Edge = 0b0000_0110
	FrontBottom Edge = 0b0000_1100
	FrontLeft   Edge = 0b0000_1001
	BackTop     Edge = 0b0011_0000
	BackRight   Edge = 0b0110_0000
	BackBottom  Edge = 0b1100_0000
	BackLeft    Edge = 0b1001_0000
	LeftTop     Edge = 0b0001_0001
	LeftBottom  Edge = 0b1000_1000
	RightTop    Edge = 0b0010_0010
	RightBottom Edge = 0b0100_0100
)

// Edges lists all twelve edges.
var Edges = [12]Edge{
	FrontTop, FrontRight, FrontBottom, FrontLeft,
	BackTop, BackRight, BackBottom, BackLeft,
	LeftTop, LeftBottom, RightTop, RightBottom,
}

// Vertex is a cube corner, stored as a single bit.
type Vertex uint8

// Vertex identities, numbered as in the package documentation.
const (
	FrontTopLeft     Vertex = 0b0000_0001
	FrontTopRight    Vertex = 0b0000_0010
	FrontBottomRight Vertex = 0b0000_0100
	FrontBottomLeft  Vertex = 0b0000_1000
	BackTopLeft      Vertex = 0b0001_0000
	BackTopRight     Vertex = 0b0010_0000
	BackBottomRight  Vertex = 0b0100_0000
	BackBottomLeft   Vertex = 0b1000_0000
)

// Vertices lists all eight corners.
var Vertices = [8]Vertex{
	FrontTopLeft, FrontTopRight, FrontBottomRight, FrontBottomLeft,
	BackTopLeft, BackTopRight, BackBottomRight, BackBottomLeft,
}

var faceNames = map[Face]string{
	Front: "Front", Back: "Back", Left: "Left",
	Right: "Right", Top: "Top", Bottom: "Bottom",
}

var edgeNames = map[Edge]string{
	FrontTop: "FrontTop", FrontRight: "FrontRight", FrontBottom: "FrontBottom", FrontLeft: "FrontLeft",
	BackTop: "BackTop", BackRight: "BackRight", BackBottom: "BackBottom", BackLeft: "BackLeft",
	LeftTop: "LeftTop", LeftBottom: "LeftBottom", RightTop: "RightTop", RightBottom: "RightBottom",
}

var vertexNames = map[Vertex]string{
	FrontTopLeft: "FrontTopLeft", FrontTopRight: "FrontTopRight",
	FrontBottomRight: "FrontBottomRight", FrontBottomLeft: "FrontBottomLeft",
	BackTopLeft: "BackTopLeft", BackTopRight: "BackTopRight",
	BackBottomRight: "BackBottomRight", BackBottomLeft: "BackBottomLeft",
}

// Valid reports whether f is one of the six labels.
func (f Face) Valid() bool {
	_, ok := faceNames[f]
	return ok
}

func (f Face) String() string {
	if name, ok := faceNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Face(%#08b)", uint8(f))
}

// Parse returns the face with the given name ("Front", "Top", …).
func Parse(name string) (Face, error) {
	for f, n := range faceNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotAFace, name)
}

// Opposite returns the face across the cube. It is the bitwise complement,
// so Opposite of an invalid face is not a valid face.
func (f Face) Opposite() Face {
	return ^f
}

// Touching returns the four faces adjacent to f as a cycle in which each
// entry is NextLeft(f, previous entry).
func (f Face) Touching() [4]Face {
	switch f {
	case Front:
		return [4]Face{Top, Left, Bottom, Right}
	case Left:
		return [4]Face{Top, Back, Bottom, Front}
	case Right:
		return [4]Face{Top, Front, Bottom, Back}
	case Back:
		return [4]Face{Top, Right, Bottom, Left}
	case Top:
		return [4]Face{Front, Right, Back, Left}
	case Bottom:
		return [4]Face{Front, Left, Back, Right}
	}
	return [4]Face{}
}

// Vertices returns the four corners of f in ascending bit order.
func (f Face) Vertices() []Vertex {
	out := make([]Vertex, 0, 4)
	for _, v := range Vertices {
		if uint8(f)&uint8(v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Valid reports whether e is one of the twelve edges.
func (e Edge) Valid() bool {
	_, ok := edgeNames[e]
	return ok
}

func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Edge(%#08b)", uint8(e))
}

// Valid reports whether v is one of the eight corners.
func (v Vertex) Valid() bool {
	_, ok := vertexNames[v]
	return ok
}

func (v Vertex) String() string {
	if name, ok := vertexNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Vertex(%#08b)", uint8(v))
}

// CommonEdge returns the edge shared by a and b.
// ok is false for opposite faces, equal faces, or invalid labels.
func CommonEdge(a, b Face) (e Edge, ok bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}
	e = Edge(a & b)
	return e, e.Valid()
}

// CommonVertex returns the corner shared by a, b and c.
// ok is false unless the three faces are valid and meet at one corner.
func CommonVertex(a, b, c Face) (v Vertex, ok bool) {
	if !a.Valid() || !b.Valid() || !c.Valid() {
		return 0, false
	}
	v = Vertex(a & b & c)
	return v, v.Valid()
}
