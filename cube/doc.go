// Package cube encodes the fixed topology of a cube: six faces, twelve
// edges and eight vertices.
//
// Number the vertices of the front face and of the back face:
//
//	front          back
//	0 --- 1        4 --- 5
//	|     |        |     |
//	3 --- 2        7 --- 6
//
// Each Face is the 8-bit set of the four vertices it touches. Two adjacent
// faces intersect in exactly two bits (their common Edge); three mutually
// adjacent faces intersect in exactly one bit (their common Vertex);
// opposite faces share nothing. CommonEdge and CommonVertex resolve an
// intersection against the closed sets of twelve edges and eight vertices
// and report failure for anything else.
//
// NextLeft is the rotation table used when rolling the cube across a flat
// net: moving from face u onto face v, it names the face that lies to the
// left of v. It is a property of the cube alone and never changes.
package cube
