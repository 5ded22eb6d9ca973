// Package route parses the walking instructions that follow a cube net:
// a run of move counts and single-letter turns such as "10R5L5R10L4R5L5".
//
// Grammar:
//
//	Path := Step*
//	Step := Int | Turn
//	Int  := [0-9]+
//	Turn := "L" | "R"
//
// Whitespace between tokens is ignored. A path with no steps is rejected
// with ErrEmptyPath; anything the grammar does not accept is ErrSyntax.
package route
