// Package cubefold folds a flat cube net into a cube and walks routes
// across it.
//
// A net is a sparse map of open ('.') and wall ('#') tiles made of six
// n×n faces. Folding assigns every face a cube face, then pairs the
// boundaries that meet on the same cube edge so that a walker stepping
// off the net knows where it re-enters and which way it then faces.
//
// Everything is organized under these subpackages:
//
//	grid/          positions, directions, tiles and the parsed net
//	cube/          bit-pattern cube faces, edges, vertices and the rotation table
//	fold/          face location, BFS labelling, edge stitching and the WarpTable
//	route/         the move/turn path grammar
//	walk/          notes parsing, the walker, flat wrap-around and passwords
//	cmd/cubewalk/  the command-line front end
//
// Quick ASCII example, one tile per face:
//
//	 F
//	LBRT
//	 K
//
// F is Front, L Left, B Bottom, R Right, T Top and K Back.
//
// Five of the twelve cube edges are already joined on paper; the other
// seven are stitched, giving 14·n warps for faces of side n.
//
//	go install github.com/katalvlaran/cubefold/cmd/cubewalk@latest
package cubefold
