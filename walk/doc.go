// Package walk follows a route across a cube net and reports the final
// password.
//
// The walker starts on the leftmost open tile of the first row facing
// Right. Turns rotate in place. A move advances one tile at a time and
// stops early at a wall. When the next tile is off the net, a Warper
// decides where the walker reappears:
//
//   - Torus wraps to the far end of the same row or column, facing unchanged;
//   - *fold.WarpTable crosses the cube edge the net was folded along.
//
// If the tile a warp lands on is a wall, the walker stays put and the
// rest of the move is dropped.
package walk
