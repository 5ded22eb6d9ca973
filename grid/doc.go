// Package grid models the flat layout of a cube net as a sparse map of tiles.
//
// What:
//
//   - Position addresses a tile by 1-based (Row, Col).
//   - Direction is one of Right, Down, Left, Up; its numeric value is the
//     facing score used by the walk password (Right=0 … Up=3).
//   - Tile is Open or Wall; positions absent from the map are Void
//     ("outside the net").
//   - Grid wraps the tile map with its bounding Width and Height. It is
//     immutable once built.
//
// Text format (Parse):
//
//	' '  void
//	'.'  open tile
//	'#'  wall
//
// Lines may be ragged; Width is the longest line, Height the line count.
//
// Errors:
//
//   - ErrEmptyGrid: no lines, or no tiles at all.
//   - ErrBadTile: a byte outside the three symbols above.
package grid
