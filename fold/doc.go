// Package fold folds a flat cube net into a cube and stitches the cut
// edges together, producing a WarpTable that tells a surface walker where
// it lands when it steps off the net.
//
// What
//
//   - LocateFaces splits the net's bounding box into n×n blocks and keeps the
//     six blocks whose top-left tile belongs to the net.
//   - LabelFaces runs a FIFO breadth-first search over flat block adjacency,
//     names the first face Front and rolls the cube across the net to name
//     the other five, recording for every face which cube face lies in each
//     planar direction.
//   - Stitch walks every boundary of every face that has no flat neighbour,
//     resolves the cube edge it belongs to, and zips it against the other
//     boundary sharing that cube edge, in the orientation given by their
//     leading vertices.
//   - Build chains the three stages and returns an immutable WarpTable.
//
// Invariants
//
//	A cube has 6 faces, 8 vertices and 12 edges. A net keeps 5 of the edges
//	connected; the other 7 are cut, each into 2 boundaries of n tiles, so a
//	WarpTable always holds 14·n entries.
//
// Determinism
//
//	Faces are discovered row-major, the BFS queue is first-in-first-out and
//	neighbours are scanned in the order Right, Down, Left, Up, so the same
//	net always yields the same labels and the same table.
//
// Face size
//
//	The default GCDFaceSize = gcd(width, height) of the bounding box is a
//	heuristic: it is correct for every cube net whose bounding box is tight
//	(4×3, 3×4, 5×2, 2×5 blocks) but would be wrong for a padded box.
//	AreaFaceSize derives n from the tile count instead, and WithFaceSize
//	fixes n outright.
//
// Errors
//
//   - ErrGridNil, ErrDisconnected: there is no single net to fold.
//   - ErrFaceSize, ErrFaceCount: the net does not split into six n×n faces.
//   - ErrUnlabelled, ErrDuplicateLabel, ErrRotation: the faces do not fold.
//   - ErrNoCommonEdge, ErrNoCommonVertex, ErrEdgeOverused, ErrEdgeUnpaired:
//     the boundaries do not stitch.
//   - ErrNotBoundary, ErrMissingWarp: a Warp call outside its precondition.
//   - ErrOptionViolation: an invalid Option.
//
// All of these describe a malformed net or a caller logic error; none is
// transient.
package fold
