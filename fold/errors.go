package fold

import "errors"

// Sentinel errors for net folding and warp lookup.
var (
	// ErrGridNil is returned when Build receives a nil grid or Warp a nil table.
	ErrGridNil = errors.New("fold: grid is nil")

	// ErrDisconnected indicates the net tiles form more than one region.
	ErrDisconnected = errors.New("fold: net is not connected")

	// ErrFaceSize indicates the face size is not positive or differs between faces.
	ErrFaceSize = errors.New("fold: invalid face size")

	// ErrFaceCount indicates the net does not hold exactly six faces.
	ErrFaceCount = errors.New("fold: net must have exactly six faces")

	// ErrUnlabelled indicates the BFS could not reach every face.
	ErrUnlabelled = errors.New("fold: face left unlabelled")

	// ErrDuplicateLabel indicates two faces folded onto the same cube face.
	ErrDuplicateLabel = errors.New("fold: cube face assigned twice")

	// ErrRotation indicates the rotation table has no entry for a face pair.
	ErrRotation = errors.New("fold: faces are not adjacent on the cube")

	// ErrNoCommonEdge indicates two faces do not resolve to a single cube edge.
	ErrNoCommonEdge = errors.New("fold: no common edge")

	// ErrNoCommonVertex indicates three faces do not resolve to a single cube vertex.
	ErrNoCommonVertex = errors.New("fold: no common vertex")

	// ErrEdgeOverused indicates a cube edge was met on more than two boundaries.
	ErrEdgeOverused = errors.New("fold: cube edge stitched more than twice")

	// ErrEdgeUnpaired indicates a cut cube edge was met on only one boundary.
	ErrEdgeUnpaired = errors.New("fold: cube edge left unpaired")

	// ErrNotBoundary is returned by Warp when the walker is not stepping off the net.
	ErrNotBoundary = errors.New("fold: warp requested away from a net boundary")

	// ErrMissingWarp indicates a boundary step with no stitched destination.
	ErrMissingWarp = errors.New("fold: no warp entry")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fold: invalid option supplied")
)
