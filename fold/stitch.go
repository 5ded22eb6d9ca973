package fold

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/cube"
	"github.com/katalvlaran/cubefold/grid"
)

// boundary is one side of a face that has no flat neighbour.
type boundary struct {
	face   int
	dir    grid.Direction
	vertex cube.Vertex
	tiles  []grid.Position
}

// Stitch pairs every cut boundary of a labelled net with the other
// boundary of the same cube edge and returns the resulting warps.
// The returned map is owned by the caller.
//
// Returns ErrNoCommonEdge or ErrNoCommonVertex if labels fail to resolve,
// ErrEdgeOverused if a cube edge is met a third time, ErrEdgeUnpaired if
// a cut cube edge is met only once.
// Complexity: O(n) per boundary, O(14·n) overall.
func Stitch(net *Net, opts ...Option) (map[Key]Dest, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return stitch(net, o.Logger)
}

func stitch(net *Net, log *zap.Logger) (map[Key]Dest, error) {
	pending := make(map[cube.Edge]boundary, 7)
	paired := make(map[cube.Edge]bool, 7)
	out := make(map[Key]Dest, 14*net.size)

	for i, f := range net.faces {
		for _, d := range grid.Directions {
			if _, flat := net.Flat(i, d); flat {
				continue
			}
			b, edge, err := cutBoundary(f, d)
			if err != nil {
				return nil, err
			}
			if paired[edge] {
				return nil, fmt.Errorf("%w: %s at face %d %s", ErrEdgeOverused, edge, i, d)
			}
			first, met := pending[edge]
			if !met {
				pending[edge] = b
				continue
			}

			zip(first, b, out)
			delete(pending, edge)
			paired[edge] = true
			log.Debug("edge stitched",
				zap.Stringer("edge", edge),
				zap.Int("face_a", first.face), zap.Stringer("dir_a", first.dir),
				zap.Int("face_b", b.face), zap.Stringer("dir_b", b.dir),
				zap.Bool("reversed", first.vertex != b.vertex),
			)
		}
	}

	if len(pending) > 0 {
		left := make([]string, 0, len(pending))
		for e := range pending {
			left = append(left, e.String())
		}
		sort.Strings(left)
		return nil, fmt.Errorf("%w: %v", ErrEdgeUnpaired, left)
	}

	return out, nil
}

// cutBoundary resolves the cube edge and leading vertex of side d of f.
func cutBoundary(f Face, d grid.Direction) (boundary, cube.Edge, error) {
	other := f.Toward(d)
	edge, ok := cube.CommonEdge(f.Label, other)
	if !ok {
		return boundary{}, 0, fmt.Errorf("%w: %s and %s (face %d %s)", ErrNoCommonEdge, f.Label, other, f.Index, d)
	}
	vertex, ok := f.LeadingVertex(d)
	if !ok {
		return boundary{}, 0, fmt.Errorf("%w: %s, %s and %s (face %d %s)",
			ErrNoCommonVertex, f.Label, other, f.Toward(d.TurnLeft()), f.Index, d)
	}

	return boundary{face: f.Index, dir: d, vertex: vertex, tiles: f.Boundary(d)}, edge, nil
}

// zip writes both warp directions for every tile pair of a and b.
// Boundaries that start at the same cube vertex run in parallel;
// otherwise b runs against a reversed.
func zip(a, b boundary, out map[Key]Dest) {
	n := len(a.tiles)
	for i, q := range b.tiles {
		p := a.tiles[i]
		if a.vertex != b.vertex {
			p = a.tiles[n-1-i]
		}
		out[Key{Pos: p, Dir: a.dir}] = Dest{Pos: q, Facing: b.dir.Opposite()}
		out[Key{Pos: q, Dir: b.dir}] = Dest{Pos: p, Facing: a.dir.Opposite()}
	}
}
