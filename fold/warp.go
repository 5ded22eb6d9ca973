package fold

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/grid"
)

// WarpTable maps every step off the edge of a cube net to the tile and
// facing it lands on once the net is folded. It is read-only and safe
// for concurrent use once Build returns.
type WarpTable struct {
	grid    *grid.Grid
	net     *Net
	entries map[Key]Dest
}

// Build locates, labels and stitches the faces of g.
// Any failure means the net is malformed or unsupported; see the package
// documentation for the error set.
func Build(g *grid.Grid, opts ...Option) (*WarpTable, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if comps := g.Components(); len(comps) != 1 {
		return nil, fmt.Errorf("%w: %d regions", ErrDisconnected, len(comps))
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	log := o.Logger

	size := o.FaceSizer(g)
	faces, err := LocateFaces(g, size)
	if err != nil {
		return nil, err
	}
	for _, f := range faces {
		log.Debug("face located", zap.Int("face", f.Index), zap.Stringer("anchor", f.Anchor))
	}

	net, err := labelFaces(faces, o)
	if err != nil {
		return nil, err
	}
	entries, err := stitch(net, log)
	if err != nil {
		return nil, err
	}

	log.Info("warp table built",
		zap.Int("face_size", size),
		zap.Int("flat_edges", net.FlatEdges()),
		zap.Int("entries", len(entries)),
	)
	return &WarpTable{grid: g, net: net, entries: entries}, nil
}

// Warp returns where a walker on open tile p lands when it steps off the
// net in direction d, and the facing it assumes there.
// The step must leave the net: p must be open and p.Step(d) void,
// otherwise ErrNotBoundary. ErrMissingWarp means the table is defective.
// A nil table returns ErrGridNil.
// Complexity: O(1).
func (w *WarpTable) Warp(p grid.Position, d grid.Direction) (grid.Position, grid.Direction, error) {
	if w == nil || w.grid == nil {
		return p, d, ErrGridNil
	}
	if w.grid.At(p) != grid.Open || w.grid.At(p.Step(d)) != grid.Void {
		return p, d, fmt.Errorf("%w: %s %s", ErrNotBoundary, p, d)
	}
	dst, ok := w.entries[Key{Pos: p, Dir: d}]
	if !ok {
		return p, d, fmt.Errorf("%w: %s %s", ErrMissingWarp, p, d)
	}
	return dst.Pos, dst.Facing, nil
}

// Lookup returns the raw entry for (p, d) without checking tile state.
func (w *WarpTable) Lookup(p grid.Position, d grid.Direction) (Dest, bool) {
	dst, ok := w.entries[Key{Pos: p, Dir: d}]
	return dst, ok
}

// Len returns the number of entries, 14·n for a valid net.
func (w *WarpTable) Len() int {
	return len(w.entries)
}

// Net returns the labelled net the table was stitched from.
func (w *WarpTable) Net() *Net {
	return w.net
}

// Grid returns the net's tiles.
func (w *WarpTable) Grid() *grid.Grid {
	return w.grid
}

// Entries returns every warp ordered by source row, column and direction.
// Complexity: O(E log E).
func (w *WarpTable) Entries() []Entry {
	out := make([]Entry, 0, len(w.entries))
	for k, v := range w.entries {
		out = append(out, Entry{From: k, To: v})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].From, out[j].From
		if a.Pos != b.Pos {
			return a.Pos.Less(b.Pos)
		}
		return a.Dir < b.Dir
	})
	return out
}

// String renders an entry as "row,col Dir -> row,col Dir".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s -> %s %s", e.From.Pos, e.From.Dir, e.To.Pos, e.To.Facing)
}
