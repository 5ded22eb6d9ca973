package walk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/grid"
	"github.com/katalvlaran/cubefold/route"
)

// Warper resolves a step off the net into the tile and facing it lands on.
// *fold.WarpTable and Torus both satisfy it.
type Warper interface {
	Warp(p grid.Position, d grid.Direction) (grid.Position, grid.Direction, error)
}

// State is the walker's position and facing.
type State struct {
	Pos    grid.Position
	Facing grid.Direction
}

// Password returns 1000·row + 4·column + facing.
func (s State) Password() int {
	return 1000*s.Pos.Row + 4*s.Pos.Col + s.Facing.Facing()
}

func (s State) String() string {
	return fmt.Sprintf("%s %s", s.Pos, s.Facing)
}

// Option configures Run.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger traces every warp at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Run follows path over g, resolving every step off the net through w.
// Complexity: O(path distance).
func Run(g *grid.Grid, path route.Path, w Warper, opts ...Option) (State, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if w == nil {
		return State{}, ErrWarperNil
	}

	start, ok := g.FirstOpen(1)
	if !ok {
		return State{}, ErrNoStart
	}
	s := State{Pos: start, Facing: grid.Right}

	for i, step := range path {
		if step.IsTurn() {
			s.Facing = step.Turn.Apply(s.Facing)
			continue
		}
		for n := 0; n < step.Move; n++ {
			next, ok, err := advance(g, s, w, o.log)
			if err != nil {
				return s, fmt.Errorf("step %d (%s): %w", i+1, step, err)
			}
			if !ok {
				break
			}
			s = next
		}
	}

	return s, nil
}

// advance moves one tile. ok is false when a wall is in the way.
func advance(g *grid.Grid, s State, w Warper, log *zap.Logger) (State, bool, error) {
	next := State{Pos: s.Pos.Step(s.Facing), Facing: s.Facing}
	if g.At(next.Pos) == grid.Void {
		p, d, err := w.Warp(s.Pos, s.Facing)
		if err != nil {
			return s, false, err
		}
		next = State{Pos: p, Facing: d}
		if g.At(p) == grid.Void {
			return s, false, fmt.Errorf("%w: %s -> %s", ErrFellOff, s, next)
		}
		log.Debug("warp", zap.Stringer("from", s), zap.Stringer("to", next), zap.Bool("blocked", g.At(p) == grid.Wall))
	}
	if g.At(next.Pos) == grid.Wall {
		return s, false, nil
	}
	return next, true, nil
}
