package fold

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/grid"
)

// FaceSizer derives the face side length from a net. A result below 1
// means the size cannot be derived.
type FaceSizer func(g *grid.Grid) int

// GCDFaceSize returns gcd(Width, Height) of the bounding box.
func GCDFaceSize(g *grid.Grid) int {
	a, b := g.Width, g.Height
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AreaFaceSize returns √(tiles/6), or 0 when the tile count is not 6·n².
func AreaFaceSize(g *grid.Grid) int {
	tiles := g.Len()
	if tiles%6 != 0 {
		return 0
	}
	n := int(math.Sqrt(float64(tiles / 6)))
	for n*n < tiles/6 {
		n++
	}
	if n*n != tiles/6 {
		return 0
	}
	return n
}

// Option configures Build and its stages via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters and callbacks of a fold.
type Options struct {
	// FaceSizer derives n from the grid.
	FaceSizer FaceSizer

	// Logger receives debug traces of every stage.
	Logger *zap.Logger

	// OnLabel is called for every face as soon as the BFS labels it,
	// with its BFS depth from the Front face.
	OnLabel func(f Face, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with GCDFaceSize, a no-op logger and a
// no-op OnLabel hook.
func DefaultOptions() Options {
	return Options{
		FaceSizer: GCDFaceSize,
		Logger:    zap.NewNop(),
		OnLabel:   func(Face, int) {},
	}
}

// WithFaceSize fixes the face side length.
//
//	n > 0: use n
//	n == 0: keep the configured FaceSizer
//	n < 0: invalid option → ErrOptionViolation
func WithFaceSize(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: face size cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.FaceSizer = func(*grid.Grid) int { return n }
		}
	}
}

// WithFaceSizer selects the strategy that derives the face size.
func WithFaceSizer(fn FaceSizer) Option {
	return func(o *Options) {
		if fn != nil {
			o.FaceSizer = fn
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLabel registers a callback run for every labelled face.
func WithOnLabel(fn func(f Face, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
