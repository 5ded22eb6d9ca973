package fold

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"go.uber.org/zap"

	"github.com/katalvlaran/cubefold/cube"
	"github.com/katalvlaran/cubefold/grid"
)

// canonical is the orientation of the first face: it is Front, seen from
// outside with Top above it.
var canonical = [4]cube.Face{
	grid.Right: cube.Right,
	grid.Down:  cube.Bottom,
	grid.Left:  cube.Left,
	grid.Up:    cube.Top,
}

// queueItem pairs a face index with its BFS depth from the Front face.
type queueItem struct {
	index int
	depth int
}

// labeller encapsulates mutable BFS state.
type labeller struct {
	net   *Net
	opts  Options
	queue *linkedlistqueue.Queue
	owner map[cube.Face]int // label -> face index
}

// LabelFaces assigns cube faces to the six located faces by rolling the
// cube across the flat net, starting with faces[0] as Front.
// Returns ErrFaceCount for anything but six faces, ErrUnlabelled if some
// face is not flatly reachable, ErrDuplicateLabel or ErrRotation if the
// layout does not fold into a cube, or ErrOptionViolation for bad options.
// Complexity: O(F) with F = 6 faces.
func LabelFaces(faces []Face, opts ...Option) (*Net, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return labelFaces(faces, o)
}

func labelFaces(faces []Face, o Options) (*Net, error) {
	if len(faces) != 6 {
		return nil, fmt.Errorf("%w: got %d", ErrFaceCount, len(faces))
	}
	size := faces[0].Size
	for _, f := range faces {
		if f.Size < 1 || f.Size != size {
			return nil, fmt.Errorf("%w: face at %s has size %d, want %d", ErrFaceSize, f.Anchor, f.Size, size)
		}
	}
	w := &labeller{
		net:   newNet(size, faces),
		opts:  o,
		queue: linkedlistqueue.New(),
		owner: make(map[cube.Face]int, 6),
	}

	// Labels come only from the BFS.
	for i := range w.net.faces {
		w.net.faces[i].Label = 0
		w.net.faces[i].toward = [4]cube.Face{}
	}

	// Seed with the first discovered face
	front := &w.net.faces[0]
	front.Label = cube.Front
	front.toward = canonical
	w.enqueue(0, 0)

	if err := w.loop(); err != nil {
		return nil, err
	}
	if len(w.owner) != len(w.net.faces) {
		return nil, fmt.Errorf("%w: %d of %d faces reached", ErrUnlabelled, len(w.owner), len(w.net.faces))
	}

	return w.net, nil
}

// enqueue records a freshly labelled face, fires OnLabel and queues it.
func (w *labeller) enqueue(i, depth int) {
	f := w.net.faces[i]
	w.owner[f.Label] = i
	w.net.order = append(w.net.order, i)
	w.opts.OnLabel(f, depth)
	w.opts.Logger.Debug("face labelled",
		zap.Int("face", i),
		zap.Stringer("anchor", f.Anchor),
		zap.Stringer("label", f.Label),
		zap.Int("depth", depth),
	)
	w.queue.Enqueue(queueItem{index: i, depth: depth})
}

// loop processes the queue until it is empty or a face fails to fold.
func (w *labeller) loop() error {
	for !w.queue.Empty() {
		v, _ := w.queue.Dequeue()
		if err := w.enqueueNeighbors(v.(queueItem)); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors labels every unlabelled flat neighbour of the item's
// face and queues it. Neighbours are scanned Right, Down, Left, Up.
func (w *labeller) enqueueNeighbors(item queueItem) error {
	u := w.net.faces[item.index]
	for _, d := range grid.Directions {
		vi, ok := w.net.Flat(item.index, d)
		if !ok || w.net.faces[vi].Labelled() {
			continue
		}

		label := u.Toward(d)
		if prev, taken := w.owner[label]; taken {
			return fmt.Errorf("%w: %s on faces %d and %d", ErrDuplicateLabel, label, prev, vi)
		}
		left, ok := cube.NextLeft(u.Label, label)
		if !ok {
			return fmt.Errorf("%w: %s -> %s", ErrRotation, u.Label, label)
		}

		v := &w.net.faces[vi]
		v.Label = label
		v.toward[d] = u.Label.Opposite()
		v.toward[d.TurnLeft()] = left
		v.toward[d.TurnRight()] = left.Opposite()
		v.toward[d.Opposite()] = u.Label
		w.enqueue(vi, item.depth+1)
	}
	return nil
}
