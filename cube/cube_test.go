package cube_test

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubefold/cube"
)

// TestFaces_Shape checks every label is a 4-vertex set and that opposite
// labels are disjoint complements.
func TestFaces_Shape(t *testing.T) {
	seen := map[cube.Face]bool{}
	for _, f := range cube.Faces {
		require.True(t, f.Valid(), "%s valid", f)
		require.Equal(t, 4, bits.OnesCount8(uint8(f)), "%s has four corners", f)
		require.Len(t, f.Vertices(), 4)
		require.False(t, seen[f], "%s listed twice", f)
		seen[f] = true

		o := f.Opposite()
		require.True(t, o.Valid(), "opposite of %s valid", f)
		require.Zero(t, uint8(f&o), "%s and %s share bits", f, o)
		require.Equal(t, f, o.Opposite())
	}
	require.False(t, cube.Face(0).Valid())
	require.False(t, cube.Face(0b0000_0111).Valid())
}

// TestCommonEdge_Exhaustive resolves all 15 unordered face pairs:
// 12 adjacent pairs give 12 distinct edges, 3 opposite pairs give none.
func TestCommonEdge_Exhaustive(t *testing.T) {
	edges := map[cube.Edge]int{}
	opposite := 0
	for i, a := range cube.Faces {
		for _, b := range cube.Faces[i+1:] {
			e, ok := cube.CommonEdge(a, b)
			if a.Opposite() == b {
				require.False(t, ok, "%s/%s are opposite", a, b)
				opposite++
				continue
			}
			require.True(t, ok, "%s/%s share an edge", a, b)
			require.Equal(t, 2, bits.OnesCount8(uint8(e)))
			back, ok := cube.CommonEdge(b, a)
			require.True(t, ok)
			require.Equal(t, e, back, "CommonEdge is symmetric")
			edges[e]++
		}
	}
	require.Equal(t, 3, opposite)
	require.Len(t, edges, 12)
	for _, e := range cube.Edges {
		require.Equal(t, 1, edges[e], "edge %s resolved once", e)
	}

	for _, f := range cube.Faces {
		_, ok := cube.CommonEdge(f, f)
		require.False(t, ok, "a face has no edge with itself")
	}
	_, ok := cube.CommonEdge(cube.Front, cube.Face(0b0000_0011))
	require.False(t, ok, "invalid label must not resolve")
}

// TestCommonVertex_Exhaustive resolves all 20 face triples: exactly the 8
// mutually adjacent triples meet at a corner, each at a distinct one.
func TestCommonVertex_Exhaustive(t *testing.T) {
	corners := map[cube.Vertex]int{}
	resolved := 0
	fs := cube.Faces
	for i := 0; i < len(fs); i++ {
		for j := i + 1; j < len(fs); j++ {
			for k := j + 1; k < len(fs); k++ {
				a, b, c := fs[i], fs[j], fs[k]
				adjacent := a.Opposite() != b && a.Opposite() != c && b.Opposite() != c
				v, ok := cube.CommonVertex(a, b, c)
				require.Equal(t, adjacent, ok, "%s/%s/%s", a, b, c)
				if ok {
					require.Equal(t, 1, bits.OnesCount8(uint8(v)))
					perm, _ := cube.CommonVertex(c, a, b)
					require.Equal(t, v, perm)
					corners[v]++
					resolved++
				}
			}
		}
	}
	require.Equal(t, 8, resolved)
	for _, v := range cube.Vertices {
		require.Equal(t, 1, corners[v], "vertex %s resolved once", v)
	}
}

// TestNextLeft_Table checks the 24-entry rotation table against the
// vertex geometry: every entry names a face adjacent to both inputs, the
// four entries of each face form the Touching cycle, and every ordered
// adjacent pair is present.
func TestNextLeft_Table(t *testing.T) {
	require.Equal(t, 24, cube.Rotations())
	for _, u := range cube.Faces {
		ring := u.Touching()
		for i, v := range ring {
			w, ok := cube.NextLeft(u, v)
			require.True(t, ok, "entry %s->%s", u, v)
			_, ok = cube.CommonVertex(u, v, w)
			require.True(t, ok, "%s, %s, %s meet at a corner", u, v, w)
			require.Equal(t, ring[(i+1)%4], w, "Touching(%s) follows NextLeft", u)
		}
		_, ok := cube.NextLeft(u, u.Opposite())
		require.False(t, ok, "%s and its opposite are not adjacent", u)
	}
}

// TestNextLeft_Chirality verifies the table turns the same way on every
// face: after rolling from u onto v, turning right and rolling onto the
// right-hand face leaves the old heading (away from u) on the left.
func TestNextLeft_Chirality(t *testing.T) {
	for _, u := range cube.Faces {
		for _, v := range u.Touching() {
			l, _ := cube.NextLeft(u, v)
			// On v facing away from u the right-hand face is l's opposite.
			r := l.Opposite()
			back, ok := cube.NextLeft(v, r)
			require.True(t, ok)
			require.Equal(t, u.Opposite(), back, "from %s onto %s", v, r)
		}
	}
}

// TestParseAndStringers covers names.
func TestParseAndStringers(t *testing.T) {
	for _, f := range cube.Faces {
		got, err := cube.Parse(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := cube.Parse("Side")
	require.True(t, errors.Is(err, cube.ErrNotAFace))
	require.Equal(t, "FrontTop", cube.FrontTop.String())
	require.Equal(t, "BackBottomLeft", cube.BackBottomLeft.String())
	require.Contains(t, cube.Edge(0xff).String(), "Edge(")
}
