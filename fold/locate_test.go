package fold_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/cubefold/fold"
	"github.com/katalvlaran/cubefold/grid"
)

// TestLocateFaces_Sample checks the classic net splits into six 4×4 faces,
// discovered row-major.
func TestLocateFaces_Sample(t *testing.T) {
	g, err := grid.Parse(sampleNet)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	size := fold.GCDFaceSize(g)
	if size != 4 {
		t.Fatalf("GCDFaceSize = %d; want 4", size)
	}
	faces, err := fold.LocateFaces(g, size)
	if err != nil {
		t.Fatalf("LocateFaces failed: %v", err)
	}

	want := []grid.Position{{Row: 1, Col: 9}, {Row: 5, Col: 1}, {Row: 5, Col: 5}, {Row: 5, Col: 9}, {Row: 9, Col: 9}, {Row: 9, Col: 13}}
	got := make([]grid.Position, len(faces))
	for i, f := range faces {
		got[i] = f.Anchor
		if f.Index != i || f.Size != 4 || f.Labelled() {
			t.Errorf("face %d = %+v; want index %d, size 4, unlabelled", i, f, i)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("anchors = %v; want %v", got, want)
	}
}

// TestLocateFaces_AllNets checks every cube net yields six equal faces
// under the default heuristic, for several face sizes.
func TestLocateFaces_AllNets(t *testing.T) {
	for name, layout := range cubeNets {
		for _, n := range []int{1, 2, 5} {
			g := mustGrid(t, layout, n)
			size := fold.GCDFaceSize(g)
			if size != n {
				t.Errorf("%s/%d: GCDFaceSize = %d", name, n, size)
				continue
			}
			if area := fold.AreaFaceSize(g); area != n {
				t.Errorf("%s/%d: AreaFaceSize = %d", name, n, area)
			}
			faces, err := fold.LocateFaces(g, size)
			if err != nil {
				t.Errorf("%s/%d: %v", name, n, err)
				continue
			}
			if len(faces) != 6 {
				t.Errorf("%s/%d: %d faces", name, n, len(faces))
			}
		}
	}
}

// TestLocateFaces_Errors covers invalid sizes and face counts.
func TestLocateFaces_Errors(t *testing.T) {
	g, _ := grid.Parse(sampleNet)

	if _, err := fold.LocateFaces(nil, 4); !errors.Is(err, fold.ErrGridNil) {
		t.Errorf("nil grid: got %v; want ErrGridNil", err)
	}
	for _, size := range []int{0, -4} {
		if _, err := fold.LocateFaces(g, size); !errors.Is(err, fold.ErrFaceSize) {
			t.Errorf("size %d: got %v; want ErrFaceSize", size, err)
		}
	}
	// 2×2 blocks tile the net 24 times; 3×3 blocks leave 9 anchors on tiles.
	for _, size := range []int{2, 3} {
		if _, err := fold.LocateFaces(g, size); !errors.Is(err, fold.ErrFaceCount) {
			t.Errorf("size %d: got %v; want ErrFaceCount", size, err)
		}
	}
	// Five blocks only.
	five := mustGrid(t, []string{"####", "#"}, 1)
	if _, err := fold.LocateFaces(five, 1); !errors.Is(err, fold.ErrFaceCount) {
		t.Errorf("five faces: got %v; want ErrFaceCount", err)
	}
}

// TestAreaFaceSize_Rejects returns 0 for tile counts that are not 6·n².
func TestAreaFaceSize_Rejects(t *testing.T) {
	for _, text := range []string{".......", "......\n......"} {
		g, err := grid.Parse(text)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if n := fold.AreaFaceSize(g); n != 0 {
			t.Errorf("AreaFaceSize(%d tiles) = %d; want 0", g.Len(), n)
		}
	}
}
