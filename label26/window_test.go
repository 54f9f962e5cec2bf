// File: label26/window_test.go
package label26

import (
	"testing"

	"github.com/katalvlaran/voxlath/voxel"
)

// TestNewWindow_RadiusDerivation walks the radius formula
// ceil(max(1, min(dim,win)−1)/2) through its interesting cases.
func TestNewWindow_RadiusDerivation(t *testing.T) {
	cases := []struct {
		name string
		dims [3]int
		win  [3]int
		want [3]int
	}{
		{"minimum window", [3]int{5, 5, 5}, [3]int{3, 3, 3}, [3]int{1, 1, 1}},
		{"degenerate window still radius 1", [3]int{5, 5, 5}, [3]int{1, 1, 1}, [3]int{1, 1, 1}},
		{"even window rounds up", [3]int{9, 9, 9}, [3]int{4, 6, 8}, [3]int{2, 3, 4}},
		{"odd window", [3]int{9, 9, 9}, [3]int{5, 7, 9}, [3]int{2, 3, 4}},
		{"window clamped to volume", [3]int{5, 4, 3}, [3]int{100, 100, 100}, [3]int{2, 2, 1}},
		{"single-voxel volume", [3]int{1, 1, 1}, [3]int{7, 7, 7}, [3]int{1, 1, 1}},
		{"anisotropic", [3]int{20, 1, 20}, [3]int{7, 7, 3}, [3]int{3, 1, 1}},
	}

	for _, tc := range cases {
		w := newWindow(tc.dims[0], tc.dims[1], tc.dims[2], tc.win)
		if w.radius != tc.want {
			t.Errorf("%s: radii = %v; want %v", tc.name, w.radius, tc.want)
		}
		for axis := 0; axis < 3; axis++ {
			if w.dim[axis] != 2*w.radius[axis]+1 {
				t.Errorf("%s: dim[%d] = %d; want 2·r+1 = %d", tc.name, axis, w.dim[axis], 2*w.radius[axis]+1)
			}
		}
		if len(w.buf) != w.dim[0]*w.dim[1]*w.dim[2] {
			t.Errorf("%s: buffer length %d does not match dims %v", tc.name, len(w.buf), w.dim)
		}
	}
}

// TestWindow_ExtractPadsBoundary extracts a window hanging over the
// volume edge and checks that out-of-volume cells stay background while
// in-volume cells arrive at the right displacement.
func TestWindow_ExtractPadsBoundary(t *testing.T) {
	g, err := voxel.New(2, 2, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Fill(valUnvisited)

	w := newWindow(2, 2, 2, [3]int{3, 3, 3})
	w.extract(g, voxel.Coord{}) // corner seed: 8 of 27 cells in-volume

	inVolume := 0
	for i, cl := range w.buf {
		p := w.coordOf(i)
		global := w.toGlobal(p, voxel.Coord{})
		if g.InBounds(global.X, global.Y, global.Z) {
			if cl.state != stateUnvisited {
				t.Errorf("in-volume cell %v extracted as state %d; want unvisited", p, cl.state)
			}
			inVolume++
		} else if cl.state != stateBackground {
			t.Errorf("padding cell %v holds state %d; want background", p, cl.state)
		}
	}
	if inVolume != 8 {
		t.Errorf("extracted %d in-volume cells; want 8", inVolume)
	}
}

// TestWindow_ExtractResets verifies that extraction fully overwrites
// whatever the previous window step left in the shared buffer.
func TestWindow_ExtractResets(t *testing.T) {
	g, err := voxel.New(3, 3, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w := newWindow(3, 3, 3, [3]int{3, 3, 3})
	for i := range w.buf {
		w.buf[i] = cell{state: stateFinalized, label: 99} // stale residue
	}
	w.extract(g, voxel.Coord{X: 1, Y: 1, Z: 1})

	for i, cl := range w.buf {
		if cl.state != stateBackground || cl.label != 0 {
			t.Fatalf("cell %v not reset: %+v", w.coordOf(i), cl)
		}
	}
}

// TestWindow_CommitWritesOnlyMatchingLabel builds a scratch buffer by
// hand and checks commit writes exactly the cells finalized with the
// current label — not discovered cells, not cells from earlier labels —
// and that re-committing changes nothing.
func TestWindow_CommitWritesOnlyMatchingLabel(t *testing.T) {
	g, err := voxel.New(3, 3, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Set(0, 0, 0, 4) // pre-existing neighbor component

	w := newWindow(3, 3, 3, [3]int{3, 3, 3})
	c := voxel.Coord{X: 1, Y: 1, Z: 1}
	w.extract(g, c)
	w.buf[w.index(voxel.Coord{X: 1, Y: 1, Z: 1})] = cell{state: stateFinalized, label: 5}
	w.buf[w.index(voxel.Coord{X: 2, Y: 1, Z: 1})] = cell{state: stateFinalized, label: 5}
	w.buf[w.index(voxel.Coord{X: 1, Y: 2, Z: 1})] = cell{state: stateDiscovered}

	w.commit(g, c, 5)

	if got := g.At(1, 1, 1); got != 5 {
		t.Errorf("center = %d; want 5", got)
	}
	if got := g.At(2, 1, 1); got != 5 {
		t.Errorf("(2,1,1) = %d; want 5", got)
	}
	if got := g.At(1, 2, 1); got != valBackground {
		t.Errorf("discovered cell leaked into volume: (1,2,1) = %d; want background", got)
	}
	if got := g.At(0, 0, 0); got != 4 {
		t.Errorf("foreign label overwritten: (0,0,0) = %d; want 4", got)
	}

	// Idempotence: a second commit of the unchanged buffer is a no-op.
	before := g.ToSlices()
	w.commit(g, c, 5)
	after := g.ToSlices()
	for z := range before {
		for y := range before[z] {
			for x := range before[z][y] {
				if before[z][y][x] != after[z][y][x] {
					t.Fatalf("re-commit changed (%d,%d,%d): %d -> %d", x, y, z, before[z][y][x], after[z][y][x])
				}
			}
		}
	}
}

// TestWindow_OnFace checks outer-face detection on an anisotropic window.
func TestWindow_OnFace(t *testing.T) {
	w := newWindow(9, 9, 9, [3]int{5, 3, 7}) // radii 2,1,3

	if !w.onFace(voxel.Coord{X: 0, Y: 1, Z: 3}) {
		t.Error("x=0 sits on the outer face")
	}
	if !w.onFace(voxel.Coord{X: 2, Y: 2, Z: 3}) {
		t.Error("y=2·r sits on the outer face")
	}
	if !w.onFace(voxel.Coord{X: 2, Y: 1, Z: 6}) {
		t.Error("z=2·r sits on the outer face")
	}
	if w.onFace(voxel.Coord{X: 1, Y: 1, Z: 3}) {
		t.Error("interior cell reported on the outer face")
	}
}
