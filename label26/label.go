package label26

import (
	"github.com/katalvlaran/voxlath/voxel"
)

// walker encapsulates the mutable state of one Label run: the working
// label volume, the reusable window, the FIFO work queue of the
// component currently being grown, and the label counter.
type walker struct {
	labels   *voxel.Grid
	win      *window
	opts     Options
	queue    []voxel.Coord
	next     int32
	shellBuf []voxel.Coord
	nbrBuf   []voxel.Coord
}

// Label assigns a positive integer component id to every foreground
// voxel of the binary volume v, applying any number of functional
// Options. Two voxels share an id iff they are connected through a
// chain of 26-adjacent foreground voxels; background stays 0. Ids are
// contiguous 1..K in first-discovery (scan) order, and the resulting
// partition is identical for every window shape.
//
// v must hold exactly 0 (background) or 1 (foreground) per voxel.
// Other values are not validated and yield undefined labels; callers
// binarize first. v itself is never mutated.
//
// Returns ErrNilVolume for a nil grid and ErrWindowRank for a window
// shape of the wrong rank, both before any labeling work.
//
// Complexity: O(V · w) time, where V is the volume size and w the
// overlap factor between adjacent window placements; memory is the
// output volume plus one window-sized scratch buffer.
func Label(v *voxel.Grid, opts ...Option) (*voxel.Grid, error) {
	if v == nil {
		return nil, ErrNilVolume
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dimX, dimY, dimZ := v.Dims()
	w := &walker{
		labels: v.Clone(),
		win:    newWindow(dimX, dimY, dimZ, o.Window),
		opts:   o,
		next:   firstLabel,
	}
	w.scan()
	w.remap()

	return w.labels, nil
}

// scan visits every voxel once in deterministic z→y→x order. Each
// still-unvisited foreground voxel seeds a new component: the work
// queue is drained through extract→grow→commit window steps, which may
// requeue boundary-crossing coordinates, until the whole component —
// however many windows it spans — is finalized. Only then does the
// label counter advance; advancing earlier would let two fragments of
// one component receive different ids.
func (w *walker) scan() {
	dimX, dimY, dimZ := w.labels.Dims()
	for z := 0; z < dimZ; z++ {
		for y := 0; y < dimY; y++ {
			for x := 0; x < dimX; x++ {
				if w.labels.At(x, y, z) != valUnvisited {
					continue
				}
				w.queue = append(w.queue[:0], voxel.Coord{X: x, Y: y, Z: z})
				w.drain()
				w.opts.OnComponent(int(w.next - firstLabel + 1))
				w.next++
			}
		}
	}
}

// drain resolves one connected component: dequeue a coordinate, extract
// its window, grow its region, commit the finalized cells, repeat until
// the queue empties. Requeued coordinates may already be finalized from
// an earlier window step; re-growing them is idempotent, the price of
// bounding each step to a window.
func (w *walker) drain() {
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]
		w.win.extract(w.labels, c)
		w.grow(c)
		w.win.commit(w.labels, c, w.next)
	}
}

// remap renumbers the finished volume: committed ids (≥ firstLabel)
// shift down to 1..K, every other residual value becomes background.
func (w *walker) remap() {
	dimX, dimY, dimZ := w.labels.Dims()
	for z := 0; z < dimZ; z++ {
		for y := 0; y < dimY; y++ {
			for x := 0; x < dimX; x++ {
				if v := w.labels.At(x, y, z); v >= firstLabel {
					w.labels.Set(x, y, z, v-firstLabel+1)
				} else if v != valBackground {
					w.labels.Set(x, y, z, valBackground)
				}
			}
		}
	}
}
