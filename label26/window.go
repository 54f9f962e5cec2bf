package label26

import (
	"github.com/katalvlaran/voxlath/voxel"
)

// window owns the single reusable scratch buffer of one Label run: a
// (2n₁+1)×(2n₂+1)×(2n₃+1) cell grid centered on the current seed. The
// buffer is fully overwritten by every extract call, so no state leaks
// between placements.
type window struct {
	radius [3]int // per-axis radii (n₁,n₂,n₃), each >= 1
	dim    [3]int // scratch dimensions, 2·radius+1 per axis
	maxR   int    // max(n₁,n₂,n₃), the outermost shell grown
	buf    []cell
}

// newWindow derives the per-axis radii from the volume dimensions and
// the requested window shape — radius = ceil(max(1, min(dim,win)−1)/2),
// never below 1 — and allocates the scratch buffer once.
func newWindow(dimX, dimY, dimZ int, win [3]int) *window {
	w := &window{}
	for axis, dim := range [3]int{dimX, dimY, dimZ} {
		extent := win[axis]
		if dim < extent {
			extent = dim
		}
		extent--
		if extent < 1 {
			extent = 1
		}
		w.radius[axis] = (extent + 1) / 2
		w.dim[axis] = 2*w.radius[axis] + 1
		if w.radius[axis] > w.maxR {
			w.maxR = w.radius[axis]
		}
	}
	w.buf = make([]cell, w.dim[0]*w.dim[1]*w.dim[2])
	return w
}

// center returns the buffer-local coordinate of the window center.
func (w *window) center() voxel.Coord {
	return voxel.Coord{X: w.radius[0], Y: w.radius[1], Z: w.radius[2]}
}

// index maps a buffer-local coordinate to its flat buffer index.
func (w *window) index(p voxel.Coord) int {
	return p.X + w.dim[0]*(p.Y+w.dim[1]*p.Z)
}

// coordOf converts a flat buffer index back to a buffer-local coordinate.
func (w *window) coordOf(idx int) voxel.Coord {
	x := idx % w.dim[0]
	idx /= w.dim[0]
	return voxel.Coord{X: x, Y: idx % w.dim[1], Z: idx / w.dim[1]}
}

// onFace reports whether a buffer-local coordinate sits on the window's
// outer face: its offset from the center equals the radius on at least
// one axis. Growth reaching such a cell may continue beyond the window,
// so its global coordinate must be requeued.
func (w *window) onFace(p voxel.Coord) bool {
	return p.X == 0 || p.X == w.dim[0]-1 ||
		p.Y == 0 || p.Y == w.dim[1]-1 ||
		p.Z == 0 || p.Z == w.dim[2]-1
}

// toGlobal maps a buffer-local coordinate to the global coordinate it
// was extracted from, given the global window center c.
func (w *window) toGlobal(p, c voxel.Coord) voxel.Coord {
	return voxel.Coord{
		X: c.X + p.X - w.radius[0],
		Y: c.Y + p.Y - w.radius[1],
		Z: c.Z + p.Z - w.radius[2],
	}
}

// extract resets the whole scratch buffer to background and copies the
// axis-aligned intersection of the window [c−radius, c+radius] with the
// volume bounds out of src, each value landing at the matching relative
// displacement from the buffer center. Window cells falling outside the
// volume stay background — boundary padding for free. Copy semantics:
// the buffer never aliases the volume.
//
// Complexity: O(buffer) time, zero allocations.
func (w *window) extract(src *voxel.Grid, c voxel.Coord) {
	for i := range w.buf {
		w.buf[i] = cell{}
	}
	dimX, dimY, dimZ := src.Dims()
	lo, hi := clampBox(c, w.radius, [3]int{dimX, dimY, dimZ})
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				b := w.index(voxel.Coord{
					X: x - c.X + w.radius[0],
					Y: y - c.Y + w.radius[1],
					Z: z - c.Z + w.radius[2],
				})
				switch v := src.At(x, y, z); {
				case v == valBackground:
					// already reset
				case v == valUnvisited:
					w.buf[b] = cell{state: stateUnvisited}
				default:
					w.buf[b] = cell{state: stateFinalized, label: v}
				}
			}
		}
	}
}

// commit writes every scratch cell finalized with the given label back
// to its global coordinate in dst (the inverse displacement of extract)
// and leaves every other global cell untouched. Idempotent: committing
// an unchanged buffer twice changes nothing.
//
// Complexity: O(buffer) time.
func (w *window) commit(dst *voxel.Grid, c voxel.Coord, label int32) {
	dimX, dimY, dimZ := dst.Dims()
	lo, hi := clampBox(c, w.radius, [3]int{dimX, dimY, dimZ})
	for z := lo.Z; z <= hi.Z; z++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				b := w.index(voxel.Coord{
					X: x - c.X + w.radius[0],
					Y: y - c.Y + w.radius[1],
					Z: z - c.Z + w.radius[2],
				})
				if cl := w.buf[b]; cl.state == stateFinalized && cl.label == label {
					dst.Set(x, y, z, label)
				}
			}
		}
	}
}

// clampBox intersects the box [c−radius, c+radius] with [0,dim) per
// axis and returns the inclusive corner coordinates.
func clampBox(c voxel.Coord, radius, dim [3]int) (lo, hi voxel.Coord) {
	lo = voxel.Coord{X: c.X - radius[0], Y: c.Y - radius[1], Z: c.Z - radius[2]}
	hi = voxel.Coord{X: c.X + radius[0], Y: c.Y + radius[1], Z: c.Z + radius[2]}
	if lo.X < 0 {
		lo.X = 0
	}
	if lo.Y < 0 {
		lo.Y = 0
	}
	if lo.Z < 0 {
		lo.Z = 0
	}
	if hi.X > dim[0]-1 {
		hi.X = dim[0] - 1
	}
	if hi.Y > dim[1]-1 {
		hi.Y = dim[1] - 1
	}
	if hi.Z > dim[2]-1 {
		hi.Z = dim[2] - 1
	}
	return lo, hi
}
