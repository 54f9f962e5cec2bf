package label26

import (
	"github.com/katalvlaran/voxlath/voxel"
)

// grow expands the component seeded at the window center through the
// freshly extracted scratch buffer, in strictly increasing Chebyshev
// shells, finalizing reached foreground cells with the current label.
// Cells reached on the window's outer face are requeued by global
// coordinate so growth can continue in an adjacent window placement.
//
// gc is the global coordinate of the window center.
//
// Shell order matters: processing distance s before s+1 guarantees a
// cell's neighbors are inspected exactly once, on the shell the cell
// belongs to. Discoveries that land on an already-swept shell are
// caught by the closing sweep, which finalizes and requeues them
// unconditionally (their outer-face status was never checked, so they
// count as boundary risks).
//
// Complexity: O(buffer · 27) time per call, amortized zero allocations
// (the shell slices are reused across calls).
func (w *walker) grow(gc voxel.Coord) {
	win := w.win
	bc := win.center()

	// Step 1: the seed itself joins the component.
	win.buf[win.index(bc)] = cell{state: stateFinalized, label: w.next}

	// Step 2: discover the seed's immediate 26-neighborhood.
	w.shellBuf = shell(w.shellBuf[:0], 1, bc, win.dim)
	for _, n := range w.shellBuf {
		if i := win.index(n); win.buf[i].state == stateUnvisited {
			win.buf[i].state = stateDiscovered
		}
	}

	// Step 3: sweep shells outward, finalizing discovered cells and
	// discovering their neighbors one shell further out.
	for s := 1; s <= win.maxR; s++ {
		w.shellBuf = shell(w.shellBuf[:0], s, bc, win.dim)
		for _, p := range w.shellBuf {
			i := win.index(p)
			if win.buf[i].state != stateDiscovered {
				continue
			}
			if win.onFace(p) {
				w.requeue(win.toGlobal(p, gc))
			}
			w.nbrBuf = shell(w.nbrBuf[:0], 1, p, win.dim)
			for _, n := range w.nbrBuf {
				j := win.index(n)
				if win.buf[j].state != stateUnvisited {
					continue
				}
				win.buf[j].state = stateDiscovered
				if win.onFace(n) {
					w.requeue(win.toGlobal(n, gc))
				}
			}
			win.buf[i] = cell{state: stateFinalized, label: w.next}
		}
	}

	// Step 4: closing sweep. Any cell still Discovered sits on a shell
	// the loop no longer reaches; finalize it and requeue it as a
	// boundary risk. After this, no Discovered cell survives, which is
	// what keeps the transient state out of the committed volume.
	for i := range win.buf {
		if win.buf[i].state != stateDiscovered {
			continue
		}
		win.buf[i] = cell{state: stateFinalized, label: w.next}
		w.requeue(win.toGlobal(win.coordOf(i), gc))
	}
}

// requeue appends a global coordinate to the component's work queue and
// notifies the OnRequeue hook.
func (w *walker) requeue(g voxel.Coord) {
	w.queue = append(w.queue, g)
	w.opts.OnRequeue(g)
}
