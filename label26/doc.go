// Package label26 labels the connected components of a 3-D binary
// volume under 26-connectivity (full-cube adjacency), producing an
// integer volume where equal positive values mark voxels of the same
// component and 0 marks background.
//
// What
//
//   - Label scans the volume once and flood-grows each component — but
//     never all at once: every growth step is bounded to a small local
//     window copied into one reusable scratch buffer.
//   - Growth that reaches a window's outer face requeues the crossing
//     voxel's global coordinate on an explicit FIFO worklist, so the
//     component keeps growing under adjacent window placements until
//     the queue drains.
//   - Supports functional hooks:
//   - OnComponent (after each component fully resolves)
//   - OnRequeue   (on every boundary-crossing requeue)
//
// Why
//
//   - A plain recursive flood fill risks stack-depth blowup on large
//     components; a full-volume breadth-first front needs frontier
//     memory proportional to the component's surface.
//   - Windowed growth caps the per-step working set at one scratch
//     buffer of fixed shape, independent of volume and component size,
//     at the price of re-visiting boundary voxels where windows overlap.
//
// Determinism
//
//	The scan visits voxels in fixed z→y→x order and components are
//	numbered 1..K in first-discovery order, so output volumes are fully
//	reproducible. The partition itself — which voxels share a label —
//	is invariant under the window shape; only the work distribution
//	across window placements changes.
//
// State machine
//
//	Each voxel moves through Background | Unvisited | Discovered |
//	Finalized(id). Discovered is scratch-buffer-transient: the global
//	volume only ever holds Background, Unvisited, or committed ids.
//
// Complexity (V = volume size, w = window overlap factor)
//
//   - Time:   O(V·w)   (each voxel is finalized once; boundary voxels
//     are re-extracted by at most w overlapping windows)
//   - Memory: O(V)     for the label volume + one window-sized buffer
//
// Usage
//
//	g, _ := voxel.FromSlices(binary) // cells must be exactly 0 or 1
//	labels, err := label26.Label(g, label26.WithWindow(5, 5, 5))
//	if err != nil {
//	    // handle ErrNilVolume or ErrWindowRank
//	}
//	id := labels.At(x, y, z) // 0 = background, 1..K = component id
//
// Options
//
//   - DefaultOptions(): window (3,3,3), no-op hooks.
//   - WithWindow(x, y, z):  requested window shape; per-axis radius is
//     ceil(max(1, min(dim,win)−1)/2), never below 1.
//   - WithOnComponent(fn):  hook after each component resolves.
//   - WithOnRequeue(fn):    hook on each boundary requeue.
//
// Errors
//
//   - ErrNilVolume   if the volume pointer is nil.
//   - ErrWindowRank  if WithWindow received a rank other than 3.
//
// Input cells other than exactly 0/1 are undefined behavior: the
// algorithm does not validate values, callers binarize first.
package label26
