// Package label26 provides tunable options, error definitions, and the
// voxel state machine for windowed 26-connectivity component labeling.
package label26

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxlath/voxel"
)

// Sentinel errors for labeling execution.
var (
	// ErrNilVolume is returned if a nil grid pointer is passed.
	ErrNilVolume = errors.New("label26: volume is nil")

	// ErrWindowRank is returned when WithWindow receives a shape whose
	// rank differs from the volume's three axes.
	ErrWindowRank = errors.New("label26: window shape must have exactly three extents")
)

// Raw cell values of the working label volume. The volume starts as a
// copy of the binary input (background/unvisited), and growth commits
// component ids of firstLabel and above. The transient Discovered state
// never appears here: it lives only in the scratch buffer.
const (
	valBackground int32 = 0
	valUnvisited  int32 = 1
	firstLabel    int32 = 3
)

// stateKind enumerates the per-voxel states of the scratch buffer.
type stateKind uint8

const (
	// stateBackground marks a background voxel (or window padding).
	stateBackground stateKind = iota
	// stateUnvisited marks a foreground voxel not yet reached by growth.
	stateUnvisited
	// stateDiscovered marks a voxel reached by growth but not yet
	// finalized. Scratch-buffer only: commit never writes it back.
	stateDiscovered
	// stateFinalized marks a voxel assigned to the component in cell.label.
	stateFinalized
)

// cell is one scratch-buffer voxel: a state tag plus, for
// stateFinalized, the component id it belongs to.
type cell struct {
	state stateKind
	label int32
}

// Option configures labeling behavior via functional arguments.
// If an Option is invalid (e.g. a window shape of the wrong rank), it
// is recorded internally and surfaced as an error when Label is invoked,
// before any labeling work begins.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Label run.
type Options struct {
	// Window is the requested window shape per axis. The effective
	// per-axis radius is ceil(max(1, min(dim,window)-1)/2), never less
	// than 1, so any requested shape degrades gracefully to the minimum
	// 3-voxel-wide window. The labeled result is identical for every
	// window shape; only the work distribution varies.
	Window [3]int

	// OnComponent is called once per fully resolved component, after its
	// work queue drains, with the component's final label (1, 2, ...).
	OnComponent func(label int)

	// OnRequeue is called whenever growth reaches the window's outer
	// face and requeues a global coordinate for continued growth in an
	// adjacent window placement.
	OnRequeue func(c voxel.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Window (3,3,3), the minimum effective window
//   - no-op hooks (OnComponent, OnRequeue)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Window:      [3]int{3, 3, 3},
		OnComponent: func(int) {},
		OnRequeue:   func(voxel.Coord) {},
		err:         nil,
	}
}

// WithWindow sets the requested window shape, one extent per axis.
// Exactly three extents must be given; any other rank is a shape
// mismatch and surfaces as ErrWindowRank from Label. The extents
// themselves are not validated: the radius derivation clamps every
// value to an effective radius >= 1.
func WithWindow(shape ...int) Option {
	return func(o *Options) {
		if len(shape) != 3 {
			o.err = fmt.Errorf("%w: got %d", ErrWindowRank, len(shape))
			return
		}
		o.Window = [3]int{shape[0], shape[1], shape[2]}
	}
}

// WithOnComponent registers a callback to run after each component is
// fully resolved.
func WithOnComponent(fn func(label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComponent = fn
		}
	}
}

// WithOnRequeue registers a callback to run on every boundary requeue.
func WithOnRequeue(fn func(c voxel.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRequeue = fn
		}
	}
}
