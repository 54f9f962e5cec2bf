// Package voxel defines the core Grid and Coord types for dense 3-D
// volumes, and provides bounds-checked construction, deep-copying
// conversion from/to nested slices, and (x,y,z)<->flat-index mapping.
//
// A Grid stores one int32 per voxel in row-major order
// (index = x + X·(y + Y·z)), so a full volume occupies exactly
// 4·X·Y·Z bytes plus a small header.
//
// Errors:
//
//	ErrEmptyVolume - a dimension is zero or negative.
//	ErrNonCuboid   - nested-slice input has ragged planes or rows.
//	ErrOutOfBounds - a checked accessor received an out-of-grid coordinate.
package voxel

import (
	"errors"
	"fmt"
)

// Sentinel errors for voxel grid operations.
var (
	// ErrEmptyVolume indicates a grid dimension of zero or less.
	ErrEmptyVolume = errors.New("voxel: volume must have at least one voxel per axis")

	// ErrNonCuboid indicates nested-slice input whose planes or rows differ in length.
	ErrNonCuboid = errors.New("voxel: all planes and rows must have the same length")

	// ErrOutOfBounds indicates a checked accessor received a coordinate outside the grid.
	ErrOutOfBounds = errors.New("voxel: coordinate out of bounds")
)

// Coord identifies a single voxel position within a Grid.
type Coord struct {
	X, Y, Z int
}

// Grid is a dense 3-D volume of int32 cells backed by a flat slice.
// It is mutable; use Clone to obtain an independent copy.
type Grid struct {
	dimX, dimY, dimZ int
	data             []int32
}

// New allocates a zero-filled Grid of the given dimensions.
// Returns ErrEmptyVolume if any dimension is < 1.
// Complexity: O(X·Y·Z) time and memory.
func New(dimX, dimY, dimZ int) (*Grid, error) {
	if dimX < 1 || dimY < 1 || dimZ < 1 {
		return nil, ErrEmptyVolume
	}
	return &Grid{
		dimX: dimX,
		dimY: dimY,
		dimZ: dimZ,
		data: make([]int32, dimX*dimY*dimZ),
	}, nil
}

// FromSlices builds a Grid from nested slices indexed values[z][y][x].
// The input is deep-copied to keep the Grid independent of the caller.
// Returns ErrEmptyVolume for an empty volume,
// ErrNonCuboid if any plane or row length differs.
// Complexity: O(X·Y·Z) time and memory.
func FromSlices(values [][][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 || len(values[0][0]) == 0 {
		return nil, ErrEmptyVolume
	}
	dimZ, dimY, dimX := len(values), len(values[0]), len(values[0][0])
	g, err := New(dimX, dimY, dimZ)
	if err != nil {
		return nil, err
	}
	i := 0
	for z := 0; z < dimZ; z++ {
		if len(values[z]) != dimY {
			return nil, ErrNonCuboid
		}
		for y := 0; y < dimY; y++ {
			if len(values[z][y]) != dimX {
				return nil, ErrNonCuboid
			}
			for x := 0; x < dimX; x++ {
				g.data[i] = int32(values[z][y][x])
				i++
			}
		}
	}
	return g, nil
}

// ToSlices exports the Grid as nested slices indexed out[z][y][x].
// The result shares no memory with the Grid.
// Complexity: O(X·Y·Z) time and memory.
func (g *Grid) ToSlices() [][][]int {
	out := make([][][]int, g.dimZ)
	i := 0
	for z := 0; z < g.dimZ; z++ {
		plane := make([][]int, g.dimY)
		for y := 0; y < g.dimY; y++ {
			row := make([]int, g.dimX)
			for x := 0; x < g.dimX; x++ {
				row[x] = int(g.data[i])
				i++
			}
			plane[y] = row
		}
		out[z] = plane
	}
	return out
}

// Clone returns an independent deep copy of the Grid.
// Complexity: O(X·Y·Z) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]int32, len(g.data))
	copy(data, g.data)
	return &Grid{dimX: g.dimX, dimY: g.dimY, dimZ: g.dimZ, data: data}
}

// Dims returns the grid dimensions along x, y and z.
// Complexity: O(1).
func (g *Grid) Dims() (dimX, dimY, dimZ int) {
	return g.dimX, g.dimY, g.dimZ
}

// Len returns the total number of voxels.
// Complexity: O(1).
func (g *Grid) Len() int {
	return len(g.data)
}

// InBounds reports whether (x,y,z) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.dimX &&
		y >= 0 && y < g.dimY &&
		z >= 0 && z < g.dimZ
}

// Index maps (x,y,z) to the row-major flat index x + X·(y + Y·z).
// The coordinate must be in bounds; use InBounds to check first.
// Complexity: O(1).
func (g *Grid) Index(x, y, z int) int {
	return x + g.dimX*(y+g.dimY*z)
}

// CoordOf converts a row-major flat index back to a Coord.
// Complexity: O(1).
func (g *Grid) CoordOf(idx int) Coord {
	x := idx % g.dimX
	idx /= g.dimX
	return Coord{X: x, Y: idx % g.dimY, Z: idx / g.dimY}
}

// At returns the value stored at (x,y,z).
// The coordinate must be in bounds; use InBounds to check first, or
// AtChecked for an error-returning variant. An out-of-bounds x or y
// silently aliases another voxel through the row-major flat index, so
// unchecked access is only for callers that already clamp coordinates.
// Complexity: O(1).
func (g *Grid) At(x, y, z int) int32 {
	return g.data[g.Index(x, y, z)]
}

// AtChecked returns the value stored at (x,y,z), or ErrOutOfBounds if
// the coordinate lies outside the grid.
// Complexity: O(1).
func (g *Grid) AtChecked(x, y, z int) (int32, error) {
	if !g.InBounds(x, y, z) {
		return 0, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfBounds, x, y, z, g.dimX, g.dimY, g.dimZ)
	}
	return g.data[g.Index(x, y, z)], nil
}

// Set stores v at (x,y,z).
// The coordinate must be in bounds; use InBounds to check first, or
// SetChecked for an error-returning variant.
// Complexity: O(1).
func (g *Grid) Set(x, y, z int, v int32) {
	g.data[g.Index(x, y, z)] = v
}

// SetChecked stores v at (x,y,z), or returns ErrOutOfBounds if the
// coordinate lies outside the grid.
// Complexity: O(1).
func (g *Grid) SetChecked(x, y, z int, v int32) error {
	if !g.InBounds(x, y, z) {
		return fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrOutOfBounds, x, y, z, g.dimX, g.dimY, g.dimZ)
	}
	g.data[g.Index(x, y, z)] = v
	return nil
}

// Fill overwrites every voxel with v.
// Complexity: O(X·Y·Z).
func (g *Grid) Fill(v int32) {
	for i := range g.data {
		g.data[i] = v
	}
}
