package label26

import (
	"github.com/katalvlaran/voxlath/voxel"
)

// shell appends to dst every buffer-local coordinate whose Chebyshev
// distance from c equals exactly d, clipped to [0,dim) per axis, and
// returns the extended slice. No wraparound: coordinates outside the
// buffer are dropped, so shells near a buffer edge come back partial.
//
// d == 0 yields only the center; d == 1 yields the 26-neighbor shell
// when unclipped. Enumeration walks the six cube faces directly (the
// two x-faces span full y/z ranges, the y- and z-faces shrink by one
// per already-covered axis so no coordinate appears twice).
//
// Complexity: O(d²) time per call, output length ≤ (2d+1)³ − (2d−1)³.
func shell(dst []voxel.Coord, d int, c voxel.Coord, dim [3]int) []voxel.Coord {
	if d == 0 {
		if inBuf(c, dim) {
			dst = append(dst, c)
		}
		return dst
	}
	// x-faces: dx = ±d, full y and z extent.
	for _, dx := range [2]int{-d, d} {
		for dy := -d; dy <= d; dy++ {
			for dz := -d; dz <= d; dz++ {
				dst = appendIfInBuf(dst, voxel.Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}, dim)
			}
		}
	}
	// y-faces: dy = ±d, x interior only.
	for _, dy := range [2]int{-d, d} {
		for dx := -d + 1; dx <= d-1; dx++ {
			for dz := -d; dz <= d; dz++ {
				dst = appendIfInBuf(dst, voxel.Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}, dim)
			}
		}
	}
	// z-faces: dz = ±d, x and y interior only.
	for _, dz := range [2]int{-d, d} {
		for dx := -d + 1; dx <= d-1; dx++ {
			for dy := -d + 1; dy <= d-1; dy++ {
				dst = appendIfInBuf(dst, voxel.Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}, dim)
			}
		}
	}
	return dst
}

// inBuf reports whether p lies inside the buffer bounds.
func inBuf(p voxel.Coord, dim [3]int) bool {
	return p.X >= 0 && p.X < dim[0] &&
		p.Y >= 0 && p.Y < dim[1] &&
		p.Z >= 0 && p.Z < dim[2]
}

// appendIfInBuf appends p to dst when it lies inside the buffer bounds.
func appendIfInBuf(dst []voxel.Coord, p voxel.Coord, dim [3]int) []voxel.Coord {
	if inBuf(p, dim) {
		dst = append(dst, p)
	}
	return dst
}
