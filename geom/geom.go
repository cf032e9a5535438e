/*Package geom provides the geometric primitives shared by the neighbor-list
core: position vectors, periodic simulation boxes, and the flat 3D grid used
by cell-based list construction.

All distance math in the module runs at the width of Float. Changing the
alias changes the precision of every computation at once; nothing mixes
widths.
*/
package geom

import (
	"math"
)

// Float is the floating point width used for every coordinate, distance,
// and accumulation in the module.
type Float = float64

// Vec is a three dimensional position or displacement.
type Vec [3]Float

// Box is a rectangular simulation box anchored at the origin. Widths gives
// the edge lengths along each axis and Periodic marks the axes on which
// coordinates wrap. Widths may change between steps (constant-pressure
// runs); Periodic is fixed for a run.
type Box struct {
	Widths   [3]Float
	Periodic [3]bool
}

// NewBox returns a box with the given edge lengths, periodic on every axis.
func NewBox(x, y, z Float) Box {
	return Box{
		Widths:   [3]Float{x, y, z},
		Periodic: [3]bool{true, true, true},
	}
}

// Drift2 returns the squared displacement between a current position and a
// reference position. No periodic wrapping is applied: reference positions
// are snapshotted while coordinates are inside the box and stay valid until
// the next wrap, so the raw difference is the true drift.
func Drift2(x, ref *Vec) Float {
	dx := x[0] - ref[0]
	dy := x[1] - ref[1]
	dz := x[2] - ref[2]
	return dx*dx + dy*dy + dz*dz
}

// Dist2 returns the squared distance between two positions under the
// minimum image convention on the box's periodic axes.
func (b *Box) Dist2(v1, v2 *Vec) Float {
	sum := Float(0)
	for i := 0; i < 3; i++ {
		d := v1[i] - v2[i]
		if b.Periodic[i] {
			w := b.Widths[i]
			if d > w/2 {
				d -= w
			} else if d < -w/2 {
				d += w
			}
		}
		sum += d * d
	}
	return sum
}

// Fold moves a coordinate that has drifted at most one box width outside
// [0, width) back inside by adding or subtracting a single width on each
// periodic axis. It is not a general modulo: callers guarantee bounded
// drift by folding after every list rebuild. In-range coordinates are left
// untouched, so folding twice is the same as folding once.
func (b *Box) Fold(v *Vec) {
	for i := 0; i < 3; i++ {
		if !b.Periodic[i] {
			continue
		}
		w := b.Widths[i]
		if v[i] < 0 {
			v[i] += w
		} else if v[i] >= w {
			v[i] -= w
		}
	}
}

// CellIndex returns the grid cell coordinate of x along the given axis for
// a grid of cells cells. Coordinates up to one width outside the box (the
// fold-pending state during a rebuild) map onto the correct wrapped cell on
// periodic axes and clamp on non-periodic ones.
func (b *Box) CellIndex(x Float, dim, cells int) int {
	// Floor, not truncation: slightly negative coordinates belong to the
	// top cell, not cell zero.
	c := int(math.Floor(x / (b.Widths[dim] / Float(cells))))
	if b.Periodic[dim] {
		return pMod(c, cells)
	}
	if c < 0 {
		return 0
	}
	if c >= cells {
		return cells - 1
	}
	return c
}
