package build

import (
	"github.com/phil-mansfield/nblist/geom"
)

// CellList builds neighbor lists through a cell-linked list: particles are
// binned into a grid of cells at least one cutoff wide, so every neighbor
// of a particle lives in the 27-cell block around its cell. Cells holds the
// per-axis cell counts chosen by the algorithm selector: at least 3 on
// periodic axes (fewer would reach the same cell twice through wraparound)
// and exactly 1 on non-periodic ones.
type CellList struct {
	Cells [3]int

	grid geom.Grid
	head []int
	next []int
}

func (c *CellList) Build(l *List, xs []geom.Vec, box *geom.Box, cutoff geom.Float) {
	l.reset()
	rc2 := cutoff * cutoff
	c.grid.Init(c.Cells)

	if len(c.head) < c.grid.Volume {
		c.head = make([]int, c.grid.Volume)
	}
	head := c.head[:c.grid.Volume]
	for i := range head {
		head[i] = -1
	}
	if len(c.next) < len(xs) {
		c.next = make([]int, len(xs))
	}
	next := c.next[:len(xs)]

	// Chain every particle into its cell. Positions may sit up to one box
	// width outside the primary box between a build and the fold that
	// follows it, so the cell coordinate wraps (periodic) or clamps
	// (non-periodic) instead of trusting the raw quotient.
	for i := range xs {
		cx := box.CellIndex(xs[i][0], 0, c.Cells[0])
		cy := box.CellIndex(xs[i][1], 1, c.Cells[1])
		cz := box.CellIndex(xs[i][2], 2, c.Cells[2])
		idx := c.grid.Idx(cx, cy, cz)
		next[i] = head[idx]
		head[idx] = i
	}

	for idx := 0; idx < c.grid.Volume; idx++ {
		cx, cy, cz := c.grid.Coords(idx)
		for i := head[idx]; i != -1; i = next[i] {
			c.searchNeighborhood(l, xs, box, rc2, cx, cy, cz, i, head, next)
		}
	}
}

// searchNeighborhood scans the 27-cell block around cell (cx, cy, cz) for
// neighbors of particle i.
func (c *CellList) searchNeighborhood(
	l *List, xs []geom.Vec, box *geom.Box, rc2 geom.Float,
	cx, cy, cz, i int, head, next []int,
) {
	for dz := -1; dz <= 1; dz++ {
		nz, ok := c.grid.Wrap(cz+dz, 2, box.Periodic[2])
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			ny, ok := c.grid.Wrap(cy+dy, 1, box.Periodic[1])
			if !ok {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				nx, ok := c.grid.Wrap(cx+dx, 0, box.Periodic[0])
				if !ok {
					continue
				}

				for j := head[c.grid.Idx(nx, ny, nz)]; j != -1; j = next[j] {
					if j == i {
						continue
					}
					if box.Dist2(&xs[i], &xs[j]) < rc2 {
						l.add(i, j)
					}
				}
			}
		}
	}
}
