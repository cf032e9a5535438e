package geom

// Grid provides an interface for reasoning over a 1D slice as if it were a
// 3D grid of cells. Cell counts per axis come from the list construction
// algorithm selector and need not be equal.
type Grid struct {
	Cells                [3]int
	Length, Area, Volume int
}

// NewGrid returns a new Grid instance with the given cell counts.
func NewGrid(cells [3]int) *Grid {
	g := &Grid{}
	g.Init(cells)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(cells [3]int) {
	g.Cells = cells
	g.Length = cells[0]
	g.Area = cells[0] * cells[1]
	g.Volume = cells[0] * cells[1] * cells[2]
}

// Idx returns the grid index corresponding to a set of cell coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.Length + z*g.Area
}

// Coords returns the x, y, z cell coordinates of a point from its grid
// index.
func (g *Grid) Coords(idx int) (x, y, z int) {
	x = idx % g.Length
	y = (idx % g.Area) / g.Length
	z = idx / g.Area
	return x, y, z
}

// Wrap maps the cell coordinate x onto [0, cells) along the given axis. ok
// is false if the axis is not periodic and x falls outside the grid, in
// which case there is no neighboring cell in that direction.
func (g *Grid) Wrap(x, dim int, periodic bool) (idx int, ok bool) {
	cells := g.Cells[dim]
	if periodic {
		return pMod(x, cells), true
	}
	if x < 0 || x >= cells {
		return -1, false
	}
	return x, true
}

// pMod computes the positive modulo x % y.
func pMod(x, y int) int {
	m := x % y
	if m < 0 {
		m += y
	}
	return m
}
