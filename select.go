package nblist

import (
	"github.com/phil-mansfield/nblist/geom"
)

// MinCells is the smallest total cell count for which cell-linked
// construction beats all-pairs construction. Below a full 3x3x3
// neighborhood of cells the per-cell bookkeeping costs more than it saves.
const MinCells = 27

// Mode selects how the controller chooses between the two list
// construction algorithms.
type Mode int

const (
	// Auto picks cell-linked construction whenever the box geometry
	// supports it and the cell count clears MinCells.
	Auto Mode = iota
	// ForceExhaustive always uses all-pairs construction. Useful as a
	// deterministic baseline when debugging.
	ForceExhaustive
	// ForceCellBased uses cell-linked construction whenever it is
	// geometrically valid, ignoring the MinCells efficiency threshold.
	ForceCellBased
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "Auto"
	case ForceExhaustive:
		return "Exhaustive"
	case ForceCellBased:
		return "CellBased"
	}
	return "Unknown"
}

// selectAlgorithm decides, from box geometry and cutoff alone, whether list
// construction must fall back to the all-pairs algorithm, and if not, the
// cell grid dimensions to use. A periodic axis shorter than three cutoffs
// cannot be cell-decomposed: with fewer than 3 cells a neighborhood sweep
// would reach the same cell twice through wraparound and double-count
// pairs. Non-periodic axes always get a single cell. The returned cell
// counts are only meaningful when exhaustive is false.
func selectAlgorithm(box *geom.Box, cutoff geom.Float, mode Mode) (cells [3]int, exhaustive bool) {
	if mode == ForceExhaustive {
		return cells, true
	}

	for i := 0; i < 3; i++ {
		if !box.Periodic[i] {
			cells[i] = 1
			continue
		}
		cells[i] = int(box.Widths[i] / cutoff)
		if cells[i] < 3 {
			return cells, true
		}
	}

	if mode == ForceCellBased {
		return cells, false
	}
	if cells[0]*cells[1]*cells[2] < MinCells {
		return cells, true
	}
	return cells, false
}
