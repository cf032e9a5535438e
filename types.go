package nblist

import (
	"github.com/phil-mansfield/nblist/geom"
)

// ParticleSet holds the positions the neighbor-list core operates on. Xs is
// written by the integrator between steps and only folded back into the box
// by this package immediately after a rebuild. Refs is the snapshot of Xs
// taken at the last rebuild and is owned entirely by this package: the
// distance a particle has drifted from its Refs entry decides when the list
// goes stale.
type ParticleSet struct {
	Xs   []geom.Vec
	Refs []geom.Vec
}

// NewParticleSet returns a ParticleSet for n particles at the origin.
func NewParticleSet(n int) *ParticleSet {
	return &ParticleSet{
		Xs:   make([]geom.Vec, n),
		Refs: make([]geom.Vec, n),
	}
}

// Len returns the number of particles in the set.
func (ps *ParticleSet) Len() int { return len(ps.Xs) }

// snapshot overwrites the reference positions with the current ones.
func (ps *ParticleSet) snapshot() {
	copy(ps.Refs, ps.Xs)
}

// Stats counts what the controller has done so far in a run.
type Stats struct {
	Steps      int // controller invocations
	Rebuilds   int // list constructions, including the bootstrap build
	CellBased  int // rebuilds that used cell-linked construction
	Exhaustive int // rebuilds that used all-pairs construction
}
