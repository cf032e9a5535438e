/*Package nblist manages the lifecycle of a particle simulation's neighbor
list: deciding when the list must be rebuilt, which construction algorithm
to rebuild it with, and keeping the particle coordinates and the list
mutually consistent across periodic boundaries.

The package implements the classic Verlet-list amortization. The list is
built with some slack and then reused for as many steps as possible; a
cheap parallel drift scan decides each step whether any particle has moved
far enough since the last rebuild that the list might have gone stale.
Coordinates are folded back into the primary box only at rebuild time, so
the drift metric stays well-defined in between.
*/
package nblist

import (
	"fmt"
	"log"
	"runtime"

	"github.com/phil-mansfield/nblist/build"
	"github.com/phil-mansfield/nblist/geom"
)

// DefaultSkin is the default skin distance: the margin the rebuild trigger
// leaves between the drift a particle may accumulate and the cutoff. The
// list must be rebuilt before any two particles can have closed more than a
// skin between them, so the trigger distance is half a skin.
const DefaultSkin = 0.4

// Manager drives the neighbor list of one particle set across simulation
// steps. The caller invokes Step exactly once per simulation step from a
// single goroutine; between invocations the integrator is free to move the
// particles.
type Manager struct {
	ps   *ParticleSet
	list *build.List

	cutoff, skin, d2 geom.Float
	mode             Mode
	workers    int
	log        bool

	brute build.BruteForce
	cell  build.CellList

	stats Stats
}

// NewManager returns a Manager for the given particles and list. cutoff is
// the interaction range and skin the extra margin the rebuild trigger
// allows for; skin may be 0 to accept DefaultSkin.
func NewManager(
	ps *ParticleSet, list *build.List, cutoff, skin geom.Float,
) (*Manager, error) {
	if ps.Len() != list.Len() {
		return nil, fmt.Errorf(
			"particle set holds %d particles, but the neighbor list "+
				"was sized for %d.", ps.Len(), list.Len(),
		)
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf(
			"need a positive cutoff radius, got %g.", cutoff,
		)
	}
	if skin < 0 {
		return nil, fmt.Errorf(
			"need a non-negative skin distance, got %g.", skin,
		)
	}
	if skin == 0 {
		skin = DefaultSkin
	}

	man := new(Manager)
	man.ps = ps
	man.list = list
	man.cutoff = cutoff
	man.skin = skin
	d := skin / 2
	man.d2 = d * d
	man.workers = runtime.NumCPU()

	return man, nil
}

// Range returns the radius neighbor lists are built with: the interaction
// cutoff plus the skin. Storing pairs out to the skin is what lets the list
// survive until some particle drifts half a skin, since two particles can
// close at most a full skin between rebuild checks.
func (man *Manager) Range() geom.Float { return man.cutoff + man.skin }

// Log turns progress logging on or off.
func (man *Manager) Log(flag bool) { man.log = flag }

// SetMode overrides the automatic construction algorithm choice.
func (man *Manager) SetMode(mode Mode) { man.mode = mode }

// SetWorkers sets the number of goroutines used by the drift scan. The
// default is runtime.NumCPU().
func (man *Manager) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	man.workers = n
}

// List returns the managed neighbor list.
func (man *Manager) List() *build.List { return man.list }

// Stats returns counters describing the run so far.
func (man *Manager) Stats() Stats { return man.stats }

// Step brings the neighbor list up to date for the current particle
// positions. first must be true on the first simulation step only: the
// bootstrap build is unconditional and skips both the drift scan and the
// coordinate fold, since the initial configuration is taken as valid. On
// every later step the list is rebuilt only if some particle has drifted
// past the trigger distance; otherwise Step returns immediately and the
// existing list stays in use.
//
// On a rebuild the sequence is fixed: choose the algorithm from today's
// box, build, validate capacity, fold coordinates back into the box, and
// snapshot the reference positions. The only error is *CapacityError,
// after which the list must not be consumed.
func (man *Manager) Step(box *geom.Box, first bool) error {
	man.stats.Steps++

	if first {
		return man.rebuild(box, false)
	}
	if driftCount(man.ps.Xs, man.ps.Refs, man.d2, man.workers) == 0 {
		return nil
	}
	return man.rebuild(box, true)
}

func (man *Manager) rebuild(box *geom.Box, fold bool) error {
	rng := man.Range()
	cells, exhaustive := selectAlgorithm(box, rng, man.mode)

	if exhaustive {
		man.brute.Build(man.list, man.ps.Xs, box, rng)
		man.stats.Exhaustive++
	} else {
		man.cell.Cells = cells
		man.cell.Build(man.list, man.ps.Xs, box, rng)
		man.stats.CellBased++
	}
	man.stats.Rebuilds++

	if man.log {
		log.Printf(
			"Rebuild %d at step %d: exhaustive=%v cells=%v",
			man.stats.Rebuilds, man.stats.Steps, exhaustive, cells,
		)
	}

	if err := man.validate(); err != nil {
		return err
	}

	if fold {
		foldPositions(man.ps.Xs, box)
	}
	man.ps.snapshot()
	return nil
}

func (man *Manager) validate() error {
	return validateCapacity(man.list)
}
