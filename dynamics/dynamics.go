/*Package dynamics is a minimal consumer of the neighbor list: Lennard-Jones
forces evaluated over the list's candidate pairs and velocity Verlet time
integration. It exists so the list lifecycle can be driven and checked
against real particle motion; it is not meant as a complete molecular
dynamics engine.
*/
package dynamics

import (
	"math/rand"

	"github.com/phil-mansfield/nblist/build"
	"github.com/phil-mansfield/nblist/geom"
)

// LJ is a truncated Lennard-Jones potential. Pairs beyond Cutoff contribute
// nothing, which is what makes the neighbor list a valid candidate set.
type LJ struct {
	Epsilon, Sigma, Cutoff geom.Float
}

// Forces writes the force on every particle into fs. Candidate pairs come
// from the neighbor list: the list is full (each pair appears under both
// particles), so each particle accumulates only its own side of every
// interaction. Distances use the minimum image convention of the box.
func (lj *LJ) Forces(fs, xs []geom.Vec, l *build.List, box *geom.Box) {
	for i := range fs {
		fs[i] = geom.Vec{}
	}

	rc2 := lj.Cutoff * lj.Cutoff
	s6 := lj.Sigma * lj.Sigma * lj.Sigma
	s6 = s6 * s6

	for i := range xs {
		for _, j := range l.Neighbors(i) {
			r2 := box.Dist2(&xs[i], &xs[j])
			if r2 >= rc2 || r2 == 0 {
				continue
			}

			// F(r)/r = 24 eps (2 (sigma/r)^12 - (sigma/r)^6) / r^2,
			// directed from j to i for the repulsive branch.
			inv2 := 1 / r2
			inv6 := inv2 * inv2 * inv2
			fOverR := 24 * lj.Epsilon * inv6 * s6 * (2*inv6*s6 - 1) * inv2

			for k := 0; k < 3; k++ {
				d := xs[i][k] - xs[j][k]
				if box.Periodic[k] {
					w := box.Widths[k]
					if d > w/2 {
						d -= w
					} else if d < -w/2 {
						d += w
					}
				}
				fs[i][k] += fOverR * d
			}
		}
	}
}

// Integrator advances unit-mass particles with velocity Verlet.
type Integrator struct {
	Dt  geom.Float
	Pot LJ

	vs, fs, fsNew []geom.Vec
}

// NewIntegrator returns an Integrator for n particles with zero initial
// velocities.
func NewIntegrator(n int, dt geom.Float, pot LJ) *Integrator {
	return &Integrator{
		Dt:    dt,
		Pot:   pot,
		vs:    make([]geom.Vec, n),
		fs:    make([]geom.Vec, n),
		fsNew: make([]geom.Vec, n),
	}
}

// SeedVelocities draws initial velocities uniformly from [-scale, scale)
// on each axis.
func (in *Integrator) SeedVelocities(gen *rand.Rand, scale geom.Float) {
	for i := range in.vs {
		for k := 0; k < 3; k++ {
			in.vs[i][k] = scale * (2*gen.Float64() - 1)
		}
	}
}

// Step advances the positions by one timestep using the current neighbor
// list. Positions move out of the primary box freely; folding them back is
// the list manager's job at the next rebuild.
func (in *Integrator) Step(xs []geom.Vec, l *build.List, box *geom.Box) {
	dt := in.Dt

	for i := range xs {
		for k := 0; k < 3; k++ {
			xs[i][k] += in.vs[i][k]*dt + in.fs[i][k]*dt*dt/2
		}
	}

	in.Pot.Forces(in.fsNew, xs, l, box)

	for i := range xs {
		for k := 0; k < 3; k++ {
			in.vs[i][k] += (in.fs[i][k] + in.fsNew[i][k]) * dt / 2
		}
	}
	in.fs, in.fsNew = in.fsNew, in.fs
}
