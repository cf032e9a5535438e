package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/nblist/build"
	"github.com/phil-mansfield/nblist/geom"
)

func pairSetup(sep geom.Float) ([]geom.Vec, *build.List, geom.Box) {
	box := geom.NewBox(20, 20, 20)
	xs := []geom.Vec{{10, 10, 10}, {10 + sep, 10, 10}}
	l := build.NewList(2, 8)
	build.BruteForce{}.Build(l, xs, &box, 5.0)
	return xs, l, box
}

func TestForcesNewtonThirdLaw(t *testing.T) {
	lj := LJ{Epsilon: 1, Sigma: 1, Cutoff: 2.5}
	fs := make([]geom.Vec, 2)

	for _, sep := range []geom.Float{0.9, 1.0, 1.5, 2.0} {
		xs, l, box := pairSetup(sep)
		lj.Forces(fs, xs, l, &box)

		for k := 0; k < 3; k++ {
			assert.InDelta(t, -fs[0][k], fs[1][k], 1e-12,
				"sep %g axis %d", sep, k)
		}
	}
}

func TestForcesSign(t *testing.T) {
	lj := LJ{Epsilon: 1, Sigma: 1, Cutoff: 2.5}
	fs := make([]geom.Vec, 2)

	// Inside the potential minimum at 2^(1/6) sigma the pair repels.
	xs, l, box := pairSetup(0.9)
	lj.Forces(fs, xs, l, &box)
	assert.Less(t, fs[0][0], 0.0, "particle 0 should be pushed -x")
	assert.Greater(t, fs[1][0], 0.0, "particle 1 should be pushed +x")

	// Outside it the pair attracts.
	xs, l, box = pairSetup(1.5)
	lj.Forces(fs, xs, l, &box)
	assert.Greater(t, fs[0][0], 0.0)
	assert.Less(t, fs[1][0], 0.0)

	// At the minimum the force vanishes.
	xs, l, box = pairSetup(math.Pow(2, 1.0/6))
	lj.Forces(fs, xs, l, &box)
	assert.InDelta(t, 0, fs[0][0], 1e-10)
}

func TestForcesRespectCutoff(t *testing.T) {
	lj := LJ{Epsilon: 1, Sigma: 1, Cutoff: 2.5}
	fs := make([]geom.Vec, 2)

	// The pair is in the list (built with a larger radius) but beyond the
	// interaction cutoff, so it must contribute nothing.
	xs, l, box := pairSetup(3.0)
	require.NotEmpty(t, l.Neighbors(0))
	lj.Forces(fs, xs, l, &box)
	assert.Equal(t, geom.Vec{}, fs[0])
	assert.Equal(t, geom.Vec{}, fs[1])
}

func TestForcesPeriodicImage(t *testing.T) {
	lj := LJ{Epsilon: 1, Sigma: 1, Cutoff: 2.5}
	box := geom.NewBox(20, 20, 20)

	// Separated by 1.5 through the boundary: same force as a direct pair
	// at the same distance, directed through the wall.
	xs := []geom.Vec{{0.5, 10, 10}, {19.0, 10, 10}}
	l := build.NewList(2, 8)
	build.BruteForce{}.Build(l, xs, &box, 5.0)

	fs := make([]geom.Vec, 2)
	lj.Forces(fs, xs, l, &box)

	ref, refL, refBox := pairSetup(1.5)
	refFs := make([]geom.Vec, 2)
	lj.Forces(refFs, ref, refL, &refBox)

	// Attraction through the wall pushes particle 0 toward -x.
	assert.InDelta(t, -refFs[0][0], fs[0][0], 1e-12)
	assert.InDelta(t, -refFs[1][0], fs[1][0], 1e-12)
}

func TestIntegratorConservesMomentum(t *testing.T) {
	box := geom.NewBox(20, 20, 20)
	xs := []geom.Vec{{10, 10, 10}, {11.2, 10, 10}, {10, 11.1, 10}}
	l := build.NewList(3, 8)
	build.BruteForce{}.Build(l, xs, &box, 5.0)

	pot := LJ{Epsilon: 1, Sigma: 1, Cutoff: 2.5}
	integ := NewIntegrator(3, 0.001, pot)

	for step := 0; step < 100; step++ {
		integ.Step(xs, l, &box)
	}

	// Zero initial momentum and symmetric forces: total momentum stays
	// zero.
	for k := 0; k < 3; k++ {
		total := geom.Float(0)
		for i := range integ.vs {
			total += integ.vs[i][k]
		}
		assert.InDelta(t, 0, total, 1e-9, "axis %d", k)
	}
}
