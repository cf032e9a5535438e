/*rebuild_intervals runs a small Lennard-Jones gas and plots how many steps
each neighbor list survived before drift forced a rebuild. Useful for
eyeballing skin choices.

Usage: rebuild_intervals plot.png
*/
package main

import (
	"log"
	"math/rand"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/nblist"
	"github.com/phil-mansfield/nblist/build"
	"github.com/phil-mansfield/nblist/dynamics"
	"github.com/phil-mansfield/nblist/geom"
)

const (
	n      = 1000
	width  = 15.0
	cutoff = 2.5
	skin   = 0.4
	steps  = 5000
	dt     = 0.002
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: rebuild_intervals plot.png")
	}

	box := geom.NewBox(width, width, width)
	gen := rand.New(rand.NewSource(42))

	ps := nblist.NewParticleSet(n)
	for i := range ps.Xs {
		for k := 0; k < 3; k++ {
			ps.Xs[i][k] = gen.Float64() * width
		}
	}

	list := build.NewList(n, 256)
	man, err := nblist.NewManager(ps, list, cutoff, skin)
	if err != nil {
		log.Fatal(err.Error())
	}

	pot := dynamics.LJ{Epsilon: 1, Sigma: 1, Cutoff: cutoff}
	integ := dynamics.NewIntegrator(n, dt, pot)
	integ.SeedVelocities(gen, 0.05)

	if err := man.Step(&box, true); err != nil {
		log.Fatal(err.Error())
	}

	intervals, idxs := []float64{}, []float64{}
	last, lastRebuilds := 0, man.Stats().Rebuilds
	for step := 1; step <= steps; step++ {
		integ.Step(ps.Xs, list, &box)
		if err := man.Step(&box, false); err != nil {
			log.Fatal(err.Error())
		}
		if r := man.Stats().Rebuilds; r != lastRebuilds {
			idxs = append(idxs, float64(len(intervals)))
			intervals = append(intervals, float64(step-last))
			last, lastRebuilds = step, r
		}
	}

	plt.Reset()
	plt.Figure()
	plt.Plot(idxs, intervals, "ok")
	plt.Title("Neighbor list lifetimes")
	plt.XLabel("Rebuild number", plt.FontSize(16))
	plt.YLabel("Steps survived", plt.FontSize(16))
	plt.SaveFig(os.Args[1])
	plt.Execute()
}
