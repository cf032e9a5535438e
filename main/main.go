package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"go.uber.org/zap"

	"github.com/phil-mansfield/nblist"
	"github.com/phil-mansfield/nblist/build"
	"github.com/phil-mansfield/nblist/dynamics"
	"github.com/phil-mansfield/nblist/geom"
	"github.com/phil-mansfield/nblist/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		config, out   string
		exampleConfig bool
		verbose       bool
	)

	flag.StringVar(&config, "Config", "",
		"[Sim] configuration file for the run.")
	flag.StringVar(&out, "Out", "",
		"Location to write the final particle snapshot to. Default is "+
			"no snapshot.")
	flag.BoolVar(&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.")
	flag.BoolVar(&verbose, "Verbose", false,
		"Log every neighbor list rebuild.")

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleSimFile)
		return
	}
	if config == "" {
		log.Fatal("Must supply a -Config file. Run with -ExampleConfig " +
			"to see the format.")
	}

	con, err := io.ReadSimConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}

	args := flag.Args()
	if len(args) != 1 {
		log.Fatal("Must supply exactly one snapshot file with the " +
			"initial particle positions.")
	}

	fg := &FileGroup{}
	defer fg.Close()
	if con.LogFile != "" {
		lf, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		fg.log = lf
	}
	if con.ProfileFile != "" {
		pf, err := os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := pprof.StartCPUProfile(pf); err != nil {
			log.Fatal(err.Error())
		}
		fg.prof = pf
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	xs, err := io.ReadSnapshot(args[0])
	if err != nil {
		log.Fatal(err.Error())
	}

	runMain(con, xs, out, verbose, logger)
}

func runMain(
	con *io.SimConfig, xs []geom.Vec, out string,
	verbose bool, logger *zap.Logger,
) {
	box := geom.Box{
		Widths:   [3]geom.Float{con.BoxX, con.BoxY, con.BoxZ},
		Periodic: [3]bool{con.PeriodicX, con.PeriodicY, con.PeriodicZ},
	}

	ps := nblist.NewParticleSet(len(xs))
	copy(ps.Xs, xs)
	list := build.NewList(len(xs), con.MaxNeighbors)

	man, err := nblist.NewManager(ps, list, con.Cutoff, con.Skin)
	if err != nil {
		log.Fatal(err.Error())
	}
	man.Log(verbose)
	if con.Workers > 0 {
		man.SetWorkers(con.Workers)
	}
	switch con.ConstructionMode {
	case "Exhaustive":
		man.SetMode(nblist.ForceExhaustive)
	case "CellBased":
		man.SetMode(nblist.ForceCellBased)
	}

	seed := con.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := rand.New(rand.NewSource(seed))

	pot := dynamics.LJ{Epsilon: 1, Sigma: 1, Cutoff: con.Cutoff}
	integ := dynamics.NewIntegrator(len(xs), con.Dt, pot)
	integ.SeedVelocities(gen, 0.1)

	logger.Info("Starting run",
		zap.Int("particles", len(xs)),
		zap.Int("steps", con.Steps),
		zap.Float64("cutoff", con.Cutoff),
		zap.Float64("skin", con.Skin),
		zap.Int64("seed", seed),
	)

	start := time.Now()
	if err := man.Step(&box, true); err != nil {
		log.Fatal(err.Error())
	}
	for step := 0; step < con.Steps; step++ {
		integ.Step(ps.Xs, list, &box)
		if err := man.Step(&box, false); err != nil {
			log.Fatal(err.Error())
		}
	}

	stats := man.Stats()
	logger.Info("Run complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("rebuilds", stats.Rebuilds),
		zap.Int("cellBased", stats.CellBased),
		zap.Int("exhaustive", stats.Exhaustive),
	)

	if out != "" {
		if err := io.WriteSnapshot(out, ps.Xs); err != nil {
			log.Fatal(err.Error())
		}
	}
}
