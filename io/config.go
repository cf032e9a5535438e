/*Package io reads simulation configuration files and particle snapshots.*/
package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleSimFile = `[Sim]

#######################
# Required Parameters #
#######################

# Interaction cutoff radius. Pairs farther apart than this never interact
# and are not stored in the neighbor list.
Cutoff = 2.5

# Per-particle neighbor list capacity. The run aborts if any particle ends
# up with more neighbors than this, so size it generously for your density
# and cutoff.
MaxNeighbors = 128

# Edge lengths of the simulation box.
BoxX = 20.0
BoxY = 20.0
BoxZ = 20.0

#######################
# Optional Parameters #
#######################

# Extra margin on top of the cutoff before a rebuild triggers. Larger skins
# rebuild less often but hand larger candidate lists to the force loop.
# Skin = 0.4

# Periodicity of each axis. Defaults to fully periodic.
# PeriodicX = true
# PeriodicY = true
# PeriodicZ = true

# Which list construction algorithm to use. 'Auto' picks the cell-based
# algorithm whenever the geometry supports it, 'Exhaustive' forces the
# deterministic all-pairs baseline, 'CellBased' forces cell-based
# construction whenever it is geometrically valid.
# ConstructionMode = Auto

# Number of integration steps to run.
# Steps = 1000

# Integration timestep.
# Dt = 0.005

# Seed for the initial velocities. 0 seeds from the current time.
# Seed = 0

# Goroutines used by the drift scan. 0 means one per CPU.
# Workers = 0

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SimConfig struct {
	// Required
	Cutoff       float64
	MaxNeighbors int
	BoxX, BoxY, BoxZ float64

	// Optional
	Skin                            float64
	PeriodicX, PeriodicY, PeriodicZ bool
	ConstructionMode                string
	Steps                           int
	Dt                              float64
	Seed                            int64
	Workers                         int
	LogFile, ProfileFile            string
}

type SimWrapper struct {
	Sim SimConfig
}

func DefaultSimWrapper() *SimWrapper {
	con := SimConfig{}
	con.Skin = 0.4
	con.PeriodicX, con.PeriodicY, con.PeriodicZ = true, true, true
	con.ConstructionMode = "Auto"
	con.Steps = 1000
	con.Dt = 0.005
	return &SimWrapper{con}
}

func (con *SimConfig) ValidCutoff() bool {
	return con.Cutoff > 0
}
func (con *SimConfig) ValidMaxNeighbors() bool {
	return con.MaxNeighbors > 0
}
func (con *SimConfig) ValidBox() bool {
	return con.BoxX > 0 && con.BoxY > 0 && con.BoxZ > 0
}
func (con *SimConfig) ValidConstructionMode() bool {
	switch strings.Trim(con.ConstructionMode, " ") {
	case "Auto", "Exhaustive", "CellBased":
		return true
	}
	return false
}

func (con *SimConfig) CheckInit() error {
	if !con.ValidCutoff() {
		return fmt.Errorf(
			"Need to specify a positive 'Cutoff' value, but got %g.",
			con.Cutoff,
		)
	} else if !con.ValidMaxNeighbors() {
		return fmt.Errorf(
			"Need to specify a positive 'MaxNeighbors' value, but got %d.",
			con.MaxNeighbors,
		)
	} else if !con.ValidBox() {
		return fmt.Errorf(
			"Need positive 'BoxX', 'BoxY', and 'BoxZ' values, but got "+
				"%g, %g, %g.", con.BoxX, con.BoxY, con.BoxZ,
		)
	}

	if con.Skin < 0 {
		return fmt.Errorf(
			"'Skin' must be non-negative, but is %g.", con.Skin,
		)
	}
	if !con.ValidConstructionMode() {
		return fmt.Errorf(
			"'ConstructionMode' must be one of [Auto | Exhaustive | "+
				"CellBased]. '%s' is not recognized.", con.ConstructionMode,
		)
	}
	if con.Dt <= 0 {
		return fmt.Errorf("'Dt' must be positive, but is %g.", con.Dt)
	}
	if con.Steps < 0 {
		return fmt.Errorf("'Steps' must be non-negative, but is %d.", con.Steps)
	}

	con.ConstructionMode = strings.Trim(con.ConstructionMode, " ")
	return nil
}

// ReadSimConfig reads and validates a [Sim] configuration file.
func ReadSimConfig(fname string) (*SimConfig, error) {
	wrap := DefaultSimWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.Sim
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
