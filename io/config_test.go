package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "sim.config")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0666))
	return fname
}

func TestReadSimConfig(t *testing.T) {
	fname := writeConfig(t, `[Sim]
Cutoff = 2.5
MaxNeighbors = 128
BoxX = 20.0
BoxY = 25.0
BoxZ = 30.0
PeriodicZ = false
Steps = 50
`)

	con, err := ReadSimConfig(fname)
	require.NoError(t, err)

	assert.Equal(t, 2.5, con.Cutoff)
	assert.Equal(t, 128, con.MaxNeighbors)
	assert.Equal(t, 25.0, con.BoxY)
	assert.Equal(t, 50, con.Steps)

	// Unset optionals keep their defaults.
	assert.Equal(t, 0.4, con.Skin)
	assert.True(t, con.PeriodicX)
	assert.False(t, con.PeriodicZ)
	assert.Equal(t, "Auto", con.ConstructionMode)
	assert.Equal(t, 0.005, con.Dt)
}

func TestReadSimConfigErrors(t *testing.T) {
	table := []struct {
		name, text string
	}{
		{"MissingCutoff", "[Sim]\nMaxNeighbors = 128\n" +
			"BoxX = 10\nBoxY = 10\nBoxZ = 10\n"},
		{"MissingMaxNeighbors", "[Sim]\nCutoff = 2.5\n" +
			"BoxX = 10\nBoxY = 10\nBoxZ = 10\n"},
		{"NegativeBox", "[Sim]\nCutoff = 2.5\nMaxNeighbors = 128\n" +
			"BoxX = -10\nBoxY = 10\nBoxZ = 10\n"},
		{"BadMode", "[Sim]\nCutoff = 2.5\nMaxNeighbors = 128\n" +
			"BoxX = 10\nBoxY = 10\nBoxZ = 10\n" +
			"ConstructionMode = Fastest\n"},
		{"BadSyntax", "Cutoff 2.5\n"},
	}

	for _, test := range table {
		fname := writeConfig(t, test.text)
		if _, err := ReadSimConfig(fname); err == nil {
			t.Errorf("%s) Expected an error.", test.name)
		}
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	// The example file we print for users has every required parameter
	// set and must parse cleanly.
	fname := writeConfig(t, ExampleSimFile)
	con, err := ReadSimConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, 2.5, con.Cutoff)
	assert.Equal(t, 128, con.MaxNeighbors)
}
