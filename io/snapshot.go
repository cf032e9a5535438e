package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/nblist/geom"
)

// ReadSnapshot reads particle positions from a whitespace-separated text
// file whose first three columns are x, y, and z.
func ReadSnapshot(fname string) ([]geom.Vec, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, err
	}

	xs := make([]geom.Vec, len(cols[0]))
	for i := range xs {
		xs[i][0] = cols[0][i]
		xs[i][1] = cols[1][i]
		xs[i][2] = cols[2][i]
	}
	return xs, nil
}

// WriteSnapshot writes particle positions as a three column text file that
// ReadSnapshot can read back.
func WriteSnapshot(fname string, xs []geom.Vec) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	for i := range xs {
		_, err := fmt.Fprintf(f, "%g %g %g\n", xs[i][0], xs[i][1], xs[i][2])
		if err != nil {
			return err
		}
	}
	return nil
}
