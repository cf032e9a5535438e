package build

import (
	"github.com/phil-mansfield/nblist/geom"
)

// BruteForce builds neighbor lists by examining every particle pair under
// the minimum image convention.
type BruteForce struct{}

func (BruteForce) Build(l *List, xs []geom.Vec, box *geom.Box, cutoff geom.Float) {
	l.reset()
	rc2 := cutoff * cutoff

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if box.Dist2(&xs[i], &xs[j]) < rc2 {
				l.add(i, j)
				l.add(j, i)
			}
		}
	}
}
