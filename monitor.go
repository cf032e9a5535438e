package nblist

import (
	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/nblist/geom"
)

// blockWidth is the number of particles reduced by a single worker in the
// first stage of the drift scan.
const blockWidth = 256

// driftCount returns the number of particles whose squared displacement
// from their reference position strictly exceeds d2. Any nonzero result
// means the neighbor list can no longer be trusted and must be rebuilt.
//
// The scan is a two-stage reduction. Stage one partitions the particles
// into blocks of blockWidth, flags each particle that crossed the
// threshold, and tree-reduces every block's flags into a per-block partial
// sum; at most workers blocks run concurrently. Stage two tree-reduces the
// partials into the final count and only starts once every stage-one block
// has finished and its partial is visible, which the group Wait
// guarantees. The comparison is a strict greater-than on squared distance
// with no added slack, so a particle exactly at the threshold does not
// trigger a rebuild but any particle past it always does.
func driftCount(xs, refs []geom.Vec, d2 geom.Float, workers int) int {
	n := len(xs)
	if n == 0 {
		return 0
	}

	nBlocks := (n + blockWidth - 1) / blockWidth
	partials := make([]int, nBlocks)

	var g errgroup.Group
	g.SetLimit(workers)
	for b := 0; b < nBlocks; b++ {
		b := b
		g.Go(func() error {
			var flags [blockWidth]int
			low := b * blockWidth
			high := low + blockWidth
			if high > n {
				high = n
			}
			for i := low; i < high; i++ {
				if geom.Drift2(&xs[i], &refs[i]) > d2 {
					flags[i-low] = 1
				}
			}
			// Indices past n keep their zero flags, so short final
			// blocks reduce correctly.
			partials[b] = treeReduce(flags[:])
			return nil
		})
	}
	g.Wait()

	return treeReduce(partials)
}

// treeReduce sums vals in place by repeated halving: each pass folds the
// upper half of the active range onto the lower half until one element
// remains. Odd ranges leave their middle element in place for the next
// pass, which is the same as padding with zeros up to an even width.
func treeReduce(vals []int) int {
	if len(vals) == 0 {
		return 0
	}
	for width := len(vals); width > 1; {
		half := (width + 1) / 2
		for i := 0; i+half < width; i++ {
			vals[i] += vals[i+half]
		}
		width = half
	}
	return vals[0]
}
