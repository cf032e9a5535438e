/*Package build constructs neighbor lists: for every particle, the indices
of all other particles within the interaction cutoff. Two constructions are
provided. CellList bins particles into a grid of cells at least one cutoff
wide and only examines the 27-cell neighborhood of each particle, which is
linear in particle count. BruteForce examines all pairs, which is quadratic
but fully deterministic and serves as the verification baseline and as the
fallback when the box geometry cannot support a valid cell grid.

Which construction runs for a given box and cutoff is decided by the
nblist package, not here.
*/
package build

import (
	"github.com/phil-mansfield/nblist/geom"
)

// List is a fixed-capacity neighbor list. Neighbor indices of particle i
// occupy idx[i*max : i*max+Counts[i]]. Counts always records the true
// number of neighbors found, even when it exceeds the capacity and the
// overflowing indices could not be stored: capacity violations are detected
// after construction by inspecting Counts, never hidden by truncation.
type List struct {
	Counts []int
	idx    []int
	max    int
}

// NewList returns a list for n particles holding at most max neighbors
// each. The backing storage is allocated once and reused across rebuilds.
func NewList(n, max int) *List {
	return &List{
		Counts: make([]int, n),
		idx:    make([]int, n*max),
		max:    max,
	}
}

// Len returns the number of particles the list covers.
func (l *List) Len() int { return len(l.Counts) }

// Max returns the per-particle capacity of the list.
func (l *List) Max() int { return l.max }

// Neighbors returns the stored neighbor indices of particle i. The slice
// aliases the list's backing storage and is valid until the next rebuild.
func (l *List) Neighbors(i int) []int {
	n := l.Counts[i]
	if n > l.max {
		n = l.max
	}
	return l.idx[i*l.max : i*l.max+n]
}

// add records j as a neighbor of i, dropping the index (but still counting
// it) once i's capacity is exhausted.
func (l *List) add(i, j int) {
	if n := l.Counts[i]; n < l.max {
		l.idx[i*l.max+n] = j
	}
	l.Counts[i]++
}

// reset clears all neighbor counts so the storage can be rebuilt in place.
func (l *List) reset() {
	for i := range l.Counts {
		l.Counts[i] = 0
	}
}

// Builder is a neighbor list construction algorithm. Build overwrites l
// with the neighbors of every position in xs under the given box and
// cutoff. Implementations write the full list: if j is a neighbor of i,
// then i is a neighbor of j.
type Builder interface {
	Build(l *List, xs []geom.Vec, box *geom.Box, cutoff geom.Float)
}
