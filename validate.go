package nblist

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/nblist/build"
)

// CapacityViolation records one particle whose true neighbor count
// exceeded the list's per-particle capacity.
type CapacityViolation struct {
	Index, Count int
}

// CapacityError reports every particle whose neighbor count exceeded the
// configured capacity after a rebuild. It means the user-supplied capacity
// estimate was too small for the chosen cutoff and density, which cannot be
// recovered from: a truncated list would make the simulation silently
// wrong. Callers are expected to stop the run; the shipped driver does so
// with a fatal log.
type CapacityError struct {
	Max        int
	Violations []CapacityViolation
}

func (e *CapacityError) Error() string {
	b := &strings.Builder{}
	fmt.Fprintf(
		b, "%d particle(s) exceeded the neighbor capacity of %d:",
		len(e.Violations), e.Max,
	)
	for _, v := range e.Violations {
		fmt.Fprintf(b, "\n  particle %d has %d neighbors", v.Index, v.Count)
	}
	return b.String()
}

// validateCapacity checks that no particle's true neighbor count exceeded
// the list's capacity during the last build. Every offending particle is
// collected, not just the first, so a single failed run tells the user how
// far off their capacity estimate was.
func validateCapacity(l *build.List) error {
	var vs []CapacityViolation
	for i, n := range l.Counts {
		if n > l.Max() {
			vs = append(vs, CapacityViolation{Index: i, Count: n})
		}
	}
	if len(vs) == 0 {
		return nil
	}
	return &CapacityError{Max: l.Max(), Violations: vs}
}
