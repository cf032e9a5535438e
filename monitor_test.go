package nblist

import (
	"math/rand"
	"testing"

	"go.uber.org/goleak"

	"github.com/phil-mansfield/nblist/geom"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTreeReduce(t *testing.T) {
	table := []struct {
		vals []int
		sum  int
	}{
		{[]int{}, 0},
		{[]int{7}, 7},
		{[]int{1, 2}, 3},
		{[]int{1, 2, 3}, 6},
		{[]int{1, 1, 1, 1, 1, 1, 1, 1}, 8},
		{[]int{5, 0, 0, 1, 0, 2, 0, 0, 9}, 17},
	}

	for i, test := range table {
		vals := append([]int{}, test.vals...)
		if sum := treeReduce(vals); sum != test.sum {
			t.Errorf("%d) Expected sum %d, got %d", i, test.sum, sum)
		}
	}
}

func TestDriftCountThreshold(t *testing.T) {
	n := 10
	xs := make([]geom.Vec, n)
	refs := make([]geom.Vec, n)

	// 0.25 and 0.0625 are exactly representable, so the at-threshold case
	// is a true equality, not a rounding accident.
	d2 := geom.Float(0.0625) // trigger distance 0.25

	if c := driftCount(xs, refs, d2, 4); c != 0 {
		t.Fatalf("Expected no drift for identical positions, got %d", c)
	}

	// Exactly at the threshold: strict comparison, no rebuild.
	xs[3][0] = 0.25
	if c := driftCount(xs, refs, d2, 4); c != 0 {
		t.Errorf("Drift exactly at the threshold triggered: %d", c)
	}

	// Just past it.
	xs[3][0] = 0.2500001
	if c := driftCount(xs, refs, d2, 4); c != 1 {
		t.Errorf("Expected 1 particle past the threshold, got %d", c)
	}

	// Displacement accumulates over all three axes.
	xs[7] = geom.Vec{0.2, 0.2, 0}
	if c := driftCount(xs, refs, d2, 4); c != 2 {
		t.Errorf("Expected 2 particles past the threshold, got %d", c)
	}
}

func TestDriftCountManyBlocks(t *testing.T) {
	// More particles than a single block so both reduction stages do real
	// work, with the movers scattered across blocks.
	n := 4*blockWidth + 37
	xs := make([]geom.Vec, n)
	refs := make([]geom.Vec, n)

	gen := rand.New(rand.NewSource(4))
	for i := range xs {
		for k := 0; k < 3; k++ {
			xs[i][k] = gen.Float64() * 10
		}
		refs[i] = xs[i]
	}

	movers := []int{0, blockWidth - 1, blockWidth, 3 * blockWidth / 2, n - 1}
	for _, i := range movers {
		xs[i][2] += 0.3
	}

	for _, workers := range []int{1, 2, 8} {
		if c := driftCount(xs, refs, 0.04, workers); c != len(movers) {
			t.Errorf("workers=%d: Expected %d movers, got %d",
				workers, len(movers), c)
		}
	}
}

func TestDriftCountEmpty(t *testing.T) {
	if c := driftCount(nil, nil, 0.04, 4); c != 0 {
		t.Errorf("Expected 0 for an empty particle set, got %d", c)
	}
}

func BenchmarkDriftCount(b *testing.B) {
	n := 1 << 16
	xs := make([]geom.Vec, n)
	refs := make([]geom.Vec, n)
	gen := rand.New(rand.NewSource(5))
	for i := range xs {
		for k := 0; k < 3; k++ {
			xs[i][k] = gen.Float64()
			refs[i][k] = xs[i][k] + 0.01*gen.Float64()
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		driftCount(xs, refs, 0.04, 8)
	}
}
