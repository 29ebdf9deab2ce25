package energy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diststat/edist/distmat"
	"github.com/diststat/edist/energy"
)

// euclid builds the Euclidean distance matrix of 2-d points given as flat
// row-major coordinates, failing the test on malformed input.
func euclid(t *testing.T, coords []float64, n, dim int) *distmat.Dense {
	t.Helper()
	pts, err := distmat.NewPoints(coords, n, dim, true)
	require.NoError(t, err)
	d, err := distmat.Euclidean(pts)
	require.NoError(t, err)

	return d
}

// TestTwoSample_HandComputed checks the engine against the statistic
// computed by hand from the defining formula for two 2-d samples of size
// 3 each: X = {(0,0),(1,0),(0,1)}, Y = X shifted by (3,0).
func TestTwoSample_HandComputed(t *testing.T) {
	coords := []float64{
		0, 0, 1, 0, 0, 1, // sample X
		3, 0, 4, 0, 3, 1, // sample Y
	}
	D := euclid(t, coords, 6, 2)

	// Within-sample distances are {1, 1, √2} in both samples.
	within := 2.0 * (1 + 1 + math.Sqrt2) / 9.0
	// All nine cross distances, row by row of X.
	cross := (3 + 4 + math.Sqrt(10) +
		2 + 3 + math.Sqrt(5) +
		math.Sqrt(10) + math.Sqrt(17) + 3) / 9.0
	want := 9.0 / 6.0 * (2*cross - within - within)

	got := energy.TwoSample(D, []int{0, 1, 2}, []int{3, 4, 5}, false)
	assert.InDelta(t, want, got, 1e-12, "engine must reproduce the hand-computed statistic")
}

// TestTwoSample_EqualsDistOnContiguousGroups verifies that TwoSample with
// contiguous identity index lists equals Dist on the same matrix, for both
// correction modes.
func TestTwoSample_EqualsDistOnContiguousGroups(t *testing.T) {
	coords := []float64{0, 0, 1, 2, 4, 1, 3, 3, 7, 0, 6, 2, 5, 5}
	D := euclid(t, coords, 7, 2)

	for _, unbiased := range []bool{false, true} {
		got := energy.TwoSample(D, []int{0, 1, 2}, []int{3, 4, 5, 6}, unbiased)
		want := energy.Dist(D, 3, 4, unbiased)
		assert.InDelta(t, want, got, 1e-12, "contiguous TwoSample must equal Dist (unbiased=%v)", unbiased)
	}
}

// TestMultiSample_ReducesToTwoSample checks the K=2 reduction property:
// the multisample statistic over two groups is exactly the two-sample one.
func TestMultiSample_ReducesToTwoSample(t *testing.T) {
	coords := []float64{0, 0, 2, 1, 1, 3, 5, 5, 6, 4, 4, 6}
	D := euclid(t, coords, 6, 2)
	perm := []int{0, 1, 2, 3, 4, 5}

	for _, unbiased := range []bool{false, true} {
		multi := energy.MultiSample(D, []int{3, 3}, perm, unbiased)
		two := energy.TwoSample(D, perm[:3], perm[3:], unbiased)
		assert.InDelta(t, two, multi, 1e-12, "K=2 MultiSample must reduce to TwoSample")
	}
}

// TestTwoSample_WithinGroupOrderInvariance verifies that permuting a
// group's own index list leaves the statistic unchanged.
func TestTwoSample_WithinGroupOrderInvariance(t *testing.T) {
	coords := []float64{0, 0, 1, 2, 4, 1, 3, 3, 7, 0, 6, 2}
	D := euclid(t, coords, 6, 2)

	base := energy.TwoSample(D, []int{0, 1, 2}, []int{3, 4, 5}, true)
	shuffledX := energy.TwoSample(D, []int{2, 0, 1}, []int{3, 4, 5}, true)
	shuffledY := energy.TwoSample(D, []int{0, 1, 2}, []int{5, 3, 4}, true)

	assert.InDelta(t, base, shuffledX, 1e-12, "reordering xrows must not change the statistic")
	assert.InDelta(t, base, shuffledY, 1e-12, "reordering yrows must not change the statistic")
}

// TestTwoSample_DegenerateGroupContributesZero verifies the graceful
// degenerate policy: an empty group yields 0, never an error or NaN.
func TestTwoSample_DegenerateGroupContributesZero(t *testing.T) {
	coords := []float64{0, 0, 1, 2, 4, 1, 3, 3}
	D := euclid(t, coords, 4, 2)

	assert.Zero(t, energy.TwoSample(D, nil, []int{0, 1}, false), "empty X group must contribute 0")
	assert.Zero(t, energy.TwoSample(D, []int{0, 1}, nil, true), "empty Y group must contribute 0")
	assert.Zero(t, energy.Dist(D, 0, 4, false), "m=0 Dist must be 0")
	assert.Zero(t, energy.Dist(D, 4, 0, true), "n=0 Dist must be 0")
}

// TestTwoSample_SingletonUnbiased verifies that a singleton group under
// the unbiased flag stays finite: its within sum is zero and the m/(m−1)
// factor must not turn it into NaN.
func TestTwoSample_SingletonUnbiased(t *testing.T) {
	coords := []float64{0, 0, 5, 0, 5, 1}
	D := euclid(t, coords, 3, 2)

	got := energy.TwoSample(D, []int{0}, []int{1, 2}, true)
	assert.False(t, math.IsNaN(got), "singleton group must not produce NaN under unbiased correction")
	assert.Greater(t, got, 0.0, "well-separated singleton vs pair must give a positive statistic")
}

// TestMultiSample_ThreeGroups cross-checks the k-sample statistic against
// the explicit sum of pairwise statistics.
func TestMultiSample_ThreeGroups(t *testing.T) {
	coords := []float64{
		0, 0, 1, 0, // group 1
		5, 5, 6, 5, 5, 6, // group 2
		9, 0, 9, 1, // group 3
	}
	D := euclid(t, coords, 7, 2)
	sizes := []int{2, 3, 2}
	perm := []int{0, 1, 2, 3, 4, 5, 6}

	want := energy.TwoSample(D, perm[0:2], perm[2:5], false) +
		energy.TwoSample(D, perm[0:2], perm[5:7], false) +
		energy.TwoSample(D, perm[2:5], perm[5:7], false)
	got := energy.MultiSample(D, sizes, perm, false)
	assert.InDelta(t, want, got, 1e-12, "MultiSample must be the sum over unordered group pairs")
}

// TestTwoSample_UnbiasedInflatesWithin verifies the direction of the
// correction: scaling the within averages up can only decrease the result.
func TestTwoSample_UnbiasedInflatesWithin(t *testing.T) {
	coords := []float64{0, 0, 1, 2, 4, 1, 3, 3, 7, 0, 6, 2}
	D := euclid(t, coords, 6, 2)

	biased := energy.TwoSample(D, []int{0, 1, 2}, []int{3, 4, 5}, false)
	unbiased := energy.TwoSample(D, []int{0, 1, 2}, []int{3, 4, 5}, true)
	assert.Less(t, unbiased, biased, "unbiased correction must lower the statistic for non-degenerate groups")
}
