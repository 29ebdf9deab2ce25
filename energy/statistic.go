package energy

import "github.com/diststat/edist/distmat"

// TwoSample returns the e-distance between the two samples of D indexed by
// xrows and yrows.
//
// The statistic is
//
//	(m·n/(m+n)) · (2·cross − withinX − withinY)
//
// with cross the average distance between the samples and withinX/withinY
// the within-sample averages scaled 2/m² (resp. 2/n²). When unbiased is
// set, the within averages are further scaled by m/(m−1) (resp. n/(n−1)),
// removing the plug-in estimator's negative bias.
//
// A sample of size < 1 contributes 0: the result is 0, never an error.
// Complexity: O((m+n)²) distance-matrix reads.
func TwoSample(D *distmat.Dense, xrows, yrows []int, unbiased bool) float64 {
	m, n := len(xrows), len(yrows)
	if m < 1 || n < 1 {
		return 0
	}

	var withinX, withinY, cross float64
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			withinX += D.At(xrows[i], xrows[j])
		}
	}
	withinX *= 2.0 / float64(m*m)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			withinY += D.At(yrows[i], yrows[j])
		}
	}
	withinY *= 2.0 / float64(n*n)
	// The correction only applies to groups with at least two members;
	// a singleton's within sum is already exactly zero.
	if unbiased {
		if m > 1 {
			withinX *= float64(m) / float64(m-1)
		}
		if n > 1 {
			withinY *= float64(n) / float64(n-1)
		}
	}

	for i := 0; i < m; i++ {
		ri := D.Row(xrows[i])
		for j := 0; j < n; j++ {
			cross += ri[yrows[j]]
		}
	}
	cross /= float64(m * n)

	return float64(m*n) / float64(m+n) * (2*cross - withinX - withinY)
}

// Dist returns the e-distance between the samples occupying the first m
// and the next n rows/columns of D. It is the contiguous-layout special
// case of TwoSample and delegates to the same formula through identity
// index ranges, so the two can never diverge on bias handling.
//
// A sample of size < 1 contributes 0: the result is 0, never an error.
// Complexity: O((m+n)²) reads plus one O(m+n) index allocation.
func Dist(D *distmat.Dense, m, n int, unbiased bool) float64 {
	if m < 1 || n < 1 {
		return 0
	}

	idx := identity(m + n)

	return TwoSample(D, idx[:m], idx[m:], unbiased)
}

// MultiSample returns the k-sample energy statistic: the sum of TwoSample
// over every unordered pair of the K groups described by sizes, reading
// group membership through perm. Group i owns perm[offset_i : offset_i+size_i],
// where offsets are the prefix sums of sizes. perm must be a permutation of
// [0, N) with N = Σ sizes; the identity yields the observed statistic.
//
// Groups of size < 1 contribute 0 to every pair they appear in.
// Complexity: O(N²) distance-matrix reads.
func MultiSample(D *distmat.Dense, sizes []int, perm []int, unbiased bool) float64 {
	offsets := make([]int, len(sizes))
	for k := 1; k < len(sizes); k++ {
		offsets[k] = offsets[k-1] + sizes[k-1]
	}

	var e float64
	for i := 0; i < len(sizes); i++ {
		x := perm[offsets[i] : offsets[i]+sizes[i]]
		for j := i + 1; j < len(sizes); j++ {
			e += TwoSample(D, x, perm[offsets[j]:offsets[j]+sizes[j]], unbiased)
		}
	}

	return e
}

// identity returns the slice [0, 1, …, n−1].
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}
