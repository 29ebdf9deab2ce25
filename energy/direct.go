package energy

import (
	"gonum.org/v1/gonum/floats"

	"github.com/diststat/edist/distmat"
)

// TwoSampleDirect computes the two-sample energy statistic straight from
// coordinates, recomputing each pairwise Euclidean distance on the fly
// instead of reading a precomputed matrix. Sample X owns the m points at
// perm[startX : startX+m], sample Y the n points at perm[startY : startY+n].
//
// It is numerically equivalent to TwoSample over the Euclidean distance
// matrix of the same points (biased form), trading O(N²) memory for
// recomputation: O(m·n·d + m²·d + n²·d) time, O(1) extra memory.
//
// A sample of size < 1 contributes 0: the result is 0, never an error.
func TwoSampleDirect(pts *distmat.Points, m, n, startX, startY int, perm []int) float64 {
	if m < 1 || n < 1 {
		return 0
	}

	var cross, withinX, withinY float64
	for i := 0; i < m; i++ {
		ri := pts.Row(perm[startX+i])
		for j := 0; j < n; j++ {
			cross += floats.Distance(ri, pts.Row(perm[startY+j]), 2)
		}
	}
	cross /= float64(m * n)

	// Half within-sums: i<j pairs over m² (resp. n²) cancel the factor 2
	// against the 2w multiplier below.
	for i := 1; i < m; i++ {
		ri := pts.Row(perm[startX+i])
		for j := 0; j < i; j++ {
			withinX += floats.Distance(ri, pts.Row(perm[startX+j]), 2)
		}
	}
	withinX /= float64(m * m)
	for i := 1; i < n; i++ {
		ri := pts.Row(perm[startY+i])
		for j := 0; j < i; j++ {
			withinY += floats.Distance(ri, pts.Row(perm[startY+j]), 2)
		}
	}
	withinY /= float64(n * n)

	w := float64(m*n) / float64(m+n)

	return 2 * w * (cross - withinX - withinY)
}

// TwoSamplePooled computes the two-sample energy statistic for pooled
// coordinate data laid out contiguously: the first m rows of pts are
// sample X, the next n rows sample Y. No permutation indirection and no
// distance matrix — the memory-light path for the plain two-sample test.
//
// Numerically equivalent to Dist over the Euclidean distance matrix of the
// same points (biased form).
//
// A sample of size < 1 contributes 0: the result is 0, never an error.
// Complexity: O((m+n)²·d) time, O(1) extra memory.
func TwoSamplePooled(pts *distmat.Points, m, n int) float64 {
	if m < 1 || n < 1 {
		return 0
	}

	var cross, withinX, withinY float64
	for i := 0; i < m; i++ {
		ri := pts.Row(i)
		for j := m; j < m+n; j++ {
			cross += floats.Distance(ri, pts.Row(j), 2)
		}
	}
	cross /= float64(m * n)

	for i := 1; i < m; i++ {
		ri := pts.Row(i)
		for j := 0; j < i; j++ {
			withinX += floats.Distance(ri, pts.Row(j), 2)
		}
	}
	withinX /= float64(m * m)
	for i := m + 1; i < m+n; i++ {
		ri := pts.Row(i)
		for j := m; j < i; j++ {
			withinY += floats.Distance(ri, pts.Row(j), 2)
		}
	}
	withinY /= float64(n * n)

	w := float64(m*n) / float64(m+n)

	return 2 * w * (cross - withinX - withinY)
}
