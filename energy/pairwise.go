package energy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/diststat/edist/distmat"
)

// PairwiseDist returns the K×K symmetric matrix of pairwise two-sample
// e-distances between the K contiguous samples of D described by sizes:
// entry (i, j) is TwoSample over groups i and j, the diagonal is zero.
// Useful as a dissimilarity matrix between whole samples, e.g. for
// hierarchical clustering of groups.
//
// The result is a gonum *mat.SymDense so it plugs directly into gonum
// pipelines.
//
// Errors: ErrTooFewGroups, ErrGroupSize, ErrSizeSum.
// Complexity: O(N²) distance-matrix reads, O(K²) output.
func PairwiseDist(D *distmat.Dense, sizes []int, unbiased bool) (*mat.SymDense, error) {
	if len(sizes) < 2 {
		return nil, ErrTooFewGroups
	}
	n := 0
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrGroupSize
		}
		n += s
	}
	if n != D.N() {
		return nil, ErrSizeSum
	}

	offsets := make([]int, len(sizes))
	for k := 1; k < len(sizes); k++ {
		offsets[k] = offsets[k-1] + sizes[k-1]
	}

	idx := identity(n)
	out := mat.NewSymDense(len(sizes), nil)
	for i := 0; i < len(sizes); i++ {
		x := idx[offsets[i] : offsets[i]+sizes[i]]
		for j := i + 1; j < len(sizes); j++ {
			y := idx[offsets[j] : offsets[j]+sizes[j]]
			out.SetSym(i, j, TwoSample(D, x, y, unbiased))
		}
	}

	return out, nil
}
