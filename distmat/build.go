package distmat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Euclidean builds the N×N matrix of pairwise Euclidean distances
// D[i][j] = ‖xᵢ − xⱼ‖₂ between the rows of pts.
//
// Returns ErrNilPoints if pts is nil.
// Complexity: O(N²·d) time, O(N²) memory.
func Euclidean(pts *Points) (*Dense, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}

	d, err := NewDense(pts.N())
	if err != nil {
		return nil, err
	}
	for i := 0; i < pts.n; i++ {
		ri := pts.Row(i)
		for j := i + 1; j < pts.n; j++ {
			d.set(i, j, floats.Distance(ri, pts.Row(j), 2))
		}
	}

	return d, nil
}

// PowerEuclidean builds D[i][j] = ‖xᵢ − xⱼ‖₂^index for index ∈ (0, 2].
// With index == 1 this is the plain Euclidean matrix; other exponents give
// the generalized energy metric. For index > 2 the powered distance is no
// longer of negative type, so such exponents are rejected.
//
// Returns ErrNilPoints or ErrBadPowerIndex.
// Complexity: O(N²·d) time, O(N²) memory.
func PowerEuclidean(pts *Points, index float64) (*Dense, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}
	if math.IsNaN(index) || index <= 0 || index > 2 {
		return nil, ErrBadPowerIndex
	}
	if index == 1 {
		return Euclidean(pts)
	}

	d, err := NewDense(pts.N())
	if err != nil {
		return nil, err
	}
	for i := 0; i < pts.n; i++ {
		ri := pts.Row(i)
		for j := i + 1; j < pts.n; j++ {
			d.set(i, j, math.Pow(floats.Distance(ri, pts.Row(j), 2), index))
		}
	}

	return d, nil
}

// FromSlice ingests a caller-precomputed n×n distance matrix from a flat
// row-major buffer of n² values. The buffer is copied; the caller keeps
// ownership of the original slice.
//
// Symmetry and the zero diagonal are the caller's contract and are not
// re-verified here, matching the "distances are trusted input" boundary of
// the statistic engine.
//
// Returns ErrBadShape or ErrBufferSize.
// Complexity: O(n²) time and memory.
func FromSlice(data []float64, n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != n*n {
		return nil, ErrBufferSize
	}

	d := &Dense{n: n, data: make([]float64, n*n)}
	copy(d.data, data)

	return d, nil
}

// FromSymmetric ingests a gonum symmetric matrix, so distance matrices
// produced by gonum pipelines (mat.SymDense and friends) can feed the
// energy statistics directly.
//
// Returns ErrBadShape if the matrix order is not positive.
// Complexity: O(n²) time and memory.
func FromSymmetric(s mat.Symmetric) (*Dense, error) {
	n := s.SymmetricDim()
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = s.At(i, i)
		for j := i + 1; j < n; j++ {
			d.set(i, j, s.At(i, j))
		}
	}

	return d, nil
}
