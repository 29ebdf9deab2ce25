package energy

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors returned by the permutation-test driver and helpers.
var (
	// ErrTooFewGroups indicates that fewer than two group sizes were supplied;
	// the k-sample statistic needs K ≥ 2.
	ErrTooFewGroups = errors.New("energy: need at least two groups")

	// ErrGroupSize indicates a group size < 1 in the driver configuration.
	// (The statistic functions themselves treat such groups as contributing
	// zero; the driver rejects them so N and the buffer layout stay honest.)
	ErrGroupSize = errors.New("energy: group sizes must be >= 1")

	// ErrBufferSize indicates that the pooled data buffer length does not
	// match the layout implied by the group sizes and dimension
	// (N·Dim coordinates, or N² distance-matrix entries when Dim == 0).
	ErrBufferSize = errors.New("energy: data length does not match layout")

	// ErrSizeSum indicates that group sizes do not sum to the order of the
	// supplied distance matrix.
	ErrSizeSum = errors.New("energy: group sizes do not sum to matrix order")

	// ErrReplicates indicates a negative replicate count.
	ErrReplicates = errors.New("energy: replicate count must be >= 0")

	// ErrNoReplicates indicates that a replicate summary was requested for
	// an empty replicate array (e.g. a test run with Replicates == 0).
	ErrNoReplicates = errors.New("energy: no replicates to summarize")
)

// Options configures one PermutationTest call.
type Options struct {
	// Dim is the coordinate dimension of the pooled data. Dim == 0 means
	// the data buffer is already an N×N distance matrix.
	Dim int

	// ByColumn marks the data buffer as column-major; it is normalized to
	// row order during setup. Coordinate input only.
	ByColumn bool

	// Replicates is the number B of permutation replicates. B == 0 skips
	// the bootstrap entirely and leaves the p-value unset.
	Replicates int

	// Unbiased applies the m/(m−1) finite-sample correction to the
	// within-group averages.
	Unbiased bool

	// Index is the power index of the generalized Euclidean metric,
	// in (0, 2]. The zero value is treated as 1 (plain Euclidean).
	// Ignored when Dim == 0.
	Index float64

	// Rand is the random stream for the bootstrap. nil means a private,
	// time-seeded stream; pass a seeded *rand.Rand for reproducible
	// replicate sequences.
	Rand *rand.Rand

	// Workers sets bootstrap parallelism. Values < 2 run the canonical
	// sequential loop; W ≥ 2 splits the replicates into W contiguous
	// blocks, each with a private permutation buffer and an independently
	// seeded stream drawn from Rand.
	Workers int
}

// DefaultOptions returns an Options value with sensible defaults for
// coordinate data of dimension dim: no replicates, biased statistic,
// plain Euclidean metric, sequential bootstrap, time-seeded stream.
// Use dim == 0 for precomputed distance-matrix input.
func DefaultOptions(dim int) Options {
	return Options{
		Dim:        dim,
		ByColumn:   false,
		Replicates: 0,
		Unbiased:   false,
		Index:      1,
		Rand:       nil,
		Workers:    1,
	}
}

// Result carries the raw numeric outputs of one permutation test.
// Interpretation and formatting are the caller's concern.
type Result struct {
	// Statistic is the observed k-sample energy statistic e0, computed
	// under the original (identity) group assignment.
	Statistic float64

	// Replicates holds one statistic per permutation replicate, in the
	// order they were drawn. Empty when Options.Replicates == 0.
	Replicates []float64

	// PValue is the empirical p-value (exceed+1)/(B+1). It is NaN when
	// the bootstrap was skipped (Replicates == 0); check HasPValue.
	PValue float64

	// Unbiased records which correction mode produced the statistics.
	Unbiased bool
}

// HasPValue reports whether the bootstrap ran and PValue is meaningful.
func (r *Result) HasPValue() bool {
	return len(r.Replicates) > 0
}
