package energy

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the empirical null distribution estimated by the
// bootstrap: location, spread and quartiles of a replicate array.
type Summary struct {
	Mean   float64
	StdDev float64
	Q1     float64 // 25th percentile
	Median float64
	Q3     float64 // 75th percentile
}

// Summarize computes the Summary of a replicate array.
// Returns ErrNoReplicates for an empty slice (e.g. Replicates == 0 runs).
// Complexity: O(B log B) for the quantile sort.
func Summarize(replicates []float64) (Summary, error) {
	if len(replicates) == 0 {
		return Summary{}, ErrNoReplicates
	}

	sorted := make([]float64, len(replicates))
	copy(sorted, replicates)
	sort.Float64s(sorted)

	return Summary{
		Mean:   stat.Mean(sorted, nil),
		StdDev: stat.StdDev(sorted, nil),
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}, nil
}

// NullSummary summarizes the replicate distribution of a Result.
// Returns ErrNoReplicates when the bootstrap was skipped.
func (r *Result) NullSummary() (Summary, error) {
	return Summarize(r.Replicates)
}
