// Package distmat provides the pairwise-distance collaborators used by the
// energy-statistic engine: a row-major view over pooled coordinate data and
// square symmetric distance matrices with several builders.
//
// Building blocks:
//
//	Points — read-only row-major view of N observation vectors in ℝ^d,
//	         normalizing column-major input on construction.
//	Dense  — N×N symmetric distance matrix with a zero diagonal, stored in
//	         one flat row-major slice; read-only after construction.
//
// Builders:
//
//   - Euclidean(pts)            — D[i][j] = ‖xᵢ − xⱼ‖₂
//   - PowerEuclidean(pts, a)    — D[i][j] = ‖xᵢ − xⱼ‖₂ᵃ for a ∈ (0, 2]
//   - FromSlice(data, n)        — ingest a caller-precomputed N×N matrix
//   - FromSymmetric(s)          — ingest a gonum mat.Symmetric
//
// Complexity:
//
//	– Time:  O(N²·d) for the coordinate builders, O(N²) for ingestion
//	– Space: O(N²) per matrix, O(N·d) per point view
//
// Errors (sentinel):
//
//	– ErrBadShape       if a requested dimension is not positive
//	– ErrBufferSize     if a flat buffer does not match the declared shape
//	– ErrBadPowerIndex  if the power index lies outside (0, 2]
//	– ErrNilPoints      if a nil *Points is passed to a builder
//
// All errors are matched with errors.Is; no function panics on
// user-triggered conditions.
package distmat
