// Package energy computes multivariate energy-distance (e-distance)
// statistics and drives the permutation test for equality of K ≥ 2
// distributions.
//
// 🚀 What is the energy statistic?
//
//	For samples X (size m) and Y (size n) with pairwise distances D:
//
//	  E(X,Y) = (m·n/(m+n)) · (2·cross − withinX − withinY)
//
//	where cross is the average X↔Y distance and withinX/withinY are the
//	average within-sample distances (scaled 2/m², optionally corrected by
//	m/(m−1) in the unbiased form). The k-sample statistic is the sum of
//	E over all unordered sample pairs, and its null distribution is
//	estimated by permuting group membership.
//
// Surfaces:
//
//   - TwoSample / Dist / MultiSample — statistics over a distance matrix
//   - TwoSampleDirect / TwoSamplePooled — the same two-sample statistic
//     computed straight from coordinates, O(N) memory, no matrix
//   - PermutationTest — observed statistic, B permutation replicates and
//     the empirical p-value (exceed+1)/(B+1)
//   - PairwiseDist — K×K matrix of pairwise e-distances between samples
//   - Summarize — mean/spread/quantiles of a replicate array
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand handle scoped to
//	one PermutationTest call. A fixed seed reproduces the replicate
//	sequence bit-for-bit (per worker count when the parallel bootstrap is
//	enabled). There is no package-level random state.
//
// Degenerate groups:
//
//	A group of size < 1 contributes exactly 0 to any statistic — never an
//	error. The driver, in contrast, validates its configuration up front
//	and rejects malformed inputs with sentinel errors.
//
// Complexity:
//
//	– Time:  O(B·N²) for the matrix-backed test, O(B·N²·d) direct
//	– Space: O(N²) for the distance matrix, O(N) for the permutation
//
// Errors (sentinel):
//
//	– ErrTooFewGroups  if fewer than two group sizes are supplied
//	– ErrGroupSize     if any group size is < 1
//	– ErrBufferSize    if the data buffer does not match the layout
//	– ErrSizeSum       if group sizes do not sum to a matrix order
//	– ErrReplicates    if the replicate count is negative
//	– ErrNoReplicates  if a summary is requested without replicates
package energy
