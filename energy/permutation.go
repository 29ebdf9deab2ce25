package energy

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/diststat/edist/distmat"
)

// PermutationTest runs the full k-sample energy test in three phases:
//
//	SETUP     — N = Σ sizes; build (or ingest) the N×N distance matrix;
//	OBSERVE   — observed statistic e0 under the identity permutation;
//	BOOTSTRAP — B random relabelings, one replicate statistic each,
//	            p-value = (exceed+1)/(B+1) with exceed counting replicates
//	            strictly greater than e0. Skipped when B == 0, leaving the
//	            p-value NaN (check Result.HasPValue).
//
// data is the pooled sample: N·Dim coordinates (row-major, or column-major
// with Options.ByColumn) when Dim > 0, or a precomputed N×N distance
// matrix when Dim == 0. sizes holds the K group sizes in pool order.
//
// A nil opts pointer selects DefaultOptions(0) — distance-matrix input,
// observe only. The distance matrix and permutation array are owned by the
// call and released when it returns; the replicate slice in the Result is
// the caller's.
//
// Errors: ErrTooFewGroups, ErrGroupSize, ErrReplicates, ErrBufferSize and
// the distmat builder sentinels (e.g. distmat.ErrBadPowerIndex).
// Complexity: O(B·N²) time after an O(N²·Dim) setup, O(N²) memory.
func PermutationTest(data []float64, sizes []int, opts *Options) (*Result, error) {
	o := DefaultOptions(0)
	if opts != nil {
		o = *opts
	}
	if err := validate(len(data), sizes, &o); err != nil {
		return nil, err
	}

	n := 0
	for _, s := range sizes {
		n += s
	}

	// SETUP: build or ingest the distance matrix.
	var (
		D   *distmat.Dense
		err error
	)
	if o.Dim > 0 {
		var pts *distmat.Points
		pts, err = distmat.NewPoints(data, n, o.Dim, !o.ByColumn)
		if err == nil {
			D, err = distmat.PowerEuclidean(pts, o.Index)
		}
	} else {
		D, err = distmat.FromSlice(data, n)
	}
	if err != nil {
		return nil, err
	}

	// OBSERVE: statistic under the original group assignment.
	perm := identity(n)
	res := &Result{
		Statistic: MultiSample(D, sizes, perm, o.Unbiased),
		PValue:    math.NaN(),
		Unbiased:  o.Unbiased,
	}
	if o.Replicates == 0 {
		return res, nil
	}

	// BOOTSTRAP: estimate the null distribution by relabeling.
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	res.Replicates = make([]float64, o.Replicates)
	if o.Workers > 1 {
		bootstrapParallel(D, sizes, res.Replicates, o.Unbiased, o.Workers, rng)
	} else {
		bootstrap(D, sizes, perm, res.Replicates, o.Unbiased, rng)
	}

	exceed := 0
	for _, e := range res.Replicates {
		if e > res.Statistic {
			exceed++
		}
	}
	res.PValue = float64(exceed+1) / float64(o.Replicates+1)

	return res, nil
}

// validate rejects malformed driver configurations up front, so the
// statistic kernels never see an inconsistent layout.
func validate(dataLen int, sizes []int, o *Options) error {
	if len(sizes) < 2 {
		return ErrTooFewGroups
	}
	n := 0
	for _, s := range sizes {
		if s < 1 {
			return ErrGroupSize
		}
		n += s
	}
	if o.Replicates < 0 {
		return ErrReplicates
	}
	if o.Index == 0 {
		o.Index = 1
	}
	want := n * n
	if o.Dim > 0 {
		want = n * o.Dim
	}
	if dataLen != want {
		return ErrBufferSize
	}

	return nil
}

// bootstrap runs the canonical sequential loop: one shared permutation
// array reshuffled in place, one replicate per iteration.
func bootstrap(D *distmat.Dense, sizes, perm []int, out []float64, unbiased bool, rng *rand.Rand) {
	n := len(perm)
	for b := range out {
		rng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		out[b] = MultiSample(D, sizes, perm, unbiased)
	}
}

// bootstrapParallel splits the replicates into contiguous blocks, one per
// worker. Each worker owns a private permutation buffer and a private
// stream seeded from rng, and writes its replicates into out by index —
// no shared mutable state between workers. For a fixed seed and worker
// count the output is deterministic.
func bootstrapParallel(D *distmat.Dense, sizes []int, out []float64, unbiased bool, workers int, rng *rand.Rand) {
	n := 0
	for _, s := range sizes {
		n += s
	}
	// Seeds are drawn up front on the caller's stream so the partition is
	// reproducible and workers never touch rng concurrently.
	seeds := make([]uint64, workers)
	for w := range seeds {
		seeds[w] = rng.Uint64()
	}

	chunk := (len(out) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(out) {
			hi = len(out)
		}
		if lo >= hi {
			break
		}
		seed := seeds[w]
		block := out[lo:hi]
		g.Go(func() error {
			wrng := rand.New(rand.NewSource(seed))
			perm := identity(n)
			for b := range block {
				wrng.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
				block[b] = MultiSample(D, sizes, perm, unbiased)
			}

			return nil
		})
	}
	// Workers only compute; the group exists for structured join semantics.
	_ = g.Wait()
}
