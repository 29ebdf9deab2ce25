package energy_test

import (
	"fmt"

	"github.com/diststat/edist/distmat"
	"github.com/diststat/edist/energy"
)

// ExampleDist computes the e-distance between two 1-d samples whose
// statistic is easy to verify by hand: X = {0, 1}, Y = {10, 11}.
//
//	within averages: 2·1/4 = 0.5 each
//	cross average:   (10+11+9+10)/4 = 10
//	e = (4/4)·(2·10 − 0.5 − 0.5) = 19
func ExampleDist() {
	pts, err := distmat.NewPoints([]float64{0, 1, 10, 11}, 4, 1, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	D, err := distmat.Euclidean(pts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("e-distance = %.1f\n", energy.Dist(D, 2, 2, false))
	// Output:
	// e-distance = 19.0
}

// ExamplePermutationTest runs an observe-only test (Replicates = 0): the
// statistic is computed, the p-value stays unset.
func ExamplePermutationTest() {
	data := []float64{0, 1, 10, 11} // pooled 1-d sample
	sizes := []int{2, 2}

	opts := energy.DefaultOptions(1)
	res, err := energy.PermutationTest(data, sizes, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("e0 = %.1f\n", res.Statistic)
	fmt.Printf("p-value set = %v\n", res.HasPValue())
	// Output:
	// e0 = 19.0
	// p-value set = false
}

// ExampleTwoSamplePooled computes the same statistic without ever
// building a distance matrix.
func ExampleTwoSamplePooled() {
	pts, err := distmat.NewPoints([]float64{0, 1, 10, 11}, 4, 1, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("e-distance = %.1f\n", energy.TwoSamplePooled(pts, 2, 2))
	// Output:
	// e-distance = 19.0
}
