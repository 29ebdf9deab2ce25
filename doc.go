// Package edist provides energy-distance statistics for testing whether
// two or more multivariate samples come from the same distribution.
//
// 🚀 What is edist?
//
//	A small, deterministic statistics library built around the multivariate
//	energy (e-distance) statistic and its permutation test:
//		• Two-sample and k-sample energy statistics, biased or unbiased
//		• Permutation (bootstrap) estimation of the null distribution
//		• A memory-light direct two-sample path that never builds a matrix
//		• Pairwise e-distance matrices between K samples
//
// ✨ Why choose edist?
//
//   - Explicit randomness – every stochastic call takes its own stream,
//     no hidden global state, bit-reproducible with a fixed seed
//   - Clear error contracts – sentinel errors, checked with errors.Is
//   - Pure computation – raw numeric results, no formatting, no I/O
//
// Everything is organized under two subpackages:
//
//	energy/  — statistic engine, permutation-test driver, summaries
//	distmat/ — point views, Euclidean/power distance matrices, gonum interop
//
// Dive into the per-package doc.go files for formulas, complexity notes
// and runnable examples.
//
//	go get github.com/diststat/edist/energy
package edist
