// Package testutil provides testing utilities for splinego.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded thread-safe random source, parametric point
// generators, and a naive Cox-de Boor reference evaluator for
// cross-checking the production recursion.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, 2) // 100 points in [0,1)^2
//
// # Reference Evaluation
//
//	want := testutil.NaiveBasis(knots, degree, i, xi)
package testutil
