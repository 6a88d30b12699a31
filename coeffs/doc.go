// Package coeffs stores the control-point data of a tensor-product
// B-spline: one flat float64 array per geometric output component,
// logically a multi-dimensional array over the per-dimension basis
// indices, row-major with the last parametric dimension fastest.
//
// A Store is created with an initialization policy (Zeros, Ones, Linear,
// Random, Greville) and mutated in place afterwards: point-wise through
// Set, wholesale through Transform, or structurally by refinement in the
// owning spline.
//
// Concurrency: the Store does no internal locking. Concurrent reads are
// safe; Transform parallelizes internally over disjoint index ranges; the
// caller must not overlap Transform (or any write) with reads on the same
// Store.
package coeffs
