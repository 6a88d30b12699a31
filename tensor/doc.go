// Package tensor combines per-dimension basis vectors into multivariate
// basis tensors and contracts them against control-point slices.
//
// Layout convention, shared with package coeffs: flat coefficient arrays
// are row-major with the LAST parametric dimension fastest. Outer builds
// Kronecker products in matching order (the first factor varies slowest),
// so a basis tensor and a gathered coefficient window line up index for
// index and the contraction is a plain dot product.
//
// The package also owns the derivative-request encoding: one integer whose
// decimal digits give the derivative order per dimension (ones digit for
// dimension 1, tens for dimension 2, and so on), each in 0..4.
package tensor
