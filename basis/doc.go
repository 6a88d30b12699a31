// Package basis evaluates the degree+1 nonzero B-spline basis functions,
// or any order of their derivatives, at a parametric coordinate.
//
// The algorithm is a single triangular recurrence generalizing Cox-de Boor:
// the first degree-r sweeps build convex combinations of neighbouring
// values (producing function values), the last r sweeps build scaled
// differences (producing r-th derivatives), and a final integer prefactor
// degree!/(degree-r)! rescales the result.
//
// Repeated knots make the recurrence weights formally 0/0. The package
// resolves this with a masking convention, not error handling: in the
// value sweeps the degenerate weight becomes exactly 1 (so the 1-w factor
// annihilates the term), in the derivative sweeps it becomes exactly 0
// (both derivative terms carry w as a factor). Results at domain
// boundaries of open knot vectors, where degree+1 knots coincide, are
// therefore finite and exact; a NaN here is a bug, not an input problem.
package basis
