// Package knots provides the univariate knot-vector type underlying all
// tensor-product B-spline evaluation.
//
// A KnotVector is an immutable non-decreasing sequence of parameter values
// in [0,1] together with a polynomial degree. It answers two questions:
// which knot span contains a parametric coordinate (Span), and where the
// canonical control-point locations sit (Greville).
//
// Two constructors exist:
//
//   - NewOpenUniform builds an open knot vector with equally spaced
//     interior knots. Span location is closed-form, O(1).
//   - FromValues accepts an arbitrary non-decreasing sequence. Span
//     location falls back to binary search.
//
// Invariant: ncoeffs = len(values) - degree - 1 for every vector the
// package hands out. Construction fails with ErrInvalidConfiguration
// rather than producing a vector that violates it.
package knots
