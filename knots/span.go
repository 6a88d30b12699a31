package knots

import "math"

// Span returns the index i of the knot span containing xi, such that
// t[i] <= xi < t[i+1], clamped to the valid range [degree, ncoeffs-1].
// The result feeds directly into the basis recursion: the nonzero basis
// functions at xi are B[i-degree] .. B[i].
//
// Open-uniform vectors use the closed form
// floor(xi*(ncoeffs-degree) + degree); everything else binary-searches.
// xi = 1 (the upper domain boundary) clamps to the last valid span.
func (kv KnotVector) Span(xi float64) int {
	p := kv.degree
	n := kv.NCoeffs()

	if kv.uniform {
		i := int(math.Floor(xi*float64(n-p))) + p
		if i < p {
			return p
		}
		if i > n-1 {
			return n - 1
		}
		return i
	}

	// Smallest i >= degree with t[i+1] > xi, clamped to ncoeffs-1.
	lo, hi := p, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if kv.values[mid+1] > xi {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// SpanBatch locates the span for every coordinate elementwise.
func (kv KnotVector) SpanBatch(xis []float64) []int {
	out := make([]int, len(xis))
	for i, xi := range xis {
		out[i] = kv.Span(xi)
	}
	return out
}
