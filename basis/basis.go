package basis

import "github.com/hupe1980/splinego/knots"

// eps is the machine epsilon for float64. Knot differences below it are
// treated as repeated knots by the masking convention.
const eps = 0x1p-52

// Evaluate returns the deriv-th derivative of the degree+1 basis functions
// that are nonzero on the span containing xi:
//
//	[D^r B[span-degree](xi), ..., D^r B[span](xi)]
//
// span must come from kv.Span (or its batch variant). A derivative order
// above the degree yields the zero vector: derivatives beyond the
// polynomial degree vanish identically.
func Evaluate(kv knots.KnotVector, deriv, span int, xi float64) []float64 {
	p := kv.Degree()
	out := make([]float64, p+1)
	if deriv > p {
		return out
	}

	buf := make([]float64, p+1)
	b, next := buf, out
	b[0] = 1

	// Value sweeps: b[k] holds the degree-k basis values after sweep k.
	// w is the local barycentric coordinate of xi in each knot window;
	// at a repeated knot both its numerator and denominator are replaced
	// by 1, so w=1 and the 1-w factor zeroes the degenerate term.
	for k := 1; k <= p-deriv; k++ {
		for j := 0; j <= k; j++ {
			next[j] = 0
		}
		for j := 0; j < k; j++ {
			t1 := kv.At(span - k + 1 + j)
			t2 := kv.At(span + 1 + j)
			w := 1.0
			if t2-t1 >= eps {
				w = (xi - t1) / (t2 - t1)
			}
			next[j] += (1 - w) * b[j]
			next[j+1] += w * b[j]
		}
		b, next = next, b
	}

	// Derivative sweeps: same windows, but the weight is the reciprocal
	// window width and both resulting terms carry it as a factor, so the
	// repeated-knot substitute is 0: w = (1-mask)/(t2-t1-mask).
	for k := p - deriv + 1; k <= p; k++ {
		for j := 0; j <= k; j++ {
			next[j] = 0
		}
		for j := 0; j < k; j++ {
			t1 := kv.At(span - k + 1 + j)
			t2 := kv.At(span + 1 + j)
			w := 0.0
			if t2-t1 >= eps {
				w = 1 / (t2 - t1)
			}
			next[j] -= w * b[j]
			next[j+1] += w * b[j]
		}
		b, next = next, b
	}

	// Prefactor p!/(p-r)!, accumulated as an integer product.
	scale := 1
	for q := p; q > p-deriv; q-- {
		scale *= q
	}
	if scale != 1 {
		for j := range b {
			b[j] *= float64(scale)
		}
	}

	if &b[0] != &out[0] {
		copy(out, b)
	}
	return out
}

// EvaluateBatch evaluates the recursion at n coordinate/span pairs and
// returns a (degree+1) x n matrix: row j holds basis function j across all
// points. It is the elementwise map of Evaluate; the scalar path is the
// single source of truth.
func EvaluateBatch(kv knots.KnotVector, deriv int, spans []int, xis []float64) [][]float64 {
	p := kv.Degree()
	out := make([][]float64, p+1)
	for j := range out {
		out[j] = make([]float64, len(xis))
	}
	for i, xi := range xis {
		col := Evaluate(kv, deriv, spans[i], xi)
		for j, v := range col {
			out[j][i] = v
		}
	}
	return out
}
