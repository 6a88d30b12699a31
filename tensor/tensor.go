package tensor

import (
	"errors"
	"fmt"
)

// MaxParDim is the highest supported parametric dimension.
const MaxParDim = 4

// MaxDeriv is the highest derivative order encodable per dimension.
const MaxDeriv = 4

// ErrUnsupportedDimension is returned for parametric dimensions outside
// {0,1,2,3,4} and for derivative digits outside 0..4.
var ErrUnsupportedDimension = errors.New("tensor: unsupported dimension")

// Outer returns the Kronecker product of the given vectors, first factor
// varying slowest. The product of no vectors is the scalar [1].
func Outer(vs ...[]float64) []float64 {
	out := []float64{1}
	for _, v := range vs {
		next := make([]float64, len(out)*len(v))
		for i, a := range out {
			base := i * len(v)
			for j, b := range v {
				next[base+j] = a * b
			}
		}
		out = next
	}
	return out
}

// SliceIndices returns the flat indices of the hyper-rectangular
// coefficient window [span[d]-degree[d], span[d]] per dimension, ordered
// to match Outer's output for basis vectors in the same dimension order.
func SliceIndices(spans, degrees, ncoeffs []int) []int {
	d := len(ncoeffs)
	if d == 0 {
		return []int{0}
	}

	strides := make([]int, d)
	strides[d-1] = 1
	for i := d - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * ncoeffs[i+1]
	}

	total := 1
	for i := 0; i < d; i++ {
		total *= degrees[i] + 1
	}

	out := make([]int, 0, total)
	idx := make([]int, d) // offset within the window, per dimension
	for {
		flat := 0
		for i := 0; i < d; i++ {
			flat += (spans[i] - degrees[i] + idx[i]) * strides[i]
		}
		out = append(out, flat)

		// Advance the multi-index, last dimension fastest.
		i := d - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] <= degrees[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}

// Contract gathers component values at the given flat indices and dots
// them with the basis tensor. len(basis) must equal len(idx).
func Contract(basis, component []float64, idx []int) float64 {
	var sum float64
	for i, b := range basis {
		sum += b * component[idx[i]]
	}
	return sum
}

// DerivCode encodes per-dimension derivative orders into a single integer:
// orders[0] in the ones digit, orders[1] in the tens digit, and so on.
// Each order must lie in 0..MaxDeriv and at most MaxParDim orders fit.
func DerivCode(orders ...int) (int, error) {
	if len(orders) > MaxParDim {
		return 0, fmt.Errorf("%w: %d derivative orders, at most %d", ErrUnsupportedDimension, len(orders), MaxParDim)
	}
	code := 0
	pow := 1
	for d, r := range orders {
		if r < 0 || r > MaxDeriv {
			return 0, fmt.Errorf("%w: derivative order %d in dimension %d, want 0..%d", ErrUnsupportedDimension, r, d+1, MaxDeriv)
		}
		code += r * pow
		pow *= 10
	}
	return code, nil
}

// DecodeDeriv splits a derivative code into parDim per-dimension orders by
// repeated division by ten. Digits beyond parDim must be zero.
func DecodeDeriv(code, parDim int) ([]int, error) {
	if parDim < 0 || parDim > MaxParDim {
		return nil, fmt.Errorf("%w: parametric dimension %d, want 0..%d", ErrUnsupportedDimension, parDim, MaxParDim)
	}
	if code < 0 {
		return nil, fmt.Errorf("%w: negative derivative code %d", ErrUnsupportedDimension, code)
	}
	orders := make([]int, parDim)
	for d := 0; d < parDim; d++ {
		r := code % 10
		if r > MaxDeriv {
			return nil, fmt.Errorf("%w: derivative order %d in dimension %d, want 0..%d", ErrUnsupportedDimension, r, d+1, MaxDeriv)
		}
		orders[d] = r
		code /= 10
	}
	if code != 0 {
		return nil, fmt.Errorf("%w: derivative code addresses more than %d dimensions", ErrUnsupportedDimension, parDim)
	}
	return orders, nil
}
