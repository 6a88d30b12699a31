package knots

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfiguration is returned when a knot vector cannot be built
// from the given degree/coefficient-count combination.
//
// Wrapped errors carry the offending values; test with errors.Is.
var ErrInvalidConfiguration = errors.New("knots: invalid configuration")

// KnotVector is a non-decreasing sequence of parameter values in [0,1]
// with an associated degree. It is immutable: mutation happens only by
// constructing a replacement vector.
type KnotVector struct {
	degree  int
	values  []float64
	uniform bool
}

// NewOpenUniform builds an open knot vector for ncoeffs basis functions of
// the given degree: degree copies of 0, then ncoeffs-degree+1 equally
// spaced values from 0 to 1, then degree copies of 1.
//
// Fails with ErrInvalidConfiguration when degree > ncoeffs+1, i.e. when
// there are too few coefficients to form a valid open vector. The boundary
// shapes remain constructible: ncoeffs == degree-1 has no middle block at
// all, ncoeffs == degree carries the single middle value 0.
func NewOpenUniform(ncoeffs, degree int) (KnotVector, error) {
	if degree < 0 {
		return KnotVector{}, fmt.Errorf("%w: negative degree %d", ErrInvalidConfiguration, degree)
	}
	if ncoeffs < 0 {
		return KnotVector{}, fmt.Errorf("%w: negative coefficient count %d", ErrInvalidConfiguration, ncoeffs)
	}
	if degree > ncoeffs+1 {
		return KnotVector{}, fmt.Errorf("%w: %d coefficients cannot carry an open degree-%d vector (need at least %d)",
			ErrInvalidConfiguration, ncoeffs, degree, degree-1)
	}

	values := make([]float64, 0, ncoeffs+degree+1)
	for i := 0; i < degree; i++ {
		values = append(values, 0)
	}
	// One-point linspace convention: a single middle value sits at 0.
	switch spans := ncoeffs - degree; {
	case spans > 0:
		for i := 0; i <= spans; i++ {
			values = append(values, float64(i)/float64(spans))
		}
	case spans == 0:
		values = append(values, 0)
	}
	for i := 0; i < degree; i++ {
		values = append(values, 1)
	}

	return KnotVector{degree: degree, values: values, uniform: true}, nil
}

// FromValues builds a knot vector from an explicit non-decreasing sequence
// in [0,1]. The coefficient count is derived as len(values)-degree-1.
//
// Fails with ErrInvalidConfiguration when the sequence is shorter than
// 2*(degree+1), not sorted, or leaves the unit interval.
func FromValues(values []float64, degree int) (KnotVector, error) {
	if degree < 0 {
		return KnotVector{}, fmt.Errorf("%w: negative degree %d", ErrInvalidConfiguration, degree)
	}
	if len(values) < 2*(degree+1) {
		return KnotVector{}, fmt.Errorf("%w: %d knots cannot carry a degree-%d vector (need at least %d)",
			ErrInvalidConfiguration, len(values), degree, 2*(degree+1))
	}
	if !slices.IsSorted(values) {
		return KnotVector{}, fmt.Errorf("%w: knot sequence must be non-decreasing", ErrInvalidConfiguration)
	}
	if values[0] < 0 || values[len(values)-1] > 1 {
		return KnotVector{}, fmt.Errorf("%w: knots must lie in [0,1], got [%g,%g]",
			ErrInvalidConfiguration, values[0], values[len(values)-1])
	}

	return KnotVector{degree: degree, values: slices.Clone(values)}, nil
}

// Degree returns the polynomial degree.
func (kv KnotVector) Degree() int { return kv.degree }

// Len returns the number of knots.
func (kv KnotVector) Len() int { return len(kv.values) }

// NCoeffs returns the number of basis functions the vector supports.
func (kv KnotVector) NCoeffs() int { return len(kv.values) - kv.degree - 1 }

// At returns the i-th knot value.
func (kv KnotVector) At(i int) float64 { return kv.values[i] }

// Values returns the knot sequence. The returned slice is shared and must
// be treated as read-only.
func (kv KnotVector) Values() []float64 { return kv.values }

// Uniform reports whether the vector was built open-uniform, enabling the
// closed-form span locator.
func (kv KnotVector) Uniform() bool { return kv.uniform }

// Equal reports exact equality of degree and every knot value.
func (kv KnotVector) Equal(o KnotVector) bool {
	return kv.degree == o.degree && slices.Equal(kv.values, o.values)
}

// Greville returns the Greville abscissa for every basis function:
// (t[k+1] + ... + t[k+p]) / p. For degree 0, where the averaging formula
// is undefined, it returns the knot-interval midpoints.
func (kv KnotVector) Greville() []float64 {
	n := kv.NCoeffs()
	out := make([]float64, n)

	if kv.degree == 0 {
		for k := 0; k < n; k++ {
			out[k] = (kv.values[k] + kv.values[k+1]) / 2
		}
		return out
	}

	for k := 0; k < n; k++ {
		var sum float64
		for j := 1; j <= kv.degree; j++ {
			sum += kv.values[k+j]
		}
		out[k] = sum / float64(kv.degree)
	}
	return out
}
