package splinego

import (
	"fmt"

	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
)

// Model is the serialized form of a BSpline. Field order is the wire
// order: shape fields first so readers can fail fast on a mismatched
// target before touching knot or coefficient data.
type Model struct {
	ParDim  int         `json:"parDim"`
	GeoDim  int         `json:"geoDim"`
	Degrees []int       `json:"degrees"`
	NKnots  []int       `json:"nknots"`
	Knots   [][]float64 `json:"knots"`
	NCoeffs []int       `json:"ncoeffs"`
	Coeffs  [][]float64 `json:"coeffs"`
	Uniform bool        `json:"uniform"`
}

// Model captures the spline's full state.
func (b *BSpline) Model() *Model {
	parDim := b.ParDim()
	m := &Model{
		ParDim:  parDim,
		GeoDim:  b.geoDim,
		Degrees: make([]int, parDim),
		NKnots:  make([]int, parDim),
		Knots:   make([][]float64, parDim),
		NCoeffs: make([]int, parDim),
		Coeffs:  make([][]float64, b.geoDim),
		Uniform: true,
	}
	for d, kv := range b.kvs {
		m.Degrees[d] = kv.Degree()
		m.NKnots[d] = kv.Len()
		m.Knots[d] = append([]float64(nil), kv.Values()...)
		m.NCoeffs[d] = kv.NCoeffs()
		m.Uniform = m.Uniform && kv.Uniform()
	}
	for c := 0; c < b.geoDim; c++ {
		m.Coeffs[c] = append([]float64(nil), b.store.Component(c)...)
	}
	return m
}

// ApplyModel replaces the spline's knots and coefficients with the
// model's. The model's parDim, geoDim and degrees must match the
// receiver; any discrepancy fails with ErrFormatMismatch before knot or
// coefficient data is adopted. Knot and coefficient counts may differ
// (e.g. a refined model loading into a coarser sibling).
func (b *BSpline) ApplyModel(m *Model) error {
	if m.ParDim != b.ParDim() {
		return fmt.Errorf("%w: parDim %d, target has %d", ErrFormatMismatch, m.ParDim, b.ParDim())
	}
	if m.GeoDim != b.geoDim {
		return fmt.Errorf("%w: geoDim %d, target has %d", ErrFormatMismatch, m.GeoDim, b.geoDim)
	}
	if len(m.Degrees) != m.ParDim {
		return fmt.Errorf("%w: %d degrees for parDim %d", ErrFormatMismatch, len(m.Degrees), m.ParDim)
	}
	for d, p := range m.Degrees {
		if p != b.Degree(d) {
			return fmt.Errorf("%w: degree %d in dimension %d, target has %d", ErrFormatMismatch, p, d, b.Degree(d))
		}
	}

	kvs, data, err := m.build()
	if err != nil {
		return err
	}

	ncoeffs := make([]int, m.ParDim)
	for d := range kvs {
		ncoeffs[d] = kvs[d].NCoeffs()
	}
	b.kvs = kvs
	b.store.Replace(ncoeffs, data)
	return nil
}

// NewFromModel constructs a fresh BSpline from a model.
func NewFromModel(m *Model, opts ...Option) (*BSpline, error) {
	if m.ParDim < 0 || m.ParDim > 4 {
		return nil, fmt.Errorf("%w: parametric dimension %d", ErrUnsupportedDimension, m.ParDim)
	}
	if len(m.Degrees) != m.ParDim {
		return nil, fmt.Errorf("%w: %d degrees for parDim %d", ErrFormatMismatch, len(m.Degrees), m.ParDim)
	}

	kvs, data, err := m.build()
	if err != nil {
		return nil, err
	}

	b, err := NewNonUniform(m.GeoDim, kvs, coeffs.Zeros, opts...)
	if err != nil {
		return nil, err
	}
	ncoeffs := make([]int, m.ParDim)
	for d := range kvs {
		ncoeffs[d] = kvs[d].NCoeffs()
	}
	b.store.Replace(ncoeffs, data)
	return b, nil
}

// build validates the model's internal consistency and materializes knot
// vectors and coefficient arrays. Shape checks against a target are the
// caller's and happen first.
func (m *Model) build() ([]knots.KnotVector, [][]float64, error) {
	if len(m.NKnots) != m.ParDim || len(m.Knots) != m.ParDim || len(m.NCoeffs) != m.ParDim {
		return nil, nil, fmt.Errorf("%w: knot arrays do not match parDim %d", ErrFormatMismatch, m.ParDim)
	}
	if len(m.Coeffs) != m.GeoDim {
		return nil, nil, fmt.Errorf("%w: %d coefficient components for geoDim %d", ErrFormatMismatch, len(m.Coeffs), m.GeoDim)
	}

	kvs := make([]knots.KnotVector, m.ParDim)
	total := 1
	for d := 0; d < m.ParDim; d++ {
		if len(m.Knots[d]) != m.NKnots[d] {
			return nil, nil, fmt.Errorf("%w: dimension %d has %d knots, header says %d",
				ErrFormatMismatch, d, len(m.Knots[d]), m.NKnots[d])
		}
		var (
			kv  knots.KnotVector
			err error
		)
		if m.Uniform {
			// Uniform vectors are regenerated so the closed-form span
			// locator stays active; the stored values double as a
			// consistency check.
			kv, err = knots.NewOpenUniform(m.NCoeffs[d], m.Degrees[d])
			if err == nil {
				if kv.Len() != len(m.Knots[d]) {
					return nil, nil, fmt.Errorf("%w: dimension %d has %d knots, open-uniform layout needs %d",
						ErrFormatMismatch, d, len(m.Knots[d]), kv.Len())
				}
				for i, v := range kv.Values() {
					if m.Knots[d][i] != v {
						return nil, nil, fmt.Errorf("%w: dimension %d knots are not open-uniform",
							ErrFormatMismatch, d)
					}
				}
			}
		} else {
			kv, err = knots.FromValues(m.Knots[d], m.Degrees[d])
		}
		if err != nil {
			return nil, nil, err
		}
		if kv.NCoeffs() != m.NCoeffs[d] {
			return nil, nil, fmt.Errorf("%w: dimension %d has %d coefficients, header says %d",
				ErrFormatMismatch, d, kv.NCoeffs(), m.NCoeffs[d])
		}
		kvs[d] = kv
		total *= m.NCoeffs[d]
	}

	data := make([][]float64, m.GeoDim)
	for c := range data {
		if len(m.Coeffs[c]) != total {
			return nil, nil, fmt.Errorf("%w: component %d has %d coefficients, want %d",
				ErrFormatMismatch, c, len(m.Coeffs[c]), total)
		}
		data[c] = append([]float64(nil), m.Coeffs[c]...)
	}
	return kvs, data, nil
}
