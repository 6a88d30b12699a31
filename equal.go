package splinego

import "math"

// Equal reports exact equality: same parametric and geometric dimensions,
// same degrees, knot counts and coefficient counts, and bitwise-equal
// knot and coefficient values. Use it for round-trip checks.
func (b *BSpline) Equal(o *BSpline) bool {
	if !b.sameShape(o) {
		return false
	}
	for d := range b.kvs {
		if !b.kvs[d].Equal(o.kvs[d]) {
			return false
		}
	}
	for c := 0; c < b.geoDim; c++ {
		x, y := b.store.Component(c), o.store.Component(c)
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
	}
	return true
}

// AlmostEqual reports equality up to an absolute tolerance on knot and
// coefficient values, with the same shape requirements as Equal. Use it
// when comparing numerically equivalent but not bit-identical
// representations, e.g. models that went through refinement on different
// paths.
func (b *BSpline) AlmostEqual(o *BSpline, tol float64) bool {
	if !b.sameShape(o) {
		return false
	}
	for d := range b.kvs {
		for i := 0; i < b.kvs[d].Len(); i++ {
			if math.Abs(b.kvs[d].At(i)-o.kvs[d].At(i)) > tol {
				return false
			}
		}
	}
	for c := 0; c < b.geoDim; c++ {
		x, y := b.store.Component(c), o.store.Component(c)
		for i := range x {
			if math.Abs(x[i]-y[i]) > tol {
				return false
			}
		}
	}
	return true
}

func (b *BSpline) sameShape(o *BSpline) bool {
	if o == nil || b.ParDim() != o.ParDim() || b.geoDim != o.geoDim {
		return false
	}
	for d := range b.kvs {
		if b.Degree(d) != o.Degree(d) || b.NKnots(d) != o.NKnots(d) || b.NCoeffs(d) != o.NCoeffs(d) {
			return false
		}
	}
	return true
}
