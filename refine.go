package splinego

import (
	"fmt"
	"sort"

	"github.com/hupe1980/splinego/knots"
)

// Refine applies `levels` rounds of uniform h-refinement to parametric
// dimension dim. Each round inserts the midpoint of every nonempty knot
// span, roughly doubling the coefficient count in that dimension while
// leaving the mapped geometry unchanged. The refined dimension becomes
// non-uniform and uses the binary-search span locator afterwards.
//
// Refinement is a phase boundary like Transform: it must not overlap
// evaluation on the same instance.
func (b *BSpline) Refine(dim, levels int) error {
	if dim < 0 || dim >= b.ParDim() {
		return fmt.Errorf("%w: refine dimension %d, spline has parametric dimension %d",
			ErrInvalidConfiguration, dim, b.ParDim())
	}
	if levels < 0 {
		return fmt.Errorf("%w: refine levels %d, want >= 0", ErrInvalidConfiguration, levels)
	}

	for l := 0; l < levels; l++ {
		if err := b.refineOnce(dim); err != nil {
			return err
		}
	}
	b.opts.logger.WithShape(b.ParDim(), b.geoDim).Debug("spline refined",
		"dim", dim, "levels", levels, "ncoeffs", b.store.NCoeffsTotal())
	return nil
}

// refineOnce inserts the midpoints of all nonempty spans of dimension dim.
func (b *BSpline) refineOnce(dim int) error {
	kv := b.kvs[dim]
	p := kv.Degree()

	mids := make([]float64, 0, kv.NCoeffs()-p)
	for i := p; i < kv.NCoeffs(); i++ {
		if kv.At(i+1) > kv.At(i) {
			mids = append(mids, 0.5*(kv.At(i)+kv.At(i+1)))
		}
	}
	sort.Float64s(mids)

	values := append([]float64(nil), kv.Values()...)
	data := make([][]float64, b.geoDim)
	for c := range data {
		data[c] = b.store.Component(c)
	}

	shape := append([]int(nil), b.store.Shape()...)
	for _, u := range mids {
		values = insertKnot(values, p, u, dim, shape, data)
		shape[dim]++
	}

	refined, err := knots.FromValues(values, p)
	if err != nil {
		return err
	}
	b.kvs[dim] = refined
	b.store.Replace(shape, data)
	return nil
}

// insertKnot performs a single Boehm knot insertion of u into the knot
// values of dimension dim, rewriting every coefficient line of data along
// that dimension in place (each data[c] grows by one line worth of
// entries). shape is the coefficient shape before insertion; the returned
// slice is the grown knot vector.
func insertKnot(values []float64, p int, u float64, dim int, shape []int, data [][]float64) []float64 {
	// Largest k with values[k] <= u; u is interior so no clamping needed.
	k := sort.SearchFloat64s(values, u) - 1
	for k+1 < len(values) && values[k+1] == u {
		k++
	}

	n := shape[dim]
	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	line := make([]float64, n)
	grown := make([]float64, n+1)
	for c := range data {
		dst := make([]float64, outer*(n+1)*inner)
		for o := 0; o < outer; o++ {
			for in := 0; in < inner; in++ {
				base := o * n * inner
				for i := 0; i < n; i++ {
					line[i] = data[c][base+i*inner+in]
				}

				for i := 0; i <= n; i++ {
					switch {
					case i <= k-p:
						grown[i] = line[i]
					case i > k:
						grown[i] = line[i-1]
					default:
						alpha := (u - values[i]) / (values[i+p] - values[i])
						grown[i] = alpha*line[i] + (1-alpha)*line[i-1]
					}
				}

				nbase := o * (n + 1) * inner
				for i := 0; i <= n; i++ {
					dst[nbase+i*inner+in] = grown[i]
				}
			}
		}
		data[c] = dst
	}

	values = append(values, 0)
	copy(values[k+2:], values[k+1:])
	values[k+1] = u
	return values
}
