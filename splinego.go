package splinego

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
	"github.com/hupe1980/splinego/tensor"
)

// BSpline is a tensor-product B-spline mapping parDim parametric
// coordinates in [0,1] to geoDim output components. It owns one knot
// vector per parametric dimension and one flat coefficient array per
// geometric component.
type BSpline struct {
	geoDim int
	kvs    []knots.KnotVector
	store  *coeffs.Store
	opts   options
}

// New constructs a uniform BSpline: per-dimension open-uniform knot
// vectors generated from degrees and ncoeffs (which must have equal
// length, the parametric dimension), coefficients filled per init.
//
// len(degrees) > 4 fails with ErrUnsupportedDimension; any dimension with
// degree > ncoeffs+1 fails with ErrInvalidConfiguration. An empty degrees
// slice builds a 0-dimensional point spline.
func New(geoDim int, degrees, ncoeffs []int, init coeffs.Init, opts ...Option) (*BSpline, error) {
	if len(degrees) != len(ncoeffs) {
		return nil, fmt.Errorf("%w: %d degrees but %d coefficient counts",
			ErrInvalidConfiguration, len(degrees), len(ncoeffs))
	}

	kvs := make([]knots.KnotVector, len(degrees))
	for d := range degrees {
		kv, err := knots.NewOpenUniform(ncoeffs[d], degrees[d])
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		kvs[d] = kv
	}
	return assemble(geoDim, kvs, init, opts)
}

// NewNonUniform constructs a BSpline over explicit knot vectors, one per
// parametric dimension. Coefficient counts derive from the vectors.
func NewNonUniform(geoDim int, kvs []knots.KnotVector, init coeffs.Init, opts ...Option) (*BSpline, error) {
	cloned := make([]knots.KnotVector, len(kvs))
	copy(cloned, kvs)
	return assemble(geoDim, cloned, init, opts)
}

func assemble(geoDim int, kvs []knots.KnotVector, init coeffs.Init, opts []Option) (*BSpline, error) {
	if len(kvs) > tensor.MaxParDim {
		return nil, fmt.Errorf("%w: parametric dimension %d, want 0..%d",
			ErrUnsupportedDimension, len(kvs), tensor.MaxParDim)
	}
	if geoDim < 1 {
		return nil, fmt.Errorf("%w: geometric dimension %d, want >= 1",
			ErrInvalidConfiguration, geoDim)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := coeffs.New(geoDim, kvs, init, o.rng)
	if err != nil {
		return nil, err
	}

	b := &BSpline{geoDim: geoDim, kvs: kvs, store: store, opts: o}
	b.opts.logger.WithShape(b.ParDim(), geoDim).Debug("spline constructed",
		"init", init.String(), "ncoeffs", store.NCoeffsTotal())
	return b, nil
}

// ParDim returns the parametric dimension.
func (b *BSpline) ParDim() int { return len(b.kvs) }

// GeoDim returns the geometric dimension.
func (b *BSpline) GeoDim() int { return b.geoDim }

// Degree returns the degree in parametric dimension d.
func (b *BSpline) Degree(d int) int { return b.kvs[d].Degree() }

// Knots returns the knot vector of parametric dimension d.
func (b *BSpline) Knots(d int) knots.KnotVector { return b.kvs[d] }

// NKnots returns the knot count in parametric dimension d.
func (b *BSpline) NKnots(d int) int { return b.kvs[d].Len() }

// NCoeffs returns the coefficient count in parametric dimension d.
func (b *BSpline) NCoeffs(d int) int { return b.store.NCoeffs(d) }

// NCoeffsTotal returns the total coefficient count per component.
func (b *BSpline) NCoeffsTotal() int { return b.store.NCoeffsTotal() }

// Coeffs returns the flat coefficient array of geometric component c.
// The slice aliases the spline's storage: writes are direct mutation and
// must not overlap concurrent evaluation. The rational extension reads
// its weight component through this accessor.
func (b *BSpline) Coeffs(c int) []float64 { return b.store.Component(c) }

// Store returns the underlying coefficient store.
func (b *BSpline) Store() *coeffs.Store { return b.store }

// Transform overwrites every control point with f evaluated at the
// point's relative grid position, in parallel over disjoint index ranges.
// f must return geoDim values. The call is a phase boundary: it must not
// overlap evaluation on the same instance. Returns the receiver for
// chaining.
func (b *BSpline) Transform(f func(pos []float64) []float64) *BSpline {
	b.store.Transform(f)
	return b
}

// Greville returns the tensor grid of Greville abscissae, one parametric
// point per control point, in the coefficient ordering (last dimension
// fastest). These are the canonical collocation points.
func (b *BSpline) Greville() [][]float64 {
	parDim := b.ParDim()
	if parDim == 0 {
		return [][]float64{{}}
	}

	perDim := make([][]float64, parDim)
	total := 1
	for d, kv := range b.kvs {
		perDim[d] = kv.Greville()
		total *= len(perDim[d])
	}

	out := make([][]float64, total)
	idx := make([]int, parDim)
	for i := range out {
		pt := make([]float64, parDim)
		for d := range pt {
			pt[d] = perDim[d][idx[d]]
		}
		out[i] = pt

		for d := parDim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < len(perDim[d]) {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

// String summarizes the spline shape, e.g.
// "BSpline(parDim=2, geoDim=1, degrees=3x4, knots=10x12, coeffs=6x7)".
func (b *BSpline) String() string {
	degrees := make([]int, b.ParDim())
	nknots := make([]int, b.ParDim())
	ncoeffs := make([]int, b.ParDim())
	for d := range b.kvs {
		degrees[d] = b.Degree(d)
		nknots[d] = b.NKnots(d)
		ncoeffs[d] = b.NCoeffs(d)
	}
	return fmt.Sprintf("BSpline(parDim=%d, geoDim=%d, degrees=%s, knots=%s, coeffs=%s)",
		b.ParDim(), b.geoDim, joinInts(degrees), joinInts(nknots), joinInts(ncoeffs))
}

func joinInts(vs []int) string {
	if len(vs) == 0 {
		return "-"
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "x")
}
