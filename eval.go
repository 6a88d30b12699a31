package splinego

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/splinego/basis"
	"github.com/hupe1980/splinego/tensor"
)

// Eval evaluates the spline at the parametric point xi (len(xi) must be
// parDim) and returns one value per geometric component.
func (b *BSpline) Eval(xi []float64) ([]float64, error) {
	return b.EvalDeriv(xi, 0)
}

// EvalDeriv evaluates the partial derivative selected by code at xi.
// Each decimal digit of code requests a derivative order (0..4) in the
// corresponding parametric dimension: ones digit for dimension 1, tens
// for dimension 2, and so on. Orders above a dimension's degree yield
// zero, not an error.
func (b *BSpline) EvalDeriv(xi []float64, code int) ([]float64, error) {
	orders, err := tensor.DecodeDeriv(code, b.ParDim())
	if err != nil {
		return nil, err
	}
	if len(xi) != b.ParDim() {
		return nil, fmt.Errorf("%w: point has %d coordinates, spline has parametric dimension %d",
			ErrInvalidConfiguration, len(xi), b.ParDim())
	}
	return b.evalPoint(xi, orders), nil
}

// evalPoint runs the SpanLocator -> BasisRecursion -> tensor-contract
// pipeline for one validated point.
func (b *BSpline) evalPoint(xi []float64, orders []int) []float64 {
	parDim := b.ParDim()

	// The 0-dimensional spline is a point: its value is the coefficient
	// tuple itself.
	if parDim == 0 {
		out := make([]float64, b.geoDim)
		for c := range out {
			out[c] = b.store.Component(c)[0]
		}
		return out
	}

	spans := make([]int, parDim)
	degrees := make([]int, parDim)
	vecs := make([][]float64, parDim)
	for d, kv := range b.kvs {
		spans[d] = kv.Span(xi[d])
		degrees[d] = kv.Degree()
		vecs[d] = basis.Evaluate(kv, orders[d], spans[d], xi[d])
	}

	bt := tensor.Outer(vecs...)
	idx := tensor.SliceIndices(spans, degrees, b.store.Shape())

	out := make([]float64, b.geoDim)
	for c := range out {
		out[c] = tensor.Contract(bt, b.store.Component(c), idx)
	}
	return out
}

// EvalBatch evaluates the spline at every point of xis and returns one
// row per point. Rows are computed in parallel over disjoint chunks; the
// per-point arithmetic is exactly the scalar path, so the result equals
// looping Eval.
func (b *BSpline) EvalBatch(xis [][]float64) ([][]float64, error) {
	return b.EvalDerivBatch(xis, 0)
}

// EvalDerivBatch is the batched form of EvalDeriv.
func (b *BSpline) EvalDerivBatch(xis [][]float64, code int) ([][]float64, error) {
	orders, err := tensor.DecodeDeriv(code, b.ParDim())
	if err != nil {
		return nil, err
	}
	for i, xi := range xis {
		if len(xi) != b.ParDim() {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, spline has parametric dimension %d",
				ErrInvalidConfiguration, i, len(xi), b.ParDim())
		}
	}

	out := make([][]float64, len(xis))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(xis) {
		workers = len(xis)
	}
	if workers <= 1 {
		for i, xi := range xis {
			out[i] = b.evalPoint(xi, orders)
		}
		return out, nil
	}

	var g errgroup.Group
	chunk := (len(xis) + workers - 1) / workers
	for lo := 0; lo < len(xis); lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > len(xis) {
			hi = len(xis)
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = b.evalPoint(xis[i], orders)
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}
