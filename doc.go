// Package splinego evaluates multivariate tensor-product B-splines and
// their partial derivatives over the unit parametric domain, and manages
// the control-point data defining them.
//
// A BSpline maps parDim coordinates in [0,1] to geoDim output components.
// Parametric dimensions 0 through 4 are supported; each dimension carries
// its own degree and knot vector, either open-uniform (generated) or
// explicit (non-uniform).
//
// # Quick start
//
//	b, err := splinego.Uniform(2, 2).GeoDim(2).NCoeffs(5, 5).
//	    Init(coeffs.Greville).Build()
//	if err != nil {
//	    panic(err)
//	}
//	v, _ := b.Eval([]float64{0.3, 0.7})       // function value
//	g, _ := b.EvalDeriv([]float64{0.3, 0.7}, 11) // d2/dxi1 dxi2
//
// Derivative requests are encoded as one integer whose decimal digits
// give the order per dimension: ones digit for dimension 1, tens for
// dimension 2, and so on (11 above requests the first mixed derivative).
//
// # Persistence
//
// Models serialize through a codec (JSON by default) into a checksummed,
// optionally compressed snapshot, and can be pushed to any
// blobstore.Store backend:
//
//	err = b.SaveTo(ctx, store, "plate-with-hole")
//	b2, err := splinego.LoadFrom(ctx, store, "plate-with-hole")
//
// # Concurrency
//
// Evaluation is read-only and safe to call concurrently. Transform and
// Refine mutate the control net and must not overlap any other call on
// the same instance.
package splinego
