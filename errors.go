package splinego

import (
	"errors"

	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
	"github.com/hupe1980/splinego/tensor"
)

// Error taxonomy. Every error is detected eagerly at the boundary of the
// operation that would violate it (construction or deserialization) and
// surfaced immediately; nothing is retried or downgraded to a default.
var (
	// ErrInvalidConfiguration: a knot vector cannot be built from the
	// given degree/coefficient-count combination.
	ErrInvalidConfiguration = knots.ErrInvalidConfiguration

	// ErrUnsupportedDimension: parametric dimension outside {0,1,2,3,4},
	// or a derivative digit outside 0..4.
	ErrUnsupportedDimension = tensor.ErrUnsupportedDimension

	// ErrUnsupportedInit: unknown coefficient-initialization policy.
	ErrUnsupportedInit = coeffs.ErrUnsupportedInit

	// ErrFormatMismatch: a deserialized model's parDim, geoDim or degrees
	// do not match the target spline. Raised before any knot or
	// coefficient data is adopted.
	ErrFormatMismatch = errors.New("splinego: model shape mismatch")
)
