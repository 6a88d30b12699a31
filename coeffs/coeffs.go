package coeffs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hupe1980/splinego/knots"
)

// ErrUnsupportedInit is returned for an unknown initialization policy.
var ErrUnsupportedInit = errors.New("coeffs: unsupported init policy")

// Init selects the control-point initialization policy.
type Init int

const (
	// Zeros fills every component with 0.
	Zeros Init = iota
	// Ones fills every component with 1.
	Ones
	// Linear tensors per-dimension linspace(0,1) grids: component d varies
	// linearly along parametric dimension d, producing an identity-like
	// parametrization.
	Linear
	// Random fills every component with uniform samples in [0,1).
	Random
	// Greville places component d at the Greville abscissae of dimension
	// d, the canonical interpolation-friendly control net.
	Greville
)

// String returns the policy name as used in logs and snapshot metadata.
func (i Init) String() string {
	switch i {
	case Zeros:
		return "zeros"
	case Ones:
		return "ones"
	case Linear:
		return "linear"
	case Random:
		return "random"
	case Greville:
		return "greville"
	default:
		return fmt.Sprintf("init(%d)", int(i))
	}
}

// Store holds geoDim flat component arrays over the tensor-product
// coefficient grid spanned by the given knot vectors.
type Store struct {
	geoDim  int
	ncoeffs []int
	total   int
	data    [][]float64
}

// New builds a Store for the coefficient grid of kvs, filled according to
// init. rng seeds the Random policy; nil falls back to the shared global
// source. An unknown policy fails with ErrUnsupportedInit.
func New(geoDim int, kvs []knots.KnotVector, init Init, rng *rand.Rand) (*Store, error) {
	ncoeffs := make([]int, len(kvs))
	total := 1
	for d, kv := range kvs {
		ncoeffs[d] = kv.NCoeffs()
		total *= ncoeffs[d]
	}

	s := &Store{
		geoDim:  geoDim,
		ncoeffs: ncoeffs,
		total:   total,
		data:    make([][]float64, geoDim),
	}

	switch init {
	case Zeros:
		for c := range s.data {
			s.data[c] = make([]float64, total)
		}

	case Ones:
		for c := range s.data {
			s.data[c] = constant(total, 1)
		}

	case Linear:
		for c := range s.data {
			s.data[c] = axisProfile(c, kvs, linspace01)
		}

	case Random:
		float64n := rand.Float64
		if rng != nil {
			float64n = rng.Float64
		}
		for c := range s.data {
			s.data[c] = make([]float64, total)
			for i := range s.data[c] {
				s.data[c][i] = float64n()
			}
		}

	case Greville:
		for c := range s.data {
			s.data[c] = axisProfile(c, kvs, knots.KnotVector.Greville)
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedInit, init)
	}

	return s, nil
}

// axisProfile tensors per-dimension factor vectors: dimension comp gets
// its profile from profile(kv), every other dimension contributes the
// all-ones factor. Components beyond the parametric dimension come out
// all-ones. This is the kron construction shared by Linear and Greville.
func axisProfile(comp int, kvs []knots.KnotVector, profile func(knots.KnotVector) []float64) []float64 {
	out := []float64{1}
	for d, kv := range kvs {
		var factor []float64
		if d == comp {
			factor = profile(kv)
		} else {
			factor = constant(kv.NCoeffs(), 1)
		}
		next := make([]float64, len(out)*len(factor))
		for i, a := range out {
			base := i * len(factor)
			for j, b := range factor {
				next[base+j] = a * b
			}
		}
		out = next
	}
	return out
}

func linspace01(kv knots.KnotVector) []float64 {
	n := kv.NCoeffs()
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// GeoDim returns the number of geometric components.
func (s *Store) GeoDim() int { return s.geoDim }

// ParDim returns the number of parametric dimensions of the grid.
func (s *Store) ParDim() int { return len(s.ncoeffs) }

// NCoeffs returns the coefficient count along parametric dimension d.
func (s *Store) NCoeffs(d int) int { return s.ncoeffs[d] }

// NCoeffsTotal returns the total coefficient count per component.
func (s *Store) NCoeffsTotal() int { return s.total }

// Shape returns the per-dimension coefficient counts. The returned slice
// is shared and must be treated as read-only.
func (s *Store) Shape() []int { return s.ncoeffs }

// Component returns the flat array of component c. The slice aliases the
// store; writes through it are direct mutation.
func (s *Store) Component(c int) []float64 { return s.data[c] }

// FlatIndex converts a per-dimension multi-index into the flat offset,
// last dimension fastest.
func (s *Store) FlatIndex(idx []int) int {
	flat := 0
	for d, i := range idx {
		flat = flat*s.ncoeffs[d] + i
	}
	return flat
}

// At returns component c at the given multi-index.
func (s *Store) At(c int, idx []int) float64 { return s.data[c][s.FlatIndex(idx)] }

// Set overwrites component c at the given multi-index.
func (s *Store) Set(c int, idx []int, v float64) { s.data[c][s.FlatIndex(idx)] = v }

// Replace swaps in entirely new component arrays, e.g. after refinement
// or deserialization. Every component must have the given shape.
func (s *Store) Replace(ncoeffs []int, data [][]float64) {
	total := 1
	for _, n := range ncoeffs {
		total *= n
	}
	s.ncoeffs = ncoeffs
	s.total = total
	s.data = data
}
