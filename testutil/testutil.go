package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Rand returns a fresh unsynchronized source with the same seed, for
// APIs that take *rand.Rand directly.
func (r *RNG) Rand() *rand.Rand {
	return rand.New(rand.NewSource(r.seed))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}

// UniformPoints generates num parametric points in [0,1)^parDim.
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, parDim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*parDim)
	pts := make([][]float64, num)

	for i := 0; i < num; i++ {
		pt := data[i*parDim : (i+1)*parDim]
		for j := range pt {
			pt[j] = r.rand.Float64()
		}
		pts[i] = pt
	}

	return pts
}

// GridPoints generates the tensor grid of n equally spaced coordinates
// per dimension, endpoints included. n must be >= 2.
func GridPoints(n, parDim int) [][]float64 {
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i) / float64(n-1)
	}

	total := 1
	for d := 0; d < parDim; d++ {
		total *= n
	}

	out := make([][]float64, total)
	idx := make([]int, parDim)
	for i := range out {
		pt := make([]float64, parDim)
		for d := range pt {
			pt[d] = axis[idx[d]]
		}
		out[i] = pt

		for d := parDim - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < n {
				break
			}
			idx[d] = 0
		}
	}
	return out
}

// NaiveBasis evaluates the i-th B-spline basis function of the given
// degree at xi by the textbook Cox-de Boor recursion, with the standard
// 0/0 := 0 convention and half-open spans (closed at the right end of
// the domain). Slow but independent of the production code path.
func NaiveBasis(knots []float64, degree, i int, xi float64) float64 {
	if degree == 0 {
		if knots[i] <= xi && xi < knots[i+1] {
			return 1
		}
		// Right end of the domain belongs to the last nonempty span.
		if xi == knots[len(knots)-1] && knots[i] < knots[i+1] && knots[i+1] == xi {
			return 1
		}
		return 0
	}

	var left, right float64
	if d := knots[i+degree] - knots[i]; d > 0 {
		left = (xi - knots[i]) / d * NaiveBasis(knots, degree-1, i, xi)
	}
	if d := knots[i+degree+1] - knots[i+1]; d > 0 {
		right = (knots[i+degree+1] - xi) / d * NaiveBasis(knots, degree-1, i+1, xi)
	}
	return left + right
}

// NaiveCurve evaluates a one-dimensional spline with the given flat
// coefficients at xi by summing NaiveBasis over all control points.
func NaiveCurve(knots []float64, degree int, coeffs []float64, xi float64) float64 {
	var sum float64
	for i, c := range coeffs {
		sum += c * NaiveBasis(knots, degree, i, xi)
	}
	return sum
}
