// Package splinego provides tensor-product B-spline construction,
// evaluation and persistence.
//
// This file implements the fluent builder APIs for creating configured
// BSpline instances. Builders are immutable - each method returns a new
// builder with the updated configuration.
package splinego

import (
	"math/rand"

	"github.com/hupe1980/splinego/codec"
	"github.com/hupe1980/splinego/coeffs"
	"github.com/hupe1980/splinego/knots"
	"github.com/hupe1980/splinego/persistence"
)

// Uniform creates a builder for a spline over open-uniform knot vectors
// with the given per-dimension degrees. len(degrees) is the parametric
// dimension; an empty call builds a 0-dimensional point spline.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	surface, err := splinego.Uniform(3, 3).
//	    GeoDim(2).
//	    NCoeffs(8, 8).
//	    Init(coeffs.Greville).
//	    Build()
func Uniform(degrees ...int) UniformBuilder {
	ncoeffs := make([]int, len(degrees))
	for d, p := range degrees {
		ncoeffs[d] = p + 1
	}
	return UniformBuilder{
		geoDim:  1,
		degrees: degrees,
		ncoeffs: ncoeffs,
		init:    coeffs.Zeros,
	}
}

// UniformBuilder is an immutable fluent builder for open-uniform BSpline
// instances. Each method returns a new builder with the updated
// configuration.
type UniformBuilder struct {
	geoDim      int
	degrees     []int
	ncoeffs     []int
	init        coeffs.Init
	seed        *int64
	logger      *Logger
	codec       codec.Codec
	compression *persistence.Compression
}

// GeoDim sets the geometric (output) dimension. Default: 1.
func (b UniformBuilder) GeoDim(n int) UniformBuilder {
	b.geoDim = n
	return b
}

// NCoeffs sets the per-dimension coefficient counts. Each count must be
// at least degree-1 in its dimension. Default: degree+1 everywhere, the
// Bezier-like layout.
func (b UniformBuilder) NCoeffs(ncoeffs ...int) UniformBuilder {
	b.ncoeffs = ncoeffs
	return b
}

// Init sets the coefficient initialization policy. Default: coeffs.Zeros.
func (b UniformBuilder) Init(init coeffs.Init) UniformBuilder {
	b.init = init
	return b
}

// RandomSeed sets the seed for the coeffs.Random policy, making
// construction deterministic. If not set, a time-based seed is used.
func (b UniformBuilder) RandomSeed(seed int64) UniformBuilder {
	b.seed = &seed
	return b
}

// Logger sets the structured logger for operation tracing.
func (b UniformBuilder) Logger(l *Logger) UniformBuilder {
	b.logger = l
	return b
}

// Codec sets the model codec for snapshots.
func (b UniformBuilder) Codec(c codec.Codec) UniformBuilder {
	b.codec = c
	return b
}

// Compression sets the snapshot payload compression.
func (b UniformBuilder) Compression(c persistence.Compression) UniformBuilder {
	b.compression = &c
	return b
}

// Build creates the BSpline instance.
func (b UniformBuilder) Build() (*BSpline, error) {
	return New(b.geoDim, b.degrees, b.ncoeffs, b.init, builderOptions(b.seed, b.logger, b.codec, b.compression)...)
}

// MustBuild creates the BSpline instance, panicking on error.
func (b UniformBuilder) MustBuild() *BSpline {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// NonUniform creates a builder for a spline over explicit knot vectors.
// Coefficient counts derive from the vectors.
//
// Example:
//
//	kv, err := knots.FromValues([]float64{0, 0, 0, 0.3, 1, 1, 1}, 2)
//	...
//	curve, err := splinego.NonUniform(kv).
//	    GeoDim(3).
//	    Init(coeffs.Greville).
//	    Build()
func NonUniform(kvs ...knots.KnotVector) NonUniformBuilder {
	return NonUniformBuilder{
		geoDim: 1,
		kvs:    kvs,
		init:   coeffs.Zeros,
	}
}

// NonUniformBuilder is an immutable fluent builder for BSpline instances
// over explicit knot vectors. Each method returns a new builder with the
// updated configuration.
type NonUniformBuilder struct {
	geoDim      int
	kvs         []knots.KnotVector
	init        coeffs.Init
	seed        *int64
	logger      *Logger
	codec       codec.Codec
	compression *persistence.Compression
}

// GeoDim sets the geometric (output) dimension. Default: 1.
func (b NonUniformBuilder) GeoDim(n int) NonUniformBuilder {
	b.geoDim = n
	return b
}

// Init sets the coefficient initialization policy. Default: coeffs.Zeros.
func (b NonUniformBuilder) Init(init coeffs.Init) NonUniformBuilder {
	b.init = init
	return b
}

// RandomSeed sets the seed for the coeffs.Random policy.
func (b NonUniformBuilder) RandomSeed(seed int64) NonUniformBuilder {
	b.seed = &seed
	return b
}

// Logger sets the structured logger for operation tracing.
func (b NonUniformBuilder) Logger(l *Logger) NonUniformBuilder {
	b.logger = l
	return b
}

// Codec sets the model codec for snapshots.
func (b NonUniformBuilder) Codec(c codec.Codec) NonUniformBuilder {
	b.codec = c
	return b
}

// Compression sets the snapshot payload compression.
func (b NonUniformBuilder) Compression(c persistence.Compression) NonUniformBuilder {
	b.compression = &c
	return b
}

// Build creates the BSpline instance.
func (b NonUniformBuilder) Build() (*BSpline, error) {
	return NewNonUniform(b.geoDim, b.kvs, b.init, builderOptions(b.seed, b.logger, b.codec, b.compression)...)
}

// MustBuild creates the BSpline instance, panicking on error.
func (b NonUniformBuilder) MustBuild() *BSpline {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func builderOptions(seed *int64, logger *Logger, c codec.Codec, comp *persistence.Compression) []Option {
	var opts []Option
	if seed != nil {
		opts = append(opts, WithRandSource(rand.New(rand.NewSource(*seed))))
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	if c != nil {
		opts = append(opts, WithCodec(c))
	}
	if comp != nil {
		opts = append(opts, WithCompression(*comp))
	}
	return opts
}
