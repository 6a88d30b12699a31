package splinego

import (
	"math/rand"

	"github.com/hupe1980/splinego/codec"
	"github.com/hupe1980/splinego/persistence"
)

type options struct {
	logger      *Logger
	codec       codec.Codec
	compression persistence.Compression
	rng         *rand.Rand
}

func defaultOptions() options {
	return options{
		logger:      NoopLogger(),
		codec:       codec.Default,
		compression: persistence.NoCompression,
	}
}

// Option configures constructor behavior. Options exist to keep the
// constructor surface small; zero options give a silent spline with the
// default codec and uncompressed snapshots.
type Option func(*options)

// WithLogger configures the logger. nil restores the silent default.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithCodec configures the snapshot payload codec. nil restores
// codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures snapshot payload compression.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithRandSource seeds the Random init policy deterministically. nil
// falls back to the shared global source.
func WithRandSource(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}
