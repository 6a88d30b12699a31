package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttled wraps a Store with a rate limiter, bounding the request rate
// against a shared remote backend (e.g. a bucket sweeping thousands of
// models). Every operation waits for a token first and honors context
// cancellation while waiting.
type Throttled struct {
	inner   Store
	limiter *rate.Limiter
}

// NewThrottled wraps inner, allowing rps requests per second with the
// given burst.
func NewThrottled(inner Store, rps float64, burst int) *Throttled {
	return &Throttled{inner: inner, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Get waits for a token, then delegates.
func (s *Throttled) Get(ctx context.Context, name string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Get(ctx, name)
}

// Put waits for a token, then delegates.
func (s *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete waits for a token, then delegates.
func (s *Throttled) Delete(ctx context.Context, name string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	return s.inner.Delete(ctx, name)
}

// List waits for a token, then delegates.
func (s *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.List(ctx, prefix)
}
