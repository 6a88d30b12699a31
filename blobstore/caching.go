package blobstore

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached wraps a Store with an in-memory byte cache. Concurrent Gets for
// the same uncached name are deduplicated through a single-flight group,
// so a popular model hits the backend once, not once per caller.
//
// The cache holds whole snapshots and is unbounded; callers managing many
// large models should wrap a subset of names or flush via Delete.
type Cached struct {
	inner Store

	mu    sync.RWMutex
	cache map[string][]byte

	group singleflight.Group
}

// NewCached wraps inner with a cache.
func NewCached(inner Store) *Cached {
	return &Cached{inner: inner, cache: make(map[string][]byte)}
}

// Get returns the named model, from cache when possible. The returned
// slice is the caller's; mutating it does not touch the cached copy.
func (s *Cached) Get(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return clone(data), nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		data, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = data
		s.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]byte)), nil
}

func clone(data []byte) []byte {
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}

// Put writes through to the backend and refreshes the cache.
func (s *Cached) Put(ctx context.Context, name string, data []byte) error {
	if err := s.inner.Put(ctx, name, data); err != nil {
		return err
	}
	cp := clone(data)
	s.mu.Lock()
	s.cache[name] = cp
	s.mu.Unlock()
	return nil
}

// Delete removes the model from the backend and the cache.
func (s *Cached) Delete(ctx context.Context, name string) error {
	if err := s.inner.Delete(ctx, name); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()
	return nil
}

// List delegates to the backend; listings are not cached.
func (s *Cached) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
