package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named model does not exist.
//
// Implementations must return an error satisfying
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blobstore: not found")

// Store is the storage abstraction for serialized spline models.
// Models are written and read whole; snapshots are small enough that
// streaming or ranged access buys nothing.
type Store interface {
	// Get returns the full content of the named model.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes the named model atomically, replacing any previous
	// version.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes the named model. Deleting a missing model is not an
	// error.
	Delete(ctx context.Context, name string) error
	// List returns all model names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
