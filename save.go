package splinego

import (
	"bytes"
	"context"
	"io"

	"github.com/hupe1980/splinego/blobstore"
	"github.com/hupe1980/splinego/persistence"
)

// Save writes the spline as a snapshot (codec-encoded model, optionally
// compressed, checksummed) to w. Codec and compression come from the
// spline's options.
func (b *BSpline) Save(w io.Writer) error {
	return persistence.Save(w, b.opts.codec, b.opts.compression, b.Model())
}

// Load reads a snapshot from r into the spline. The snapshot's shape must
// match the receiver (see ApplyModel).
func (b *BSpline) Load(r io.Reader) error {
	var m Model
	if err := persistence.Load(r, &m); err != nil {
		return err
	}
	return b.ApplyModel(&m)
}

// Read reads a snapshot from r into a fresh BSpline.
func Read(r io.Reader, opts ...Option) (*BSpline, error) {
	var m Model
	if err := persistence.Load(r, &m); err != nil {
		return nil, err
	}
	return NewFromModel(&m, opts...)
}

// SaveTo snapshots the spline into the named model on a blob store.
func (b *BSpline) SaveTo(ctx context.Context, store blobstore.Store, name string) error {
	var buf bytes.Buffer
	if err := b.Save(&buf); err != nil {
		return err
	}
	if err := store.Put(ctx, name, buf.Bytes()); err != nil {
		b.opts.logger.WithModel(name).Error("model save failed", "error", err)
		return err
	}
	b.opts.logger.WithModel(name).Info("model saved", "bytes", buf.Len())
	return nil
}

// LoadFrom reads the named model from a blob store into a fresh BSpline.
func LoadFrom(ctx context.Context, store blobstore.Store, name string, opts ...Option) (*BSpline, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data), opts...)
}
