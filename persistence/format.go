package persistence

import (
	"errors"
	"fmt"
)

const (
	// Magic identifies splinego snapshot blobs (ASCII "SPL1").
	Magic = 0x53504C31
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	// maxCodecName bounds the codec-name field; longer names indicate a
	// corrupt or foreign header.
	maxCodecName = 64
	// maxPayload bounds the payload length field (1 GiB). Far beyond any
	// real model; guards against allocating on corrupt headers.
	maxPayload = 1 << 30
)

// Compression tags the payload compression in the snapshot header.
type Compression uint8

const (
	// NoCompression stores the payload verbatim.
	NoCompression Compression = 0
	// Zstd compresses the payload with klauspost/compress zstd.
	Zstd Compression = 1
	// LZ4 compresses the payload as an lz4 frame.
	LZ4 Compression = 2
)

// String returns the tag name stored in logs.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	// ErrInvalidMagic is returned when a blob does not start with Magic.
	ErrInvalidMagic = errors.New("persistence: invalid magic number")
	// ErrInvalidVersion is returned for unknown format versions.
	ErrInvalidVersion = errors.New("persistence: unsupported version")
	// ErrUnknownCodec is returned when the named codec is not registered.
	ErrUnknownCodec = errors.New("persistence: unknown codec")
	// ErrUnknownCompression is returned for an unrecognized compression tag.
	ErrUnknownCompression = errors.New("persistence: unknown compression")
	// ErrCorrupt is returned for structurally invalid snapshots.
	ErrCorrupt = errors.New("persistence: corrupt snapshot")
)
