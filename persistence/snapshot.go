package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/splinego/codec"
)

// Shared zstd coders. EncodeAll/DecodeAll on a nil-backed coder are
// concurrency-safe and allocation-friendly for blob-sized payloads.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// Save writes v as a snapshot: codec-encoded, optionally compressed,
// framed with the header described in the package docs and a trailing
// CRC32. A nil codec falls back to codec.Default.
func Save(w io.Writer, c codec.Codec, comp Compression, v any) error {
	if c == nil {
		c = codec.Default
	}

	raw, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("persistence: encode payload: %w", err)
	}

	payload, err := compress(comp, raw)
	if err != nil {
		return err
	}

	name := c.Name()
	if len(name) > maxCodecName {
		return fmt.Errorf("%w: codec name %q too long", ErrCorrupt, name)
	}

	cw := newChecksumWriter(w)
	for _, field := range []any{
		uint32(Magic),
		uint32(Version),
		uint8(len(name)),
	} {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(cw, name); err != nil {
		return err
	}
	for _, field := range []any{
		uint8(comp),
		uint32(len(payload)),
	} {
		if err := binary.Write(cw, binary.LittleEndian, field); err != nil {
			return err
		}
	}
	if _, err := cw.Write(payload); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Load reads a snapshot written by Save and decodes its payload into v.
// Header fields are validated in order, the checksum before the payload
// is decoded.
func Load(r io.Reader, v any) error {
	cr := newChecksumReader(r)

	var magic, version uint32
	if err := binary.Read(cr, binary.LittleEndian, &magic); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if magic != Magic {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}
	if err := binary.Read(cr, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if version != Version {
		return fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, version)
	}

	var nameLen uint8
	if err := binary.Read(cr, binary.LittleEndian, &nameLen); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if int(nameLen) > maxCodecName {
		return fmt.Errorf("%w: codec name length %d", ErrCorrupt, nameLen)
	}
	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(cr, nameBytes); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	c, ok := codec.ByName(string(nameBytes))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBytes))
	}

	var comp uint8
	if err := binary.Read(cr, binary.LittleEndian, &comp); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if Compression(comp) != NoCompression && Compression(comp) != Zstd && Compression(comp) != LZ4 {
		return fmt.Errorf("%w: tag %d", ErrUnknownCompression, comp)
	}

	var payloadLen uint32
	if err := binary.Read(cr, binary.LittleEndian, &payloadLen); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if payloadLen > maxPayload {
		return fmt.Errorf("%w: payload length %d", ErrCorrupt, payloadLen)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(cr, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	computed := cr.Sum()
	var stored uint32
	if err := binary.Read(r, binary.LittleEndian, &stored); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if stored != computed {
		return &ChecksumMismatchError{Expected: stored, Actual: computed}
	}

	raw, err := decompress(Compression(comp), payload)
	if err != nil {
		return err
	}
	if err := c.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("persistence: decode payload: %w", err)
	}
	return nil
}

func compress(comp Compression, raw []byte) ([]byte, error) {
	switch comp {
	case NoCompression:
		return raw, nil
	case Zstd:
		return zstdEncoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
	case LZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(raw); err != nil {
			return nil, fmt.Errorf("persistence: lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("persistence: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownCompression, uint8(comp))
	}
}

func decompress(comp Compression, payload []byte) ([]byte, error) {
	switch comp {
	case NoCompression:
		return payload, nil
	case Zstd:
		raw, err := zstdDecoder.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("persistence: zstd decompress: %w", err)
		}
		return raw, nil
	case LZ4:
		raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return nil, fmt.Errorf("persistence: lz4 decompress: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownCompression, uint8(comp))
	}
}
