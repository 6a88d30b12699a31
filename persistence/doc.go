// Package persistence reads and writes the snapshot container for spline
// models.
//
// A snapshot is a single self-describing blob:
//
//	magic (u32) | version (u32) | codec name (u8 len + bytes) |
//	compression (u8) | payload length (u32) | payload | crc32 (u32)
//
// The payload is the codec-encoded model, optionally compressed (zstd or
// lz4 frames). The trailing CRC32 (IEEE) covers everything before it and
// detects accidental corruption only; it is not tamper-proof.
//
// Load validates, in order: magic, version, codec name, compression tag,
// checksum — and only then decodes the payload. Shape validation of the
// decoded model against its target is the caller's job and happens before
// any knot or coefficient data is adopted.
package persistence
