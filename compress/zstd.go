package compress

// ZstdCompressor provides Zstandard compression for archive payloads.
//
// Zstd gives the best ratio of the supported algorithms and is the default
// for archive envelopes, where payloads are written once and read rarely.
//
// Two implementations are selected at build time:
//   - cgo builds use gozstd (bindings to the reference C library)
//   - pure Go builds use klauspost/compress/zstd
//
// Both produce standard zstd frames, so data compressed by one can be
// decompressed by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
