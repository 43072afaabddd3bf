// Package compress provides compression codecs for snapdiff archive payloads.
//
// An archive payload is the canonical JSON form of a capture archive. The
// deduplicated hash dictionary and the repetitive date structure make these
// payloads highly compressible, so the envelope encoder applies one of the
// codecs here before writing the payload out.
//
// # Interfaces
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): pass-through, for payloads that are
//     already small or for debugging.
//   - Zstd (format.CompressionZstd): best ratio, the default for archives.
//     Uses gozstd when cgo is available and klauspost/compress otherwise.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// Codecs are obtained from the format enum:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All built-in codecs are stateless values and safe for concurrent use.
package compress
