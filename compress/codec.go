package compress

import (
	"fmt"

	"github.com/webmeld/snapdiff/format"
)

// Compressor compresses a complete archive payload in one call.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller
//     (except for the no-op codec, which returns its input).
//   - The input slice is not modified.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. Implementations validate the input format and return an error
// for corrupted or foreign data.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
