package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmeld/snapdiff/format"
)

// samplePayload builds a JSON-like payload with the repetitive structure of
// a real capture archive, so the codecs have something to bite on.
func samplePayload() []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"captures":[[2023,[1,[15`)
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&buf, `,["%06d",%d]`, i*173%240000, i%7)
	}
	buf.WriteString(`]]]],"hashes":[`)
	for i := 0; i < 7; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"aGFzaC0lMDRk%04d"`, i)
	}
	buf.WriteString(`]}`)

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload()

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	payload := samplePayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(payload),
				"archive payloads must shrink under %s", ct)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			assert.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			assert.Nil(t, decompressed)
		})
	}
}

func TestNoOpSharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("untouched")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, decompressed)
}

func TestDecompressCorruptedData(t *testing.T) {
	garbage := []byte("this is definitely not a compressed frame")

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			assert.Error(t, err)
		})
	}
}

func TestGetCodecUnknownType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xff))
	assert.Error(t, err)
}

func BenchmarkCompress(b *testing.B) {
	payload := samplePayload()

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(b, err)

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}
