package archive

import (
	"encoding/json"
	"fmt"
	"hash/crc32"

	"github.com/webmeld/snapdiff/compress"
	"github.com/webmeld/snapdiff/endian"
	"github.com/webmeld/snapdiff/errs"
	"github.com/webmeld/snapdiff/format"
	"github.com/webmeld/snapdiff/internal/options"
	"github.com/webmeld/snapdiff/internal/pool"
)

// Envelope layout, all multi-byte fields little-endian:
//
//	offset 0: magic "SNAP" (4 bytes)
//	offset 4: version (1 byte)
//	offset 5: compression type (1 byte, format.CompressionType)
//	offset 6: CRC32-IEEE of the compressed payload (4 bytes)
//	offset 10: compressed payload (canonical JSON of the archive)
const (
	envelopeMagic   uint32 = 0x50414e53 // "SNAP" read little-endian
	envelopeVersion byte   = 0x1
	headerSize             = 10
)

type encodeConfig struct {
	compression format.CompressionType
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(cfg *encodeConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// Encode serializes the archive into a self-describing binary envelope:
// the canonical JSON payload, compressed with the selected codec and
// wrapped with magic, version and checksum.
func Encode(a *Archive, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal archive: %w", err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress archive payload: %w", err)
	}

	engine := endian.GetLittleEndianEngine()

	buf := pool.GetEnvelopeBuffer()
	defer pool.PutEnvelopeBuffer(buf)

	buf.Grow(headerSize + len(compressed))
	buf.B = engine.AppendUint32(buf.B, envelopeMagic)
	buf.B = append(buf.B, envelopeVersion, byte(cfg.compression))
	buf.B = engine.AppendUint32(buf.B, crc32.ChecksumIEEE(compressed))
	buf.MustWrite(compressed)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decode verifies an envelope produced by Encode and reconstructs the
// archive. Magic, version, compression type and checksum are validated
// before the payload is touched.
func Decode(data []byte) (*Archive, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrEnvelopeTooShort, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	if magic := engine.Uint32(data[0:4]); magic != envelopeMagic {
		return nil, fmt.Errorf("%w: 0x%08x", errs.ErrInvalidMagic, magic)
	}
	if version := data[4]; version != envelopeVersion {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedVersion, version)
	}
	compression := format.CompressionType(data[5])
	if !compression.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[5])
	}

	payload := data[headerSize:]
	if sum := crc32.ChecksumIEEE(payload); sum != engine.Uint32(data[6:10]) {
		return nil, fmt.Errorf("%w: computed 0x%08x", errs.ErrChecksumMismatch, sum)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress archive payload: %w", err)
	}

	a := &Archive{}
	if err := json.Unmarshal(raw, a); err != nil {
		return nil, fmt.Errorf("unmarshal archive: %w", err)
	}

	return a, nil
}
