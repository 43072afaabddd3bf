package simhash

import (
	"encoding/base64"
	"fmt"
	"math/bits"

	"github.com/webmeld/snapdiff/errs"
)

// Fingerprint is a SimHash value of up to 64 bits. Bit 0 is the least
// significant bit. For an engine of size B, only the low B bits are used.
type Fingerprint uint64

// Hamming returns the number of differing bits between two fingerprints.
// Fingerprints of similar documents have small Hamming distances.
func (f Fingerprint) Hamming(other Fingerprint) int {
	return bits.OnesCount64(uint64(f ^ other))
}

// EncodeBytes serializes the fingerprint as size/8 bytes in little-endian
// order. The byte layout is the interop contract for stored archives and
// must not change.
func (e *Engine) EncodeBytes(f Fingerprint) []byte {
	buf := make([]byte, 8)
	e.engine.PutUint64(buf, uint64(f))

	return buf[:e.size/8]
}

// DecodeBytes reverses EncodeBytes exactly.
//
// Returns errs.ErrInvalidFingerprint if b is not size/8 bytes long.
func (e *Engine) DecodeBytes(b []byte) (Fingerprint, error) {
	if len(b) != e.size/8 {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidFingerprint, len(b), e.size/8)
	}

	buf := make([]byte, 8)
	copy(buf, b)

	return Fingerprint(e.engine.Uint64(buf)), nil
}

// EncodeString serializes the fingerprint as standard base64 of its
// little-endian bytes, the printable form used in capture archives.
func (e *Engine) EncodeString(f Fingerprint) string {
	return base64.StdEncoding.EncodeToString(e.EncodeBytes(f))
}

// DecodeString reverses EncodeString exactly.
func (e *Engine) DecodeString(s string) (Fingerprint, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidFingerprint, err)
	}

	return e.DecodeBytes(raw)
}
