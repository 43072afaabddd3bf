// Package errs defines sentinel errors shared across snapdiff packages.
//
// Callers should match errors with errors.Is, since packages wrap these
// sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Fingerprint engine errors.
var (
	// ErrEmptyFeatureSet indicates Compute was invoked with no features.
	// No fingerprint is produced; callers should skip the item.
	ErrEmptyFeatureSet = errors.New("empty feature set")

	// ErrHashWidthInsufficient indicates the configured hash function
	// provides fewer bits than the requested fingerprint size.
	ErrHashWidthInsufficient = errors.New("hash width insufficient for fingerprint size")

	// ErrInvalidFingerprintSize indicates a fingerprint size outside
	// (0, 64] or not a multiple of 8 bits.
	ErrInvalidFingerprintSize = errors.New("invalid fingerprint size")

	// ErrInvalidFingerprint indicates a serialized fingerprint that does
	// not decode to the engine's size.
	ErrInvalidFingerprint = errors.New("invalid fingerprint encoding")
)

// Capture archive errors.
var (
	// ErrMalformedTimestamp indicates a capture timestamp that is not a
	// 14-digit YYYYMMDDHHMMSS string with plausible field values.
	ErrMalformedTimestamp = errors.New("malformed capture timestamp")

	// ErrInvalidHashID indicates an archive entry referencing a hash id
	// outside the archive's hash dictionary.
	ErrInvalidHashID = errors.New("invalid hash id")
)

// Archive envelope errors.
var (
	ErrEnvelopeTooShort   = errors.New("envelope too short")
	ErrInvalidMagic       = errors.New("invalid envelope magic")
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("envelope checksum mismatch")
)
