// Package snapdiff detects near-duplicate web page snapshots.
//
// It computes SimHash fingerprints from weighted feature sets and compacts
// long series of timestamped fingerprint observations into deduplicated,
// date-partitioned archives.
//
// # Basic Usage
//
// Fingerprinting a document:
//
//	import "github.com/webmeld/snapdiff"
//
//	features, _ := extract.Features(htmlContent)
//	encoded, err := snapdiff.FingerprintString(features)
//	if err != nil {
//	    // errs.ErrEmptyFeatureSet for pages with no visible text
//	}
//
// Archiving a capture series:
//
//	captures := []archive.Capture{
//	    {Timestamp: "20230101120000", Hash: encoded},
//	    {Timestamp: "20230101180000", Hash: encoded},
//	}
//	a, _ := snapdiff.CompressCaptures(captures)
//	blob, _ := snapdiff.EncodeArchive(a)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the simhash
// and archive packages, using a shared default engine (64-bit fingerprints,
// SHA512Fold hashing). For custom hash functions, fingerprint sizes or
// compression settings, use the simhash and archive packages directly.
package snapdiff

import (
	"github.com/webmeld/snapdiff/archive"
	"github.com/webmeld/snapdiff/simhash"
)

var defaultEngine = func() *simhash.Engine {
	engine, err := simhash.NewEngine()
	if err != nil {
		panic(err)
	}

	return engine
}()

// Fingerprint computes a 64-bit fingerprint of features with the default
// engine.
func Fingerprint(features simhash.Features) (simhash.Fingerprint, error) {
	return defaultEngine.Compute(features)
}

// FingerprintString computes a fingerprint with the default engine and
// returns its printable form: base64 of the little-endian bytes.
func FingerprintString(features simhash.Features) (string, error) {
	fp, err := defaultEngine.Compute(features)
	if err != nil {
		return "", err
	}

	return defaultEngine.EncodeString(fp), nil
}

// ParseFingerprint decodes the printable form produced by FingerprintString.
func ParseFingerprint(s string) (simhash.Fingerprint, error) {
	return defaultEngine.DecodeString(s)
}

// CompressCaptures builds the deduplicated, date-partitioned archive of a
// capture sequence.
func CompressCaptures(captures []archive.Capture) (*archive.Archive, error) {
	return archive.Compress(captures)
}

// ReconstructCaptures regenerates the capture list from an archive.
// Within a day the original order is exact; cross-day interleaving is not
// retained.
func ReconstructCaptures(a *archive.Archive) ([]archive.Capture, error) {
	return archive.Reconstruct(a)
}

// EncodeArchive serializes an archive into its binary envelope. By default
// the payload is Zstd-compressed; see archive.WithCompression.
func EncodeArchive(a *archive.Archive, opts ...archive.EncodeOption) ([]byte, error) {
	return archive.Encode(a, opts...)
}

// DecodeArchive verifies and decodes a binary envelope back into an
// archive.
func DecodeArchive(data []byte) (*archive.Archive, error) {
	return archive.Decode(data)
}
