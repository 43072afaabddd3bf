// Package archive compacts timestamped fingerprint observations into a
// deduplicated, date-partitioned archive.
//
// A capture is a (timestamp, fingerprint) pair, where the timestamp is the
// 14-digit YYYYMMDDHHMMSS form used by web archives and the fingerprint is
// an opaque string (typically the base64 form produced by the simhash
// package). Long series of captures of the same page are highly redundant:
// near-duplicate snapshots share a fingerprint, and snapshots cluster on
// dates. Compress exploits both.
//
// # Archive shape
//
// Compress deduplicates fingerprints into a dictionary indexed by
// first-seen order, and groups captures into a year → month → day tree.
// Each day holds (time-of-day, hash id) pairs in input order; the tree
// itself is sorted ascending by year, month and day.
//
//	captures := []archive.Capture{
//	    {Timestamp: "20230101120000", Hash: "qznYFZ0Yz10="},
//	    {Timestamp: "20230101180000", Hash: "qznYFZ0Yz10="},
//	}
//	a, err := archive.Compress(captures)
//
// Reconstruct inverts Compress. Within a single day the original order is
// preserved exactly; captures that interleaved across different days are
// emitted in tree order instead. That loss of cross-day interleaving is
// intentional — the archive is a grouping, not a log.
//
// # Serialization
//
// Archives marshal to the compact nested-array JSON form used on the wire:
//
//	{"captures": [[2023, [1, [1, ["120000", 0], ["180000", 0]]]]],
//	 "hashes": ["qznYFZ0Yz10="]}
//
// Encode wraps that JSON in a small binary envelope (magic, version,
// compression type, CRC32) with the payload compressed by one of the
// codecs from the compress package; Decode verifies and inverts it.
package archive
