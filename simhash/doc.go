// Package simhash computes fixed-width similarity fingerprints from
// weighted feature sets.
//
// A SimHash fingerprint is a locality-sensitive digest: documents with
// similar feature sets produce fingerprints with a small Hamming distance,
// which makes the fingerprints usable for near-duplicate detection without
// keeping the documents around.
//
// # Algorithm
//
// For a fingerprint of size B bits, the engine keeps a signed accumulator
// per bit position. Each feature's token is hashed once; for every bit
// position i, the feature's weight is added to accumulator i if bit i of
// the hash is set and subtracted otherwise. Bit i of the fingerprint is 1
// exactly when accumulator i ends up positive; a zero accumulator yields 0.
// The tie-break is part of the contract — stored fingerprints depend on it.
//
// The computation treats the feature set as unordered: accumulation is
// commutative, so iteration order never affects the result.
//
// # Usage
//
//	engine, err := simhash.NewEngine()
//	if err != nil {
//	    return err
//	}
//
//	features := simhash.Features{"the": 12, "quick": 1, "fox": 2}
//	fp, err := engine.Compute(features)
//	if err != nil {
//	    return err
//	}
//
//	encoded := engine.EncodeString(fp) // base64 of little-endian bytes
//
// The hash function is an explicit capability of the engine. The default is
// SHA512Fold; XXHash64 is a faster non-cryptographic alternative and
// Blake2bFold matches archives produced with BLAKE2b folding:
//
//	engine, err := simhash.NewEngine(
//	    simhash.WithHashFunc(simhash.XXHash64, 64),
//	)
//
// # Determinism
//
// For a fixed hash function and size, Compute is fully deterministic: the
// same feature mapping always yields the same fingerprint, regardless of
// map iteration order. Engines are immutable after construction and safe
// for concurrent use.
package simhash
