package simhash

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// FoldWidth is the declared bit width of the folded digest hashers below.
const FoldWidth = 64

// SHA512Fold hashes data with SHA-512 and folds the digest to a uint64 by
// taking its leading 8 bytes big-endian. The default engine hash.
func SHA512Fold(data []byte) uint64 {
	sum := sha512.Sum512(data)

	return binary.BigEndian.Uint64(sum[:8])
}

// Blake2bFold hashes data with BLAKE2b-512 and folds the digest to its
// trailing 8 bytes big-endian, the low 64 bits of the digest read as one
// big-endian integer. Use it to reproduce archives fingerprinted with
// BLAKE2b folding.
func Blake2bFold(data []byte) uint64 {
	sum := blake2b.Sum512(data)

	return binary.BigEndian.Uint64(sum[56:])
}

// XXHash64 hashes data with xxHash64. Non-cryptographic and roughly an
// order of magnitude faster than the digest folds; fingerprint quality is
// equivalent since simhash only needs well-mixed bits.
func XXHash64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
