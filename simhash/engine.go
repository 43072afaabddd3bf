package simhash

import (
	"fmt"

	"github.com/webmeld/snapdiff/endian"
	"github.com/webmeld/snapdiff/errs"
	"github.com/webmeld/snapdiff/internal/options"
)

// DefaultSize is the default fingerprint size in bits.
const DefaultSize = 64

// Features maps a feature token to its weight, typically the token's
// occurrence count within a document. Weights must be positive.
type Features map[string]int

// HashFunc maps a byte sequence to an unsigned integer. Implementations
// must be deterministic: the same input always yields the same output.
//
// The declared width passed alongside a HashFunc states how many of the
// returned bits are meaningful; it must be at least the engine's
// fingerprint size.
type HashFunc func(data []byte) uint64

// Engine computes fingerprints of a fixed size using a fixed hash function.
//
// Engines are immutable after construction and safe for concurrent use.
type Engine struct {
	hashFn   HashFunc
	hashBits int
	size     int
	engine   endian.EndianEngine
}

// Option configures an Engine during construction.
type Option = options.Option[*Engine]

// WithHashFunc sets the hash function and its declared bit width.
//
// The width is validated against the fingerprint size at construction:
// a hash narrower than the fingerprint fails fast with
// errs.ErrHashWidthInsufficient instead of silently truncating.
func WithHashFunc(fn HashFunc, widthBits int) Option {
	return options.NoError(func(e *Engine) {
		e.hashFn = fn
		e.hashBits = widthBits
	})
}

// WithSize sets the fingerprint size in bits. The size must be in (0, 64]
// and a multiple of 8 so fingerprints serialize to whole bytes.
func WithSize(bits int) Option {
	return options.NoError(func(e *Engine) {
		e.size = bits
	})
}

// NewEngine creates a fingerprint engine. Without options it computes
// 64-bit fingerprints with the SHA512Fold hash function.
//
// Returns:
//   - *Engine: the configured engine
//   - error: errs.ErrInvalidFingerprintSize or errs.ErrHashWidthInsufficient
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		hashFn:   SHA512Fold,
		hashBits: FoldWidth,
		size:     DefaultSize,
		engine:   endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if e.size <= 0 || e.size > 64 || e.size%8 != 0 {
		return nil, fmt.Errorf("%w: %d bits (want a multiple of 8 in (0, 64])", errs.ErrInvalidFingerprintSize, e.size)
	}
	if e.hashBits < e.size {
		return nil, fmt.Errorf("%w: hash provides %d bits, fingerprint needs %d", errs.ErrHashWidthInsufficient, e.hashBits, e.size)
	}

	return e, nil
}

// Size returns the fingerprint size in bits.
func (e *Engine) Size() int {
	return e.size
}

// Compute calculates the fingerprint of the given feature set.
//
// The feature set is treated as unordered; permuting it never changes the
// result. An empty feature set fails with errs.ErrEmptyFeatureSet — no
// fingerprint is produced.
func (e *Engine) Compute(features Features) (Fingerprint, error) {
	if len(features) == 0 {
		return 0, errs.ErrEmptyFeatureSet
	}

	v := make([]int64, e.size)
	for token, weight := range features {
		h := e.hashFn([]byte(token))
		w := int64(weight)
		for i := range v {
			if h&(1<<uint(i)) != 0 {
				v[i] += w
			} else {
				v[i] -= w
			}
		}
	}

	var fp uint64
	for i, sum := range v {
		// Zero-sum accumulators resolve to bit 0; stored fingerprints
		// depend on this tie-break.
		if sum > 0 {
			fp |= 1 << uint(i)
		}
	}

	return Fingerprint(fp), nil
}
