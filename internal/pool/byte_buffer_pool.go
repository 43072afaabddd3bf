// Package pool provides pooled byte buffers for envelope assembly.
package pool

import (
	"io"
	"sync"
)

const (
	// EnvelopeBufferDefaultSize is the default capacity of buffers handed
	// out by the envelope pool. Archive payloads are typically a few KiB
	// of compressed JSON.
	EnvelopeBufferDefaultSize = 4 * 1024

	// EnvelopeBufferMaxThreshold caps the capacity of buffers returned to
	// the pool; larger buffers are discarded to avoid memory bloat.
	EnvelopeBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is a growable byte slice with explicit growth control.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If sufficient capacity is already available, Grow does
// nothing. Small buffers grow by EnvelopeBufferDefaultSize; larger ones by
// 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := EnvelopeBufferDefaultSize
	if cap(bb.B) > 4*EnvelopeBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
// It implements io.Writer and never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers backed by sync.Pool.
//
// Buffers whose capacity grew beyond the configured threshold are not
// returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers with the given
// initial capacity, discarding returned buffers larger than maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var envelopePool = NewByteBufferPool(EnvelopeBufferDefaultSize, EnvelopeBufferMaxThreshold)

// GetEnvelopeBuffer retrieves a ByteBuffer from the default envelope pool.
func GetEnvelopeBuffer() *ByteBuffer {
	return envelopePool.Get()
}

// PutEnvelopeBuffer returns a ByteBuffer to the default envelope pool.
func PutEnvelopeBuffer(bb *ByteBuffer) {
	envelopePool.Put(bb)
}
