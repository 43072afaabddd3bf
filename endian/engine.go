// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, which lets encoders
// use the faster append-style operations without carrying two values around.
//
// Snapdiff serializes fingerprints and archive envelopes in little-endian
// order, so most callers want GetLittleEndianEngine:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
//
// The returned engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any code
// written against the standard library interfaces keeps working.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
//
// Little-endian is the canonical byte order for snapdiff fingerprints and
// archive envelopes.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
