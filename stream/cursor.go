// Package stream provides a cursor over an immutable DEX byte buffer: typed
// little-/big-endian reads, ULEB128/SLEB128 decoding, and the peek/seek/clone
// operations the header and pool parsers build on.
package stream

import (
	"math"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/leb128"
)

// Reader is a cursor over an immutable byte slice, with a mutable position
// and a fixed byte order. The underlying slice is shared, never copied.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data using engine for multi-byte reads.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	return &Reader{data: data, engine: engine}
}

// Tell returns the current cursor position.
func (r *Reader) Tell() int {
	return r.pos
}

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(abs int) {
	r.pos = abs
}

// Len returns the length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.data)
}

// Clone returns a copy of the cursor sharing the same underlying slice, with
// an independent position.
func (r *Reader) Clone() *Reader {
	return &Reader{data: r.data, pos: r.pos, engine: r.engine}
}

// ReadBytes reads n bytes and advances the cursor. The returned slice aliases
// the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) || n < 0 {
		return nil, errs.ErrEndOfStream
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// PeekAt reads n bytes at an absolute offset without moving the cursor.
func (r *Reader) PeekAt(off, n int) ([]byte, error) {
	if off < 0 || off+n > len(r.data) || n < 0 {
		return nil, errs.ErrEndOfStream
	}

	return r.data[off : off+n], nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadI8 reads a signed 8-bit integer.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads an unsigned 16-bit integer honouring the cursor's byte order.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadI16 reads a signed 16-bit integer.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadU32 reads an unsigned 32-bit integer honouring the cursor's byte order.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadI32 reads a signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads an unsigned 64-bit integer honouring the cursor's byte order.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadI64 reads a signed 64-bit integer.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadFloat32 reads an IEEE-754 single-precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an IEEE-754 double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadULEB128 reads an unsigned LEB128 varint and advances the cursor.
func (r *Reader) ReadULEB128() (uint64, error) {
	v, n := leb128.DecodeULEB128(r.data[r.pos:])
	if n == 0 {
		return 0, errs.ErrEndOfStream
	}

	r.pos += n

	return v, nil
}

// ReadSLEB128 reads a signed LEB128 varint and advances the cursor.
func (r *Reader) ReadSLEB128() (int64, error) {
	v, n := leb128.DecodeSLEB128(r.data[r.pos:])
	if n == 0 {
		return 0, errs.ErrEndOfStream
	}

	r.pos += n

	return v, nil
}
