// Package endian provides byte order utilities for binary encoding and
// decoding of DEX files.
//
// It extends Go's standard encoding/binary package by combining ByteOrder
// and AppendByteOrder into a single EndianEngine interface, and adds
// EngineForTag, which resolves the byte order of a DEX file from its
// header's endian_tag sentinel.
//
// # Basic usage
//
//	engine, err := endian.EngineForTag(tag)
//	if err != nil {
//		return err
//	}
//	stringCount := engine.Uint32(data[56:60])
//
// # Thread safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/yntha/godex/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Endian tag sentinels as they appear in a DEX header_item at offset 40,
// read as a little-endian uint32 before the file's real byte order is
// known.
const (
	TagBigEndian    uint32 = 0x12345678
	TagLittleEndian uint32 = 0x78563412
)

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineForTag resolves the EndianEngine for a DEX header's endian_tag
// field. tag must be read as a little-endian uint32 regardless of the
// file's actual byte order, since the tag is what determines that order.
func EngineForTag(tag uint32) (EndianEngine, error) {
	switch tag {
	case TagBigEndian:
		return GetBigEndianEngine(), nil
	case TagLittleEndian:
		return GetLittleEndianEngine(), nil
	default:
		return nil, errs.ErrInvalidEndianTag
	}
}
