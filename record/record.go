// Package record defines the fixed-stride on-disk structures that make up
// a DEX file's id pools: StringID, TypeID, ProtoID, FieldID, MethodID, and
// the variable-length TypeList and StringData records they reference.
package record

import (
	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/leb128"
)

// Byte strides of the fixed-size id pool records.
const (
	StringIDSize = 4
	TypeIDSize   = 4
	ProtoIDSize  = 12
	FieldIDSize  = 8
	MethodIDSize = 8
)

// StringID is a string_id_item: a single u32 offset into the file where the
// string's string_data_item lives.
type StringID struct {
	StringDataOff uint32
}

// ParseStringID decodes a string_id_item from data, which must be exactly
// StringIDSize bytes.
func ParseStringID(data []byte, engine endian.EndianEngine) (StringID, error) {
	if len(data) != StringIDSize {
		return StringID{}, errs.ErrEndOfStream
	}

	return StringID{StringDataOff: engine.Uint32(data)}, nil
}

// TypeID is a type_id_item: a u32 index into the string pool naming the
// type's descriptor.
type TypeID struct {
	DescriptorIdx uint32
}

// ParseTypeID decodes a type_id_item from data, which must be exactly
// TypeIDSize bytes.
func ParseTypeID(data []byte, engine endian.EndianEngine) (TypeID, error) {
	if len(data) != TypeIDSize {
		return TypeID{}, errs.ErrEndOfStream
	}

	return TypeID{DescriptorIdx: engine.Uint32(data)}, nil
}

// ProtoID is a proto_id_item: a method prototype (shorty form, return type,
// and an optional parameter type_list).
type ProtoID struct {
	ShortyIdx     uint32
	ReturnTypeIdx uint32
	ParametersOff uint32
}

// ParseProtoID decodes a proto_id_item from data, which must be exactly
// ProtoIDSize bytes.
func ParseProtoID(data []byte, engine endian.EndianEngine) (ProtoID, error) {
	if len(data) != ProtoIDSize {
		return ProtoID{}, errs.ErrEndOfStream
	}

	return ProtoID{
		ShortyIdx:     engine.Uint32(data[0:4]),
		ReturnTypeIdx: engine.Uint32(data[4:8]),
		ParametersOff: engine.Uint32(data[8:12]),
	}, nil
}

// FieldID is a field_id_item: the declaring class, type, and name of a
// field, each a pool index.
type FieldID struct {
	ClassIdx uint16
	TypeIdx  uint16
	NameIdx  uint32
}

// ParseFieldID decodes a field_id_item from data, which must be exactly
// FieldIDSize bytes.
func ParseFieldID(data []byte, engine endian.EndianEngine) (FieldID, error) {
	if len(data) != FieldIDSize {
		return FieldID{}, errs.ErrEndOfStream
	}

	return FieldID{
		ClassIdx: engine.Uint16(data[0:2]),
		TypeIdx:  engine.Uint16(data[2:4]),
		NameIdx:  engine.Uint32(data[4:8]),
	}, nil
}

// MethodID is a method_id_item: the declaring class, prototype, and name
// of a method, each a pool index.
type MethodID struct {
	ClassIdx uint16
	ProtoIdx uint16
	NameIdx  uint32
}

// ParseMethodID decodes a method_id_item from data, which must be exactly
// MethodIDSize bytes.
func ParseMethodID(data []byte, engine endian.EndianEngine) (MethodID, error) {
	if len(data) != MethodIDSize {
		return MethodID{}, errs.ErrEndOfStream
	}

	return MethodID{
		ClassIdx: engine.Uint16(data[0:2]),
		ProtoIdx: engine.Uint16(data[2:4]),
		NameIdx:  engine.Uint32(data[4:8]),
	}, nil
}

// TypeList is a type_list: a u32 length followed by that many u16 type
// pool indices, used for a proto's parameter list.
type TypeList struct {
	TypeIdxs []uint16
}

// ParseTypeList decodes a type_list starting at the beginning of data.
// It returns the parsed list and the number of bytes consumed.
func ParseTypeList(data []byte, engine endian.EndianEngine) (TypeList, int, error) {
	if len(data) < 4 {
		return TypeList{}, 0, errs.ErrEndOfStream
	}

	length := engine.Uint32(data[0:4])
	consumed := 4 + int(length)*2

	if len(data) < consumed {
		return TypeList{}, 0, errs.ErrEndOfStream
	}

	idxs := make([]uint16, length)
	for i := range idxs {
		off := 4 + i*2
		idxs[i] = engine.Uint16(data[off : off+2])
	}

	return TypeList{TypeIdxs: idxs}, consumed, nil
}

// StringData is a string_data_item: a ULEB128 utf16_size followed by
// MUTF-8 bytes and a terminating NUL.
type StringData struct {
	UTF16Size uint64
	Bytes     []byte // MUTF-8 bytes, excluding the terminating NUL
	Size      int    // total on-disk span: sizeof_uleb128(utf16_size) + len(Bytes)
}

// ParseStringData decodes a string_data_item starting at the beginning of
// data. The MUTF-8 bytes run until a NUL terminator.
func ParseStringData(data []byte) (StringData, error) {
	utf16Size, n := leb128.DecodeULEB128(data)
	if n == 0 {
		return StringData{}, errs.ErrEndOfStream
	}

	rest := data[n:]

	nul := -1
	for i, b := range rest {
		if b == 0 {
			nul = i
			break
		}
	}
	if nul == -1 {
		return StringData{}, errs.ErrEndOfStream
	}

	return StringData{
		UTF16Size: utf16Size,
		Bytes:     rest[:nul],
		Size:      n + nul,
	}, nil
}
