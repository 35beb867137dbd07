// Package header parses and validates the 0x70-byte DEX header_item: the
// magic, checksum, endian tag, and the six (size, off) pairs that anchor
// every id pool.
package header

import (
	"hash/adler32"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
)

// Size is the fixed byte length of a valid DEX header_item.
const Size = 0x70

const (
	offMagic      = 0
	offChecksum   = 8
	offSignature  = 12
	offFileSize   = 32
	offHeaderSize = 36
	offEndianTag  = 40
	offLinkSize   = 44
	offLinkOff    = 48
	offMapOff     = 52
	offStringsSz  = 56
	offStringsOff = 60
	offTypesSz    = 64
	offTypesOff   = 68
	offProtosSz   = 72
	offProtosOff  = 76
	offFieldsSz   = 80
	offFieldsOff  = 84
	offMethodsSz  = 88
	offMethodsOff = 92
	offClassDefSz = 96
	offClassOff   = 100
	offDataSize   = 104
	offDataOff    = 108
)

// maxPoolSize is the ceiling spec.md imposes on type_ids_size and
// proto_ids_size; a file claiming a pool this large or larger is rejected
// before any pool parser runs.
const maxPoolSize = 0xFFFF

// Header is the fully validated, fixed-size portion of a DEX file.
type Header struct {
	Version     int
	Checksum    uint32
	Signature   [20]byte
	FileSize    uint32
	HeaderSize  uint32
	EndianTag   uint32
	Engine      endian.EndianEngine
	LinkSize    uint32
	LinkOff     uint32
	MapOff      uint32

	StringIDsSize uint32
	StringIDsOff  uint32
	TypeIDsSize   uint32
	TypeIDsOff    uint32
	ProtoIDsSize  uint32
	ProtoIDsOff   uint32
	FieldIDsSize  uint32
	FieldIDsOff   uint32
	MethodIDsSize uint32
	MethodIDsOff  uint32
	ClassDefsSize uint32
	ClassDefsOff  uint32
	DataSize      uint32
	DataOff       uint32
}

// Parse validates and decodes a DEX header_item from the start of data,
// following spec.md §4.4's sequence: resolve byte order from the
// endian_tag, verify magic and checksum, then decode the remaining
// fixed-stride fields with that byte order.
func Parse(data []byte) (Header, error) {
	return parse(data, false)
}

// ParseSkipChecksum decodes a header_item without verifying the adler32
// checksum against the signature-to-EOF span, for callers that have
// already validated the checksum by another means (e.g. a prior parse of
// the same bytes, or a container format that checks it independently).
func ParseSkipChecksum(data []byte) (Header, error) {
	return parse(data, true)
}

func parse(data []byte, skipChecksum bool) (Header, error) {
	var h Header

	if len(data) < Size {
		return h, errs.ErrEndOfStream
	}

	tag := endian.GetLittleEndianEngine().Uint32(data[offEndianTag : offEndianTag+4])

	engine, err := endian.EngineForTag(tag)
	if err != nil {
		return h, err
	}

	if data[offMagic] != 'd' || data[offMagic+1] != 'e' || data[offMagic+2] != 'x' || data[offMagic+3] != '\n' {
		return h, errs.ErrInvalidMagic
	}
	if data[offMagic+7] != 0 {
		return h, errs.ErrInvalidMagic
	}

	checksum := engine.Uint32(data[offChecksum : offChecksum+4])
	if !skipChecksum && adler32.Checksum(data[offSignature:]) != checksum {
		return h, errs.ErrInvalidChecksum
	}

	copy(h.Signature[:], data[offSignature:offSignature+20])

	h.FileSize = engine.Uint32(data[offFileSize : offFileSize+4])
	h.HeaderSize = engine.Uint32(data[offHeaderSize : offHeaderSize+4])
	if h.HeaderSize != Size {
		return h, errs.ErrInvalidHeaderSize
	}

	h.EndianTag = tag
	h.Engine = engine
	h.Checksum = checksum

	h.LinkSize = engine.Uint32(data[offLinkSize : offLinkSize+4])
	h.LinkOff = engine.Uint32(data[offLinkOff : offLinkOff+4])
	h.MapOff = engine.Uint32(data[offMapOff : offMapOff+4])

	h.StringIDsSize = engine.Uint32(data[offStringsSz : offStringsSz+4])
	h.StringIDsOff = engine.Uint32(data[offStringsOff : offStringsOff+4])
	h.TypeIDsSize = engine.Uint32(data[offTypesSz : offTypesSz+4])
	h.TypeIDsOff = engine.Uint32(data[offTypesOff : offTypesOff+4])
	h.ProtoIDsSize = engine.Uint32(data[offProtosSz : offProtosSz+4])
	h.ProtoIDsOff = engine.Uint32(data[offProtosOff : offProtosOff+4])
	h.FieldIDsSize = engine.Uint32(data[offFieldsSz : offFieldsSz+4])
	h.FieldIDsOff = engine.Uint32(data[offFieldsOff : offFieldsOff+4])
	h.MethodIDsSize = engine.Uint32(data[offMethodsSz : offMethodsSz+4])
	h.MethodIDsOff = engine.Uint32(data[offMethodsOff : offMethodsOff+4])
	h.ClassDefsSize = engine.Uint32(data[offClassDefSz : offClassDefSz+4])
	h.ClassDefsOff = engine.Uint32(data[offClassOff : offClassOff+4])
	h.DataSize = engine.Uint32(data[offDataSize : offDataSize+4])
	h.DataOff = engine.Uint32(data[offDataOff : offDataOff+4])

	if h.TypeIDsSize >= maxPoolSize {
		return h, errs.ErrInvalidTypesSize
	}
	if h.ProtoIDsSize >= maxPoolSize {
		return h, errs.ErrInvalidProtosSize
	}
	if h.DataSize%4 != 0 {
		return h, errs.ErrInvalidDataSize
	}

	h.Version = int(data[offMagic+4]-'0')*100 + int(data[offMagic+5]-'0')*10 + int(data[offMagic+6]-'0')

	return h, nil
}
