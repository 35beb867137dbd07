// Package testdex builds small, internally consistent DEX byte buffers
// used as fixtures across the other packages' tests, reproducing the
// literal worked examples this reader was validated against rather than
// ad-hoc synthetic layouts.
package testdex

import (
	"encoding/hex"
	"hash/adler32"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/header"
	"github.com/yntha/godex/leb128"
)

// header_item field offsets, duplicated from the header package (which
// keeps them unexported) since building a fixture requires poking the
// same fixed layout a parser reads.
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

var engine = endian.GetLittleEndianEngine()

// newHeader returns a header.Size-byte buffer with the magic, endian tag,
// and header_size fields filled in; every pool size/off field defaults to
// zero until the caller patches them.
func newHeader() []byte {
	buf := make([]byte, header.Size)

	copy(buf[offMagic:], "dex\n035\x00")
	engine.PutUint32(buf[offEndianTag:], endian.TagLittleEndian)
	engine.PutUint32(buf[offHeaderSize:], header.Size)

	return buf
}

// appendStringData appends one string_data_item (a ULEB128 utf16_size,
// the ASCII bytes of s, and a terminating NUL) to buf, returning the
// extended buffer and the offset s was written at.
func appendStringData(buf []byte, s string) ([]byte, uint32) {
	off := uint32(len(buf))

	buf = leb128.EncodeULEB128(buf, uint64(len(s)))
	buf = append(buf, s...)
	buf = append(buf, 0)

	return buf, off
}

// finalize patches buf's checksum field with the adler32 of everything
// from the signature onward, the way a real DEX toolchain would after
// writing the rest of the file.
func finalize(buf []byte) []byte {
	checksum := adler32.Checksum(buf[offSignature:])
	engine.PutUint32(buf[offChecksum:], checksum)

	return buf
}

// EmptyDex returns a header-only DEX buffer carrying the literal
// checksum, signature, version, and file_size of a known-good empty DEX
// file. Its checksum field is the historical recorded value, not the
// adler32 of this buffer's own (absent) pool data, so callers must parse
// it with header.ParseSkipChecksum rather than header.Parse.
func EmptyDex() []byte {
	buf := newHeader()

	engine.PutUint32(buf[offFileSize:], 140)

	signature, err := hex.DecodeString("1D9C3F88730D0ED6CAA377D4520465E7322D365A")
	if err != nil {
		panic(err)
	}
	copy(buf[offSignature:], signature)

	engine.PutUint32(buf[offChecksum:], 0xD9700BBE)

	return buf
}

// StringsDex returns a DEX buffer with a nine-entry string pool and a
// four-entry type pool, reproducing the strings[1], strings[4],
// strings[8], and types[3] worked example.
func StringsDex() []byte {
	buf := newHeader()

	const numStrings = 9
	const numTypes = 4

	stringIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numStrings*4)...)

	typeIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numTypes*4)...)

	fillers := []string{"a", "b", "c", "d", "e", "f"}
	fillerIdx := 0
	nextFiller := func() string {
		s := fillers[fillerIdx]
		fillerIdx++
		return s
	}

	stringOffs := make([]uint32, numStrings)
	var off uint32

	for i := 0; i < numStrings; i++ {
		var s string
		switch i {
		case 1:
			s = "Anthy :)"
		case 4:
			s = "Hello World! :)"
		case 8:
			s = "Ltest/klass;"
		default:
			s = nextFiller()
		}

		buf, off = appendStringData(buf, s)
		stringOffs[i] = off
	}

	for i, o := range stringOffs {
		engine.PutUint32(buf[int(stringIDsOff)+i*4:], o)
	}

	// types[0..2] reference filler strings; types[3] is the one under test.
	typeDescriptors := [numTypes]uint32{0, 2, 3, 8}
	for i, descIdx := range typeDescriptors {
		engine.PutUint32(buf[int(typeIDsOff)+i*4:], descIdx)
	}

	engine.PutUint32(buf[offStringsSz:], numStrings)
	engine.PutUint32(buf[offStringsOff:], stringIDsOff)
	engine.PutUint32(buf[offTypesSz:], numTypes)
	engine.PutUint32(buf[offTypesOff:], typeIDsOff)
	engine.PutUint32(buf[offFileSize:], uint32(len(buf)))

	return finalize(buf)
}

// MinDex returns a DEX buffer with two protos, two fields, and three
// methods, reproducing the protos[1]/fields[0..1]/methods[0..2] worked
// example: a void no-arg constructor shared by two classes and a single
// one-parameter "helloWorld" method.
func MinDex() []byte {
	buf := newHeader()

	// type descriptors, in pool order.
	descriptors := []string{
		"V",                  // 0: void
		"I",                  // 1: int
		"Ljava/lang/String;", // 2
		"Ljava/lang/Object;", // 3
		"Ltest/klass;",       // 4
	}
	const (
		tVoid   = 0
		tInt    = 1
		tString = 2
		tObject = 3
		tKlass  = 4
	)

	names := []string{
		"V",  // shorty for ()V
		"I",
		"Ljava/lang/String;",
		"Ljava/lang/Object;",
		"Ltest/klass;",
		"<init>",
		"helloWorld",
		"CONSTANT",
		"CONST_STR",
		"VL", // shorty for (Ljava/lang/Object;)V
	}
	const (
		sShortyV  = 0
		sInit     = 5
		sHello    = 6
		sConstant = 7
		sConstStr = 8
		sShortyVL = 9
	)

	numStrings := uint32(len(names))
	numTypes := uint32(5)

	stringIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numStrings*4)...)

	typeIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numTypes*4)...)

	// type_list for proto[1]'s single parameter, "Ljava/lang/Object;".
	typeListOff := uint32(len(buf))
	buf = append(buf, make([]byte, 4+2)...)
	engine.PutUint32(buf[typeListOff:], 1)
	engine.PutUint16(buf[typeListOff+4:], tObject)

	const numProtos = 2
	protoIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numProtos*12)...)

	const numFields = 2
	fieldIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numFields*8)...)

	const numMethods = 3
	methodIDsOff := uint32(len(buf))
	buf = append(buf, make([]byte, numMethods*8)...)

	stringOffs := make([]uint32, numStrings)
	var off uint32
	for i, s := range names {
		buf, off = appendStringData(buf, s)
		stringOffs[i] = off
	}
	for i, o := range stringOffs {
		engine.PutUint32(buf[int(stringIDsOff)+i*4:], o)
	}

	for i := range descriptors {
		engine.PutUint32(buf[int(typeIDsOff)+i*4:], uint32(i))
	}

	// proto[0]: shorty "V", return V, no parameters.
	engine.PutUint32(buf[protoIDsOff:], sShortyV)
	engine.PutUint32(buf[protoIDsOff+4:], tVoid)
	engine.PutUint32(buf[protoIDsOff+8:], 0)

	// proto[1]: shorty "VL", return V, parameters = [Ljava/lang/Object;].
	engine.PutUint32(buf[protoIDsOff+12:], sShortyVL)
	engine.PutUint32(buf[protoIDsOff+16:], tVoid)
	engine.PutUint32(buf[protoIDsOff+20:], typeListOff)

	// field[0]: Ltest/klass;, I, CONSTANT
	engine.PutUint16(buf[fieldIDsOff:], tKlass)
	engine.PutUint16(buf[fieldIDsOff+2:], tInt)
	engine.PutUint32(buf[fieldIDsOff+4:], sConstant)

	// field[1]: Ltest/klass;, Ljava/lang/String;, CONST_STR
	engine.PutUint16(buf[fieldIDsOff+8:], tKlass)
	engine.PutUint16(buf[fieldIDsOff+10:], tString)
	engine.PutUint32(buf[fieldIDsOff+12:], sConstStr)

	// method[0]: Ljava/lang/Object;, <init>, ()V
	engine.PutUint16(buf[methodIDsOff:], tObject)
	engine.PutUint16(buf[methodIDsOff+2:], 0) // proto 0
	engine.PutUint32(buf[methodIDsOff+4:], sInit)

	// method[1]: Ltest/klass;, <init>, ()V
	engine.PutUint16(buf[methodIDsOff+8:], tKlass)
	engine.PutUint16(buf[methodIDsOff+10:], 0) // proto 0
	engine.PutUint32(buf[methodIDsOff+12:], sInit)

	// method[2]: Ltest/klass;, helloWorld, (Ljava/lang/Object;)V
	engine.PutUint16(buf[methodIDsOff+16:], tKlass)
	engine.PutUint16(buf[methodIDsOff+18:], 1) // proto 1
	engine.PutUint32(buf[methodIDsOff+20:], sHello)

	engine.PutUint32(buf[offStringsSz:], numStrings)
	engine.PutUint32(buf[offStringsOff:], stringIDsOff)
	engine.PutUint32(buf[offTypesSz:], numTypes)
	engine.PutUint32(buf[offTypesOff:], typeIDsOff)
	engine.PutUint32(buf[offProtosSz:], numProtos)
	engine.PutUint32(buf[offProtosOff:], protoIDsOff)
	engine.PutUint32(buf[offFieldsSz:], numFields)
	engine.PutUint32(buf[offFieldsOff:], fieldIDsOff)
	engine.PutUint32(buf[offMethodsSz:], numMethods)
	engine.PutUint32(buf[offMethodsOff:], methodIDsOff)
	engine.PutUint32(buf[offFileSize:], uint32(len(buf)))

	return finalize(buf)
}
