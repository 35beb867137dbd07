// Package errs defines the sentinel errors returned by the godex parsers.
//
// Every parsing failure resolves to one of these values, or wraps one via
// fmt.Errorf("...: %w", errs.ErrXxx), so callers can discriminate on the
// failure with errors.Is rather than string matching.
package errs

import "errors"

var (
	// ErrInvalidMagic is returned when the header's magic bytes don't start
	// with "dex\n" or don't end with a NUL terminator.
	ErrInvalidMagic = errors.New("godex: invalid magic")

	// ErrInvalidChecksum is returned when the header's adler32 checksum
	// doesn't match the checksum computed over the rest of the file.
	ErrInvalidChecksum = errors.New("godex: invalid checksum")

	// ErrInvalidEndianTag is returned when the header's endian_tag field
	// matches neither byte-order sentinel.
	ErrInvalidEndianTag = errors.New("godex: invalid endian tag")

	// ErrInvalidHeaderSize is returned when the header's header_size field
	// isn't 0x70.
	ErrInvalidHeaderSize = errors.New("godex: invalid header size")

	// ErrInvalidTypesSize is returned when the type_ids pool size is
	// 0xFFFF or larger.
	ErrInvalidTypesSize = errors.New("godex: invalid type_ids size")

	// ErrInvalidProtosSize is returned when the proto_ids pool size is
	// 0xFFFF or larger.
	ErrInvalidProtosSize = errors.New("godex: invalid proto_ids size")

	// ErrInvalidDataSize is returned when the header's data_size field
	// isn't a multiple of the word size.
	ErrInvalidDataSize = errors.New("godex: invalid data size")

	// ErrInvalidMUTF8 is returned when a MUTF-8 byte sequence starts with
	// a lead byte that isn't recognized.
	ErrInvalidMUTF8 = errors.New("godex: invalid mutf-8 sequence")

	// ErrInvalidCodepoint is returned when encoding a code point above
	// 0xFFFF, which MUTF-8 cannot represent.
	ErrInvalidCodepoint = errors.New("godex: invalid code point for mutf-8 encoding")

	// ErrIndexOutOfRange is returned when a pool cross-reference (a
	// *_idx field) points past the end of its target pool.
	ErrIndexOutOfRange = errors.New("godex: index out of range")

	// ErrEndOfStream is returned when a read would advance the cursor
	// past the end of the underlying buffer.
	ErrEndOfStream = errors.New("godex: end of stream")

	// ErrInvalidValueFormat is returned when an encoded_value lead byte's
	// value_type bits don't match any known format.
	ErrInvalidValueFormat = errors.New("godex: invalid encoded value format")
)
