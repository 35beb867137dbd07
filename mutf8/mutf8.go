// Package mutf8 implements the Modified UTF-8 codec DEX string_data_item
// records use: a 1/2/3-byte lead-byte encoding that differs from standard
// UTF-8 only in how it represents U+0000 and in rejecting supplementary
// code points (U+10000 and above), which it has no encoding for.
package mutf8

import (
	"unicode/utf8"

	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/internal/pool"
)

// Decode converts a MUTF-8 byte sequence to a Go string. It fails with
// errs.ErrInvalidMUTF8 if a lead byte doesn't match one of the three
// recognized forms.
func Decode(data []byte) (string, error) {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	buf.Grow(len(data))

	i := 0
	for i < len(data) {
		lead := data[i]

		switch {
		case lead&0x80 == 0:
			buf.Grow(utf8.UTFMax)
			buf.B = utf8.AppendRune(buf.B, rune(lead))
			i++

		case lead&0xE0 == 0xC0:
			if i+1 >= len(data) || data[i+1]&0xC0 != 0x80 {
				return "", errs.ErrInvalidMUTF8
			}
			r := rune(lead&0x1F)<<6 | rune(data[i+1]&0x3F)
			buf.Grow(utf8.UTFMax)
			buf.B = utf8.AppendRune(buf.B, r)
			i += 2

		case lead&0xF0 == 0xE0:
			if i+2 >= len(data) || data[i+1]&0xC0 != 0x80 || data[i+2]&0xC0 != 0x80 {
				return "", errs.ErrInvalidMUTF8
			}
			r := rune(lead&0x0F)<<12 | rune(data[i+1]&0x3F)<<6 | rune(data[i+2]&0x3F)
			buf.Grow(utf8.UTFMax)
			buf.B = utf8.AppendRune(buf.B, r)
			i += 3

		default:
			return "", errs.ErrInvalidMUTF8
		}
	}

	return string(buf.B), nil
}

// Encode converts s to MUTF-8 bytes. It fails with errs.ErrInvalidCodepoint
// if s contains a code point above U+FFFF, since this codec doesn't
// implement the six-byte surrogate-pair form DEX uses for those.
func Encode(s string) ([]byte, error) {
	buf := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(buf)

	buf.Grow(len(s))

	for _, r := range s {
		if r > 0xFFFF {
			return nil, errs.ErrInvalidCodepoint
		}

		switch {
		case r == 0:
			buf.Grow(2)
			buf.WriteByte(0xC0)
			buf.WriteByte(0x80)

		case r <= 0x7F:
			buf.Grow(1)
			buf.WriteByte(byte(r))

		case r <= 0x7FF:
			buf.Grow(2)
			buf.WriteByte(0xC0 | byte(r>>6))
			buf.WriteByte(0x80 | byte(r&0x3F))

		default:
			buf.Grow(3)
			buf.WriteByte(0xE0 | byte(r>>12))
			buf.WriteByte(0x80 | byte((r>>6)&0x3F))
			buf.WriteByte(0x80 | byte(r&0x3F))
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
