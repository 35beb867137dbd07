package leb128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestULEB128_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 129, 300, 16384, 1 << 32, 1<<64 - 1}

	for _, v := range values {
		encoded := EncodeULEB128(nil, v)
		decoded, n := DecodeULEB128(encoded)

		assert.Equal(t, v, decoded)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, len(encoded), SizeofULEB128(v))
	}
}

func TestULEB128_KnownEncodings(t *testing.T) {
	assert.Equal(t, []byte{0x00}, EncodeULEB128(nil, 0))
	assert.Equal(t, []byte{0x7f}, EncodeULEB128(nil, 127))
	assert.Equal(t, []byte{0x80, 0x01}, EncodeULEB128(nil, 128))
	assert.Equal(t, []byte{0xe5, 0x8e, 0x26}, EncodeULEB128(nil, 624485))
}

func TestULEB128_TruncatedInput(t *testing.T) {
	_, n := DecodeULEB128([]byte{0x80, 0x80})

	assert.Equal(t, 0, n)
}

func TestSLEB128_RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 63, 64, -64, -65, 300, -300, 1 << 40, -(1 << 40)}

	for _, v := range values {
		encoded := EncodeSLEB128(nil, v)
		decoded, n := DecodeSLEB128(encoded)

		assert.Equal(t, v, decoded)
		assert.Equal(t, len(encoded), n)
		assert.Equal(t, len(encoded), SizeofSLEB128(v))
	}
}

func TestSLEB128_KnownEncodings(t *testing.T) {
	assert.Equal(t, []byte{0x00}, EncodeSLEB128(nil, 0))
	assert.Equal(t, []byte{0x02}, EncodeSLEB128(nil, 2))
	assert.Equal(t, []byte{0x7e}, EncodeSLEB128(nil, -2))
	assert.Equal(t, []byte{0xff, 0x00}, EncodeSLEB128(nil, 127))
}

func TestSLEB128_TruncatedInput(t *testing.T) {
	_, n := DecodeSLEB128([]byte{0x80, 0x80})

	assert.Equal(t, 0, n)
}

func TestEncodeULEB128_AppendsToExistingSlice(t *testing.T) {
	dst := []byte{0xAA}
	dst = EncodeULEB128(dst, 1)

	assert.Equal(t, []byte{0xAA, 0x01}, dst)
}
