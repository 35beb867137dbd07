package mutf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yntha/godex/errs"
)

func TestDecode_ASCII(t *testing.T) {
	s, err := Decode([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestDecode_TwoByteLead(t *testing.T) {
	// U+00E9 'é' -> 0xC3 0xA9
	s, err := Decode([]byte{0xC3, 0xA9})

	require.NoError(t, err)
	assert.Equal(t, "é", s)
}

func TestDecode_ThreeByteLead(t *testing.T) {
	// U+20AC '€' -> 0xE2 0x82 0xAC
	s, err := Decode([]byte{0xE2, 0x82, 0xAC})

	require.NoError(t, err)
	assert.Equal(t, "€", s)
}

func TestDecode_NulEncodedAsTwoBytes(t *testing.T) {
	s, err := Decode([]byte{0xC0, 0x80})

	require.NoError(t, err)
	assert.Equal(t, "\x00", s)
}

func TestDecode_InvalidLeadByte(t *testing.T) {
	_, err := Decode([]byte{0xFF})

	require.ErrorIs(t, err, errs.ErrInvalidMUTF8)
}

func TestDecode_TruncatedTwoByteSequence(t *testing.T) {
	_, err := Decode([]byte{0xC3})

	require.ErrorIs(t, err, errs.ErrInvalidMUTF8)
}

func TestDecode_TruncatedThreeByteSequence(t *testing.T) {
	_, err := Decode([]byte{0xE2, 0x82})

	require.ErrorIs(t, err, errs.ErrInvalidMUTF8)
}

func TestDecode_MalformedContinuationByte(t *testing.T) {
	_, err := Decode([]byte{0xC3, 0x00})

	require.ErrorIs(t, err, errs.ErrInvalidMUTF8)
}

func TestEncode_Decode_RoundTrip(t *testing.T) {
	inputs := []string{"hello", "héllo wörld", "€uro", "\x00embedded nul"}

	for _, in := range inputs {
		encoded, err := Encode(in)
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err)

		assert.Equal(t, in, decoded)
	}
}

func TestEncode_RejectsSupplementaryCodepoint(t *testing.T) {
	// U+1F600 is above the basic multilingual plane.
	_, err := Encode("\U0001F600")

	require.ErrorIs(t, err, errs.ErrInvalidCodepoint)
}

func TestEncode_NulIsTwoBytes(t *testing.T) {
	encoded, err := Encode("\x00")

	require.NoError(t, err)
	assert.Equal(t, []byte{0xC0, 0x80}, encoded)
}
