package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/format"
	"github.com/yntha/godex/stream"
)

func reader(b []byte) *stream.Reader {
	return stream.NewReader(b, endian.GetLittleEndianEngine())
}

func TestRead_Byte(t *testing.T) {
	// value_arg=0 -> 1-byte payload, value_type=0x00 (BYTE)
	r := reader([]byte{0x00, 0x7F})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueByte, v.Format)
	assert.Equal(t, int64(0x7F), v.Int)
	assert.Equal(t, 2, v.Size)
	assert.Equal(t, 0, v.Offset)
}

func TestRead_Byte_Negative(t *testing.T) {
	r := reader([]byte{0x00, 0xFF})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.Int)
}

func TestRead_Short_TwoBytes(t *testing.T) {
	// value_arg=1 -> payload_len=2, value_type=0x02 (SHORT)
	lead := byte(1<<5 | 0x02)
	r := reader([]byte{lead, 0x34, 0x12})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueShort, v.Format)
	assert.Equal(t, int64(0x1234), v.Int)
}

func TestRead_Char_IsUnsigned(t *testing.T) {
	// CHAR is zero-extended, not sign-extended.
	lead := byte(0x03)
	r := reader([]byte{lead, 0xFF})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueChar, v.Format)
	assert.Equal(t, int64(0xFF), v.Int)
}

func TestRead_Int_FourBytes(t *testing.T) {
	lead := byte(3<<5 | 0x04)
	r := reader([]byte{lead, 0x01, 0x00, 0x00, 0x80})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueInt, v.Format)
	assert.Equal(t, int64(int32(uint32(0x80000001))), v.Int)
}

func TestRead_Long_EightBytes(t *testing.T) {
	lead := byte(7<<5 | 0x06)
	r := reader([]byte{lead, 1, 0, 0, 0, 0, 0, 0, 0})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueLong, v.Format)
	assert.Equal(t, int64(1), v.Int)
}

func TestRead_Float_RightZeroExtended(t *testing.T) {
	// One payload byte 0x3F -> right-zero-extended to 0x3F000000, which as
	// float32 bits is the smallest representable positive value in that
	// leading byte (just check it decodes without error and is stable).
	lead := byte(0x10) // value_arg=0, payload_len=1
	r := reader([]byte{lead, 0x3F})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueFloat, v.Format)

	// Re-derive expectation from the same right-extension rule.
	bits := uint32(0x3F) << 24
	expected := float64(math.Float32frombits(bits))
	assert.Equal(t, expected, v.Float)
}

func TestRead_Double_FullWidth(t *testing.T) {
	lead := byte(7<<5 | 0x11)
	// 1.0 in IEEE-754 double, little-endian bytes.
	r := reader([]byte{lead, 0, 0, 0, 0, 0, 0, 0xF0, 0x3F})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueDouble, v.Format)
	assert.Equal(t, 1.0, v.Float)
}

func TestRead_StringIndex(t *testing.T) {
	lead := byte(1<<5 | 0x17)
	r := reader([]byte{lead, 0x05, 0x00})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueString, v.Format)
	assert.Equal(t, uint32(5), v.Index)
}

func TestRead_Null_NoPayload(t *testing.T) {
	r := reader([]byte{0x1E})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueNull, v.Format)
	assert.Equal(t, 1, v.Size)
}

func TestRead_Boolean_ArgEncodesValue(t *testing.T) {
	trueLead := byte(1<<5 | 0x1F)
	r := reader([]byte{trueLead})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueBoolean, v.Format)
	assert.True(t, v.Bool)

	falseLead := byte(0x1F)
	r2 := reader([]byte{falseLead})

	v2, err := Read(r2)
	require.NoError(t, err)
	assert.False(t, v2.Bool)
}

func TestRead_Array(t *testing.T) {
	// size=2 (ULEB128), then two BYTE values.
	lead := byte(0x1C)
	r := reader([]byte{lead, 0x02, 0x00, 0x01, 0x00, 0x02})

	v, err := Read(r)
	require.NoError(t, err)
	assert.Equal(t, format.ValueArray, v.Format)
	require.Len(t, v.Array, 2)
	assert.Equal(t, int64(1), v.Array[0].Int)
	assert.Equal(t, int64(2), v.Array[1].Int)
}

func TestRead_Annotation(t *testing.T) {
	// type_idx=3, size=1 element: name_idx=4, value=BYTE(9)
	lead := byte(0x1D)
	r := reader([]byte{lead, 0x03, 0x01, 0x04, 0x00, 0x09})

	v, err := Read(r)
	require.NoError(t, err)
	require.NotNil(t, v.Annotation)
	assert.Equal(t, uint32(3), v.Annotation.TypeIdx)
	require.Len(t, v.Annotation.Values, 1)
	assert.Equal(t, uint32(4), v.Annotation.NameIdxs[0])
	assert.Equal(t, int64(9), v.Annotation.Values[0].Int)
}

func TestRead_UnknownFormat(t *testing.T) {
	// 0x09 is an unused value_type.
	r := reader([]byte{0x09})

	_, err := Read(r)
	require.ErrorIs(t, err, errs.ErrInvalidValueFormat)
}

func TestRead_Truncated(t *testing.T) {
	lead := byte(3<<5 | 0x04) // expects 4 payload bytes
	r := reader([]byte{lead, 0x01})

	_, err := Read(r)
	require.Error(t, err)
}
