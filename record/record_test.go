package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
)

func TestParseStringID(t *testing.T) {
	data := []byte{0x10, 0x00, 0x00, 0x00}

	id, err := ParseStringID(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint32(0x10), id.StringDataOff)
}

func TestParseStringID_WrongSize(t *testing.T) {
	_, err := ParseStringID([]byte{0x01, 0x02}, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestParseTypeID(t *testing.T) {
	data := []byte{0x05, 0x00, 0x00, 0x00}

	id, err := ParseTypeID(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint32(5), id.DescriptorIdx)
}

func TestParseProtoID(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	id, err := ParseProtoID(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint32(1), id.ShortyIdx)
	assert.Equal(t, uint32(2), id.ReturnTypeIdx)
	assert.Equal(t, uint32(0), id.ParametersOff)
}

func TestParseFieldID(t *testing.T) {
	data := []byte{
		0x03, 0x00, // class_idx
		0x04, 0x00, // type_idx
		0x05, 0x00, 0x00, 0x00, // name_idx
	}

	id, err := ParseFieldID(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint16(3), id.ClassIdx)
	assert.Equal(t, uint16(4), id.TypeIdx)
	assert.Equal(t, uint32(5), id.NameIdx)
}

func TestParseMethodID(t *testing.T) {
	data := []byte{
		0x03, 0x00, // class_idx
		0x04, 0x00, // proto_idx
		0x05, 0x00, 0x00, 0x00, // name_idx
	}

	id, err := ParseMethodID(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, uint16(3), id.ClassIdx)
	assert.Equal(t, uint16(4), id.ProtoIdx)
	assert.Equal(t, uint32(5), id.NameIdx)
}

func TestParseTypeList(t *testing.T) {
	data := []byte{
		0x02, 0x00, 0x00, 0x00, // length = 2
		0x01, 0x00,
		0x02, 0x00,
		0xAA, // trailing byte beyond the list
	}

	tl, consumed, err := ParseTypeList(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2}, tl.TypeIdxs)
	assert.Equal(t, 8, consumed)
}

func TestParseTypeList_Empty(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00}

	tl, consumed, err := ParseTypeList(data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	assert.Empty(t, tl.TypeIdxs)
	assert.Equal(t, 4, consumed)
}

func TestParseTypeList_Truncated(t *testing.T) {
	data := []byte{0x02, 0x00, 0x00, 0x00, 0x01, 0x00}

	_, _, err := ParseTypeList(data, endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}

func TestParseStringData(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0x00, 0xAA}

	sd, err := ParseStringData(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), sd.UTF16Size)
	assert.Equal(t, []byte("hello"), sd.Bytes)
	assert.Equal(t, 6, sd.Size)
}

func TestParseStringData_MissingNul(t *testing.T) {
	data := []byte{0x05, 'h', 'e', 'l', 'l', 'o'}

	_, err := ParseStringData(data)
	require.ErrorIs(t, err, errs.ErrEndOfStream)
}
