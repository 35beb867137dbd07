// Package value implements the encoded_value reader: a tagged dispatch
// over the value_type discriminator of spec.md §4.6, producing a
// branch-specific payload rather than a single catch-all field.
package value

import (
	"math"

	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/format"
	"github.com/yntha/godex/stream"
)

// Value is one decoded encoded_value: its format tag, the exact byte span
// it occupied, and the payload for that format. Exactly one of the
// payload fields is meaningful, selected by Format.
type Value struct {
	Format format.ValueFormat
	Offset int
	Size   int
	Data   []byte

	Int        int64       // BYTE, SHORT, CHAR, INT, LONG
	Float      float64     // FLOAT, DOUBLE
	Index      uint32      // METHOD_TYPE, METHOD_HANDLE, STRING, TYPE, FIELD, METHOD, ENUM
	Bool       bool        // BOOLEAN
	Array      []Value     // ARRAY
	Annotation *Annotation // ANNOTATION
}

// Annotation is an encoded_annotation: a type index plus name/value pairs.
//
// This core does not resolve element names (that requires the
// annotations_directory, out of scope here); NameIdxs holds the raw
// string pool indices for callers that do.
type Annotation struct {
	TypeIdx  uint32
	NameIdxs []uint32
	Values   []Value
}

// Read decodes a single encoded_value starting at the reader's current
// position, recording the total byte span (offset, size, and the bytes
// themselves) so callers can locate the exact on-disk bytes.
func Read(r *stream.Reader) (Value, error) {
	startOff := r.Tell()

	lead, err := r.ReadU8()
	if err != nil {
		return Value{}, err
	}

	vf, arg := format.Tag(lead)
	payloadLen := int(arg) + 1

	v := Value{Format: vf, Offset: startOff}

	switch vf {
	case format.ValueByte, format.ValueShort, format.ValueChar, format.ValueInt, format.ValueLong:
		raw, err := readSignExtended(r, payloadLen, vf == format.ValueChar)
		if err != nil {
			return Value{}, err
		}
		v.Int = raw

	case format.ValueFloat:
		bits, err := readRightZeroExtended(r, payloadLen, 4)
		if err != nil {
			return Value{}, err
		}
		v.Float = float64(math.Float32frombits(uint32(bits)))

	case format.ValueDouble:
		bits, err := readRightZeroExtended(r, payloadLen, 8)
		if err != nil {
			return Value{}, err
		}
		v.Float = math.Float64frombits(bits)

	case format.ValueMethodType, format.ValueMethodHndl, format.ValueString,
		format.ValueType, format.ValueField, format.ValueMethod, format.ValueEnum:
		idx, err := readLeftZeroExtended(r, payloadLen)
		if err != nil {
			return Value{}, err
		}
		v.Index = uint32(idx)

	case format.ValueArray:
		arr, err := readArray(r)
		if err != nil {
			return Value{}, err
		}
		v.Array = arr

	case format.ValueAnnotation:
		ann, err := readAnnotation(r)
		if err != nil {
			return Value{}, err
		}
		v.Annotation = ann

	case format.ValueNull:
		// no payload

	case format.ValueBoolean:
		v.Bool = arg&1 != 0

	default:
		return Value{}, errs.ErrInvalidValueFormat
	}

	endOff := r.Tell()
	v.Size = endOff - startOff

	data, err := r.PeekAt(startOff, v.Size)
	if err != nil {
		return Value{}, err
	}
	v.Data = data

	return v, nil
}

// readSignExtended reads n bytes and sign-extends (or zero-extends, for
// VALUE_CHAR) them to an int64.
func readSignExtended(r *stream.Reader, n int, unsigned bool) (int64, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}

	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}

	if unsigned {
		return int64(u), nil
	}

	shift := 64 - uint(n)*8
	return int64(u<<shift) >> shift, nil
}

// readRightZeroExtended reads n bytes and zero-extends them on the right
// (least-significant end) to width bytes, as spec.md §4.6 requires for
// float/double payloads shorter than their full width.
func readRightZeroExtended(r *stream.Reader, n, width int) (uint64, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}

	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}

	return u << uint((width-n)*8), nil
}

// readLeftZeroExtended reads n bytes and zero-extends them to a uint32
// index value.
func readLeftZeroExtended(r *stream.Reader, n int) (uint64, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}

	var u uint64
	for i := n - 1; i >= 0; i-- {
		u = u<<8 | uint64(b[i])
	}

	return u, nil
}

func readArray(r *stream.Reader) ([]Value, error) {
	size, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}

	out := make([]Value, size)
	for i := range out {
		v, err := Read(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func readAnnotation(r *stream.Reader) (*Annotation, error) {
	typeIdx, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}

	count, err := r.ReadULEB128()
	if err != nil {
		return nil, err
	}

	ann := &Annotation{
		TypeIdx:  uint32(typeIdx),
		NameIdxs: make([]uint32, count),
		Values:   make([]Value, count),
	}

	for i := uint64(0); i < count; i++ {
		nameIdx, err := r.ReadULEB128()
		if err != nil {
			return nil, err
		}
		ann.NameIdxs[i] = uint32(nameIdx)

		v, err := Read(r)
		if err != nil {
			return nil, err
		}
		ann.Values[i] = v
	}

	return ann, nil
}
