// Package format defines the value_type tag of a DEX encoded_value item:
// the low 5 bits of its lead byte, selecting how the remaining payload is
// interpreted.
package format

// ValueFormat is the value_type discriminator of an encoded_value.
type ValueFormat uint8

const (
	ValueByte        ValueFormat = 0x00
	ValueShort       ValueFormat = 0x02
	ValueChar        ValueFormat = 0x03
	ValueInt         ValueFormat = 0x04
	ValueLong        ValueFormat = 0x06
	ValueFloat       ValueFormat = 0x10
	ValueDouble      ValueFormat = 0x11
	ValueMethodType  ValueFormat = 0x15
	ValueMethodHndl  ValueFormat = 0x16
	ValueString      ValueFormat = 0x17
	ValueType        ValueFormat = 0x18
	ValueField       ValueFormat = 0x19
	ValueMethod      ValueFormat = 0x1A
	ValueEnum        ValueFormat = 0x1B
	ValueArray       ValueFormat = 0x1C
	ValueAnnotation  ValueFormat = 0x1D
	ValueNull        ValueFormat = 0x1E
	ValueBoolean     ValueFormat = 0x1F
)

func (f ValueFormat) String() string {
	switch f {
	case ValueByte:
		return "Byte"
	case ValueShort:
		return "Short"
	case ValueChar:
		return "Char"
	case ValueInt:
		return "Int"
	case ValueLong:
		return "Long"
	case ValueFloat:
		return "Float"
	case ValueDouble:
		return "Double"
	case ValueMethodType:
		return "MethodType"
	case ValueMethodHndl:
		return "MethodHandle"
	case ValueString:
		return "String"
	case ValueType:
		return "Type"
	case ValueField:
		return "Field"
	case ValueMethod:
		return "Method"
	case ValueEnum:
		return "Enum"
	case ValueArray:
		return "Array"
	case ValueAnnotation:
		return "Annotation"
	case ValueNull:
		return "Null"
	case ValueBoolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Tag splits an encoded_value lead byte into its value_type and value_arg
// components: value_type is the low 5 bits, value_arg the high 3 bits.
func Tag(lead byte) (ValueFormat, uint8) {
	return ValueFormat(lead & 0x1F), lead >> 5
}
