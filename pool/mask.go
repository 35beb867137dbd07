package pool

// Mask tracks which pools have been resolved for a DEX view. Parsers
// declare prerequisite bits and lazily trigger them in dependency order:
// HEADER → STRINGS → TYPES → {PROTOS, FIELDS} → METHODS.
type Mask uint8

const (
	Header Mask = 1 << iota
	Strings
	Types
	Protos
	Fields
	Methods
)

// Has reports whether every bit in want is set in m.
func (m Mask) Has(want Mask) bool {
	return m&want == want
}

// Set returns m with every bit in add set.
func (m Mask) Set(add Mask) Mask {
	return m | add
}
