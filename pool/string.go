package pool

import (
	"unicode/utf16"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/leb128"
	"github.com/yntha/godex/mutf8"
	"github.com/yntha/godex/record"
)

// StringItem is a tagged variant over a string pool entry: it starts as a
// lazy handle carrying only the string_id's on-disk offset, and becomes
// loaded the first time Value is called (or immediately, if the pool was
// built in eager mode).
type StringItem struct {
	ID            int
	StringDataOff uint32

	loaded    bool
	decoded   string
	utf16Size uint64
	size      int
}

// UTF16Size returns the number of UTF-16 code units the decoded string
// contains, valid only once the item is loaded.
func (s *StringItem) UTF16Size() uint64 {
	return s.utf16Size
}

// IsLoaded reports whether the string's decoded value has been resolved.
func (s *StringItem) IsLoaded() bool {
	return s.loaded
}

// Size returns the on-disk span of the string_data_item in bytes, valid
// only once the item is loaded.
func (s *StringItem) Size() int {
	return s.size
}

// Value forces resolution of the string's decoded form, reading from
// source at StringDataOff if the item is still lazy, and returns the
// cached value on every subsequent call.
func (s *StringItem) Value(source []byte) (string, error) {
	if s.loaded {
		return s.decoded, nil
	}

	if int(s.StringDataOff) > len(source) {
		return "", errs.ErrEndOfStream
	}

	sd, err := record.ParseStringData(source[s.StringDataOff:])
	if err != nil {
		return "", err
	}

	decoded, err := mutf8.Decode(sd.Bytes)
	if err != nil {
		return "", err
	}

	s.decoded = decoded
	s.utf16Size = sd.UTF16Size
	s.size = sd.Size
	s.loaded = true

	return s.decoded, nil
}

// SetValue replaces the string's Unicode value, re-encoding it to MUTF-8
// and recomputing the recorded size and UTF-16 code unit count. The
// string_data_off field is left unchanged; callers that persist the pool
// are responsible for relocating the on-disk bytes.
//
// utf16Size is set to the UTF-16 code unit count of v, not the encoded
// byte length — see TestStringItem_SetValue_UTF16SizeIsCodeUnitsNotBytes
// in pool_test.go for why the two diverge on non-ASCII input.
func (s *StringItem) SetValue(v string) error {
	encoded, err := mutf8.Encode(v)
	if err != nil {
		return err
	}

	s.decoded = v
	s.utf16Size = uint64(len(utf16.Encode([]rune(v))))
	s.size = leb128.SizeofULEB128(s.utf16Size) + len(encoded)
	s.loaded = true

	return nil
}

// StringPool is the resolved string_ids table: one StringItem per entry,
// in file order.
type StringPool struct {
	Items []*StringItem
}

// NewStringPool parses the string_ids table of size entries starting at
// off. When eager is true, every item's value is resolved immediately
// (the "no_lazy_load" path of spec.md §4.5.1); otherwise items remain
// lazy handles until first use.
func NewStringPool(data []byte, engine endian.EndianEngine, off, size uint32, eager bool) (*StringPool, error) {
	items := make([]*StringItem, size)

	for i := uint32(0); i < size; i++ {
		recOff := off + i*record.StringIDSize
		if int(recOff+record.StringIDSize) > len(data) {
			return nil, errs.ErrEndOfStream
		}

		id, err := record.ParseStringID(data[recOff:recOff+record.StringIDSize], engine)
		if err != nil {
			return nil, err
		}

		item := &StringItem{ID: int(i), StringDataOff: id.StringDataOff}

		if eager {
			if _, err := item.Value(data); err != nil {
				return nil, err
			}
		}

		items[i] = item
	}

	return &StringPool{Items: items}, nil
}

// Get returns the string item at idx, failing with errs.ErrIndexOutOfRange
// if idx is out of bounds.
func (p *StringPool) Get(idx uint32) (*StringItem, error) {
	if int(idx) >= len(p.Items) {
		return nil, errs.ErrIndexOutOfRange
	}

	return p.Items[idx], nil
}

// Len returns the number of entries in the pool.
func (p *StringPool) Len() int {
	return len(p.Items)
}

// LoadAll forces resolution of every item's value, as NewStringPool(eager)
// would have, for a pool constructed lazily.
func (p *StringPool) LoadAll(source []byte) error {
	for _, item := range p.Items {
		if _, err := item.Value(source); err != nil {
			return err
		}
	}

	return nil
}
