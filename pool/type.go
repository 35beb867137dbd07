package pool

import (
	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/internal/xindex"
	"github.com/yntha/godex/record"
)

// TypeItem is a resolved type_id_item: its descriptor index plus a
// reference into the string pool, which may still be a lazy handle.
type TypeItem struct {
	ID            int
	DescriptorIdx uint32
	Descriptor    *StringItem
}

// Render forces and returns the type's descriptor string, e.g.
// "Ljava/lang/String;".
func (t *TypeItem) Render(source []byte) (string, error) {
	return t.Descriptor.Value(source)
}

// TypePool is the resolved type_ids table, with a descriptor → index
// reverse lookup built alongside the forward slice.
type TypePool struct {
	Items []*TypeItem

	index *xindex.Index
}

// NewTypePool parses the type_ids table of size entries starting at off,
// resolving each entry's descriptor_idx against strings, and builds the
// descriptor reverse index used by IndexOfDescriptor.
func NewTypePool(data []byte, engine endian.EndianEngine, off, size uint32, strings *StringPool) (*TypePool, error) {
	items := make([]*TypeItem, size)
	index := xindex.New(int(size))

	for i := uint32(0); i < size; i++ {
		recOff := off + i*record.TypeIDSize
		if int(recOff+record.TypeIDSize) > len(data) {
			return nil, errs.ErrEndOfStream
		}

		id, err := record.ParseTypeID(data[recOff:recOff+record.TypeIDSize], engine)
		if err != nil {
			return nil, err
		}

		descriptor, err := strings.Get(id.DescriptorIdx)
		if err != nil {
			return nil, err
		}

		items[i] = &TypeItem{ID: int(i), DescriptorIdx: id.DescriptorIdx, Descriptor: descriptor}

		rendered, err := items[i].Render(data)
		if err != nil {
			return nil, err
		}
		index.Set(rendered, i)
	}

	return &TypePool{Items: items, index: index}, nil
}

// IndexOfDescriptor returns the pool position of the type whose descriptor
// equals s.
func (p *TypePool) IndexOfDescriptor(s string) (uint32, bool) {
	return p.index.Lookup(s)
}

// Get returns the type item at idx, failing with errs.ErrIndexOutOfRange
// if idx is out of bounds.
func (p *TypePool) Get(idx uint32) (*TypeItem, error) {
	if int(idx) >= len(p.Items) {
		return nil, errs.ErrIndexOutOfRange
	}

	return p.Items[idx], nil
}

// Len returns the number of entries in the pool.
func (p *TypePool) Len() int {
	return len(p.Items)
}
