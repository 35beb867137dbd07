package pool

import (
	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/internal/xindex"
	"github.com/yntha/godex/record"
)

// FieldItem is a resolved field_id_item: the declaring class, field type,
// and name, each resolved against their pools.
type FieldItem struct {
	ID       int
	ClassIdx uint16
	TypeIdx  uint16
	NameIdx  uint32

	Class *TypeItem
	Type  *TypeItem
	Name  *StringItem
}

// Render returns the field rendered as "{class}->{name}:{type}".
func (f *FieldItem) Render(source []byte) (string, error) {
	class, err := f.Class.Render(source)
	if err != nil {
		return "", err
	}

	name, err := f.Name.Value(source)
	if err != nil {
		return "", err
	}

	typ, err := f.Type.Render(source)
	if err != nil {
		return "", err
	}

	return class + "->" + name + ":" + typ, nil
}

// FieldPool is the resolved field_ids table, with a (class, name) → index
// reverse lookup built alongside the forward slice.
type FieldPool struct {
	Items []*FieldItem

	index *xindex.Index
}

// NewFieldPool parses the field_ids table of size entries starting at
// off, resolving class_idx and type_idx against types and name_idx
// against strings, and builds the (class, name) reverse index used by
// IndexOfName.
func NewFieldPool(data []byte, engine endian.EndianEngine, off, size uint32, strings *StringPool, types *TypePool) (*FieldPool, error) {
	items := make([]*FieldItem, size)
	index := xindex.New(int(size))

	for i := uint32(0); i < size; i++ {
		recOff := off + i*record.FieldIDSize
		if int(recOff+record.FieldIDSize) > len(data) {
			return nil, errs.ErrEndOfStream
		}

		id, err := record.ParseFieldID(data[recOff:recOff+record.FieldIDSize], engine)
		if err != nil {
			return nil, err
		}

		class, err := types.Get(uint32(id.ClassIdx))
		if err != nil {
			return nil, err
		}

		typ, err := types.Get(uint32(id.TypeIdx))
		if err != nil {
			return nil, err
		}

		name, err := strings.Get(id.NameIdx)
		if err != nil {
			return nil, err
		}

		items[i] = &FieldItem{
			ID:       int(i),
			ClassIdx: id.ClassIdx,
			TypeIdx:  id.TypeIdx,
			NameIdx:  id.NameIdx,
			Class:    class,
			Type:     typ,
			Name:     name,
		}

		classDesc, err := class.Render(data)
		if err != nil {
			return nil, err
		}
		nameVal, err := name.Value(data)
		if err != nil {
			return nil, err
		}
		index.Set(fieldKey(classDesc, nameVal), i)
	}

	return &FieldPool{Items: items, index: index}, nil
}

// IndexOfName returns the pool position of the field declared on class
// with the given name.
func (p *FieldPool) IndexOfName(class, name string) (uint32, bool) {
	return p.index.Lookup(fieldKey(class, name))
}

func fieldKey(class, name string) string {
	return class + "->" + name
}

// Get returns the field item at idx, failing with errs.ErrIndexOutOfRange
// if idx is out of bounds.
func (p *FieldPool) Get(idx uint32) (*FieldItem, error) {
	if int(idx) >= len(p.Items) {
		return nil, errs.ErrIndexOutOfRange
	}

	return p.Items[idx], nil
}

// Len returns the number of entries in the pool.
func (p *FieldPool) Len() int {
	return len(p.Items)
}
