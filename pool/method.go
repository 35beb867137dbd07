package pool

import (
	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/internal/xindex"
	"github.com/yntha/godex/record"
)

// MethodItem is a resolved method_id_item: the declaring class, prototype,
// and name, each resolved against their pools.
type MethodItem struct {
	ID       int
	ClassIdx uint16
	ProtoIdx uint16
	NameIdx  uint32

	Class *TypeItem
	Proto *ProtoItem
	Name  *StringItem
}

// Render returns the method rendered as "{class}->{name}{proto}", where
// proto renders as "(param0...)ret".
func (m *MethodItem) Render(source []byte) (string, error) {
	class, err := m.Class.Render(source)
	if err != nil {
		return "", err
	}

	name, err := m.Name.Value(source)
	if err != nil {
		return "", err
	}

	proto, err := m.Proto.Render(source)
	if err != nil {
		return "", err
	}

	return class + "->" + name + proto, nil
}

// MethodPool is the resolved method_ids table, with a (class, name) →
// index reverse lookup built alongside the forward slice.
type MethodPool struct {
	Items []*MethodItem

	index *xindex.Index
}

// NewMethodPool parses the method_ids table of size entries starting at
// off, resolving class_idx against types, proto_idx against protos, and
// name_idx against strings, and builds the (class, name) reverse index
// used by IndexOfName.
func NewMethodPool(data []byte, engine endian.EndianEngine, off, size uint32, strings *StringPool, types *TypePool, protos *ProtoPool) (*MethodPool, error) {
	items := make([]*MethodItem, size)
	index := xindex.New(int(size))

	for i := uint32(0); i < size; i++ {
		recOff := off + i*record.MethodIDSize
		if int(recOff+record.MethodIDSize) > len(data) {
			return nil, errs.ErrEndOfStream
		}

		id, err := record.ParseMethodID(data[recOff:recOff+record.MethodIDSize], engine)
		if err != nil {
			return nil, err
		}

		class, err := types.Get(uint32(id.ClassIdx))
		if err != nil {
			return nil, err
		}

		proto, err := protos.Get(uint32(id.ProtoIdx))
		if err != nil {
			return nil, err
		}

		name, err := strings.Get(id.NameIdx)
		if err != nil {
			return nil, err
		}

		items[i] = &MethodItem{
			ID:       int(i),
			ClassIdx: id.ClassIdx,
			ProtoIdx: id.ProtoIdx,
			NameIdx:  id.NameIdx,
			Class:    class,
			Proto:    proto,
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
		index.Set(methodKey(classDesc, nameVal), i)
	}

	return &MethodPool{Items: items, index: index}, nil
}

// IndexOfName returns the pool position of the method declared on class
// with the given name. Overloaded methods (same class and name, distinct
// protos) collide on this key; the reverse index keeps the last one
// scanned, matching xindex.Index.Set's documented collision behavior.
func (p *MethodPool) IndexOfName(class, name string) (uint32, bool) {
	return p.index.Lookup(methodKey(class, name))
}

func methodKey(class, name string) string {
	return class + "->" + name
}

// Get returns the method item at idx, failing with errs.ErrIndexOutOfRange
// if idx is out of bounds.
func (p *MethodPool) Get(idx uint32) (*MethodItem, error) {
	if int(idx) >= len(p.Items) {
		return nil, errs.ErrIndexOutOfRange
	}

	return p.Items[idx], nil
}

// Len returns the number of entries in the pool.
func (p *MethodPool) Len() int {
	return len(p.Items)
}
