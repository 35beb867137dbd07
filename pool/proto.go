package pool

import (
	"strings"

	"github.com/yntha/godex/endian"
	"github.com/yntha/godex/errs"
	"github.com/yntha/godex/record"
)

// ProtoItem is a resolved proto_id_item: a shorty string, return type, and
// an optional parameter type_list, each resolved against their pools.
type ProtoItem struct {
	ID            int
	ShortyIdx     uint32
	ReturnTypeIdx uint32
	ParametersOff uint32

	Shorty     *StringItem
	ReturnType *TypeItem
	// Parameters is nil when ParametersOff == 0.
	Parameters []*TypeItem
}

// RenderParameters returns the parameter descriptor strings, in order.
func (p *ProtoItem) RenderParameters(source []byte) ([]string, error) {
	out := make([]string, len(p.Parameters))

	for i, t := range p.Parameters {
		s, err := t.Render(source)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

// Render returns the proto rendered as "(param0param1...)ret".
func (p *ProtoItem) Render(source []byte) (string, error) {
	params, err := p.RenderParameters(source)
	if err != nil {
		return "", err
	}

	ret, err := p.ReturnType.Render(source)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('(')
	for _, param := range params {
		b.WriteString(param)
	}
	b.WriteByte(')')
	b.WriteString(ret)

	return b.String(), nil
}

// ProtoPool is the resolved proto_ids table.
type ProtoPool struct {
	Items []*ProtoItem
}

// NewProtoPool parses the proto_ids table of size entries starting at
// off, resolving shorty_idx against strings, return_type_idx and any
// parameter type_list entries against types.
func NewProtoPool(data []byte, engine endian.EndianEngine, off, size uint32, strings *StringPool, types *TypePool) (*ProtoPool, error) {
	items := make([]*ProtoItem, size)

	for i := uint32(0); i < size; i++ {
		recOff := off + i*record.ProtoIDSize
		if int(recOff+record.ProtoIDSize) > len(data) {
			return nil, errs.ErrEndOfStream
		}

		id, err := record.ParseProtoID(data[recOff:recOff+record.ProtoIDSize], engine)
		if err != nil {
			return nil, err
		}

		shorty, err := strings.Get(id.ShortyIdx)
		if err != nil {
			return nil, err
		}

		returnType, err := types.Get(id.ReturnTypeIdx)
		if err != nil {
			return nil, err
		}

		item := &ProtoItem{
			ID:            int(i),
			ShortyIdx:     id.ShortyIdx,
			ReturnTypeIdx: id.ReturnTypeIdx,
			ParametersOff: id.ParametersOff,
			Shorty:        shorty,
			ReturnType:    returnType,
		}

		if id.ParametersOff != 0 {
			if int(id.ParametersOff) > len(data) {
				return nil, errs.ErrEndOfStream
			}

			typeList, _, err := record.ParseTypeList(data[id.ParametersOff:], engine)
			if err != nil {
				return nil, err
			}

			params := make([]*TypeItem, len(typeList.TypeIdxs))
			for j, idx := range typeList.TypeIdxs {
				t, err := types.Get(uint32(idx))
				if err != nil {
					return nil, err
				}
				params[j] = t
			}

			item.Parameters = params
		}

		items[i] = item
	}

	return &ProtoPool{Items: items}, nil
}

// Get returns the proto item at idx, failing with errs.ErrIndexOutOfRange
// if idx is out of bounds.
func (p *ProtoPool) Get(idx uint32) (*ProtoItem, error) {
	if int(idx) >= len(p.Items) {
		return nil, errs.ErrIndexOutOfRange
	}

	return p.Items[idx], nil
}

// Len returns the number of entries in the pool.
func (p *ProtoPool) Len() int {
	return len(p.Items)
}
