package godex

import (
	"context"

	"github.com/yntha/godex/async"
	"github.com/yntha/godex/header"
	"github.com/yntha/godex/internal/options"
	"github.com/yntha/godex/pool"
	"github.com/yntha/godex/stream"
	"github.com/yntha/godex/value"
)

// ParseOption configures File construction.
type ParseOption = options.Option[*config]

type config struct {
	lazy                 bool
	prevalidatedChecksum bool
}

// WithLazyLoading controls whether pools are resolved on first use
// (lazy, the default) or eagerly during NewFile.
func WithLazyLoading(lazy bool) ParseOption {
	return options.NoError(func(c *config) { c.lazy = lazy })
}

// WithPrevalidatedChecksum skips the header's adler32 checksum
// verification, for callers that have already validated the bytes by
// another means.
func WithPrevalidatedChecksum() ParseOption {
	return options.NoError(func(c *config) { c.prevalidatedChecksum = true })
}

// File is a parsed view over one DEX file's byte contents. The underlying
// slice is held, never copied; pool items reference back into it lazily.
type File struct {
	data   []byte
	Header header.Header

	mask pool.Mask
	lazy bool

	Strings *pool.StringPool
	Types   *pool.TypePool
	Protos  *pool.ProtoPool
	Fields  *pool.FieldPool
	Methods *pool.MethodPool
}

// NewFile validates data's header and returns a File. By default pools
// are resolved lazily, on first Ensure*/accessor call; WithLazyLoading(false)
// resolves every pool immediately, in dependency order.
func NewFile(data []byte, opts ...ParseOption) (*File, error) {
	cfg := &config{lazy: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	parse := header.Parse
	if cfg.prevalidatedChecksum {
		parse = header.ParseSkipChecksum
	}

	h, err := parse(data)
	if err != nil {
		return nil, err
	}

	f := &File{data: data, Header: h, mask: pool.Header, lazy: cfg.lazy}

	if !cfg.lazy {
		if err := f.EnsureAll(); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Data returns the underlying byte slice the File was built from.
func (f *File) Data() []byte {
	return f.data
}

// EnsureStrings resolves the string pool if it hasn't been already.
func (f *File) EnsureStrings() error {
	if f.mask.Has(pool.Strings) {
		return nil
	}

	sp, err := pool.NewStringPool(f.data, f.Header.Engine, f.Header.StringIDsOff, f.Header.StringIDsSize, !f.lazy)
	if err != nil {
		return err
	}

	f.Strings = sp
	f.mask = f.mask.Set(pool.Strings)

	return nil
}

// EnsureTypes resolves the type pool, first resolving strings if needed.
func (f *File) EnsureTypes() error {
	if f.mask.Has(pool.Types) {
		return nil
	}

	if err := f.EnsureStrings(); err != nil {
		return err
	}

	tp, err := pool.NewTypePool(f.data, f.Header.Engine, f.Header.TypeIDsOff, f.Header.TypeIDsSize, f.Strings)
	if err != nil {
		return err
	}

	f.Types = tp
	f.mask = f.mask.Set(pool.Types)

	return nil
}

// EnsureProtos resolves the proto pool, first resolving types if needed.
func (f *File) EnsureProtos() error {
	if f.mask.Has(pool.Protos) {
		return nil
	}

	if err := f.EnsureTypes(); err != nil {
		return err
	}

	pp, err := pool.NewProtoPool(f.data, f.Header.Engine, f.Header.ProtoIDsOff, f.Header.ProtoIDsSize, f.Strings, f.Types)
	if err != nil {
		return err
	}

	f.Protos = pp
	f.mask = f.mask.Set(pool.Protos)

	return nil
}

// EnsureFields resolves the field pool, first resolving types if needed.
func (f *File) EnsureFields() error {
	if f.mask.Has(pool.Fields) {
		return nil
	}

	if err := f.EnsureTypes(); err != nil {
		return err
	}

	fp, err := pool.NewFieldPool(f.data, f.Header.Engine, f.Header.FieldIDsOff, f.Header.FieldIDsSize, f.Strings, f.Types)
	if err != nil {
		return err
	}

	f.Fields = fp
	f.mask = f.mask.Set(pool.Fields)

	return nil
}

// EnsureMethods resolves the method pool, first resolving protos if needed.
func (f *File) EnsureMethods() error {
	if f.mask.Has(pool.Methods) {
		return nil
	}

	if err := f.EnsureProtos(); err != nil {
		return err
	}

	mp, err := pool.NewMethodPool(f.data, f.Header.Engine, f.Header.MethodIDsOff, f.Header.MethodIDsSize, f.Strings, f.Types, f.Protos)
	if err != nil {
		return err
	}

	f.Methods = mp
	f.mask = f.mask.Set(pool.Methods)

	return nil
}

// EnsureAll resolves every pool, in dependency order.
func (f *File) EnsureAll() error {
	if err := f.EnsureFields(); err != nil {
		return err
	}

	return f.EnsureMethods()
}

// String returns the resolved string_ids entry at idx, resolving the
// string pool first if needed.
func (f *File) String(idx uint32) (*pool.StringItem, error) {
	if err := f.EnsureStrings(); err != nil {
		return nil, err
	}

	return f.Strings.Get(idx)
}

// Type returns the resolved type_ids entry at idx, resolving the type
// pool first if needed.
func (f *File) Type(idx uint32) (*pool.TypeItem, error) {
	if err := f.EnsureTypes(); err != nil {
		return nil, err
	}

	return f.Types.Get(idx)
}

// Proto returns the resolved proto_ids entry at idx, resolving the proto
// pool first if needed.
func (f *File) Proto(idx uint32) (*pool.ProtoItem, error) {
	if err := f.EnsureProtos(); err != nil {
		return nil, err
	}

	return f.Protos.Get(idx)
}

// Field returns the resolved field_ids entry at idx, resolving the field
// pool first if needed.
func (f *File) Field(idx uint32) (*pool.FieldItem, error) {
	if err := f.EnsureFields(); err != nil {
		return nil, err
	}

	return f.Fields.Get(idx)
}

// Method returns the resolved method_ids entry at idx, resolving the
// method pool first if needed.
func (f *File) Method(idx uint32) (*pool.MethodItem, error) {
	if err := f.EnsureMethods(); err != nil {
		return nil, err
	}

	return f.Methods.Get(idx)
}

// ReadEncodedValue decodes a single encoded_value starting at the given
// absolute byte offset into the File's data.
func (f *File) ReadEncodedValue(off int) (value.Value, error) {
	r := stream.NewReader(f.data, f.Header.Engine)
	r.Seek(off)

	return value.Read(r)
}

// EnsureStringsAsync offloads EnsureStrings onto a worker goroutine.
func (f *File) EnsureStringsAsync(ctx context.Context) <-chan error {
	return async.Run(ctx, f.EnsureStrings)
}

// EnsureTypesAsync offloads EnsureTypes onto a worker goroutine.
func (f *File) EnsureTypesAsync(ctx context.Context) <-chan error {
	return async.Run(ctx, f.EnsureTypes)
}

// EnsureProtosAsync offloads EnsureProtos onto a worker goroutine.
func (f *File) EnsureProtosAsync(ctx context.Context) <-chan error {
	return async.Run(ctx, f.EnsureProtos)
}

// EnsureFieldsAsync offloads EnsureFields onto a worker goroutine.
func (f *File) EnsureFieldsAsync(ctx context.Context) <-chan error {
	return async.Run(ctx, f.EnsureFields)
}

// EnsureMethodsAsync offloads EnsureMethods onto a worker goroutine.
func (f *File) EnsureMethodsAsync(ctx context.Context) <-chan error {
	return async.Run(ctx, f.EnsureMethods)
}

// ParseAllAsync offloads EnsureAll onto a worker goroutine. Passing opts
// lets a caller override the lazy-loading mode set at construction before
// the pools are resolved.
func (f *File) ParseAllAsync(ctx context.Context, opts ...ParseOption) <-chan error {
	return async.Run(ctx, func() error {
		if len(opts) > 0 {
			cfg := &config{lazy: f.lazy}
			if err := options.Apply(cfg, opts...); err != nil {
				return err
			}
			f.lazy = cfg.lazy
		}

		return f.EnsureAll()
	})
}
