package codec

import (
	"reflect"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	tagNil      = -1
	tagFallback = -2
)

var _ Serializer[any] = (*AnyCodec)(nil)

// AnyCodec encodes values whose static type is unknown.
//
// A value is written as a tag followed by its payload: -1 for nil (typed nil
// pointers included), the index
// of its type among the usual types, or -2 followed by the name the type was
// registered under in the Registry.
type AnyCodec struct {
	registry *Registry
}

// NewAnyCodec creates an AnyCodec resolving fallback types through registry.
func NewAnyCodec(registry *Registry) *AnyCodec {
	return &AnyCodec{registry: registry}
}

// Write encodes v.
func (c *AnyCodec) Write(e *Encoder, v any) error {
	if v == nil || isNilRef(v) {
		e.WriteSmallInt(tagNil)
		return nil
	}

	if idx := usualIndex(v); idx >= 0 {
		e.WriteSmallInt(idx)
		return usualTypes[idx].write(e, v)
	}

	typ := reflect.TypeOf(v)
	ft, ok := c.registry.lookupType(typ)
	if !ok {
		return zerr.With(domain.ErrCodecUnregisteredType, "type", typ.String())
	}
	e.WriteSmallInt(tagFallback)
	e.WriteString(ft.name)
	if err := ft.write(e, v); err != nil {
		return zerr.With(err, "type", ft.name)
	}
	return nil
}

// isNilRef reports whether v is a typed nil pointer, function or channel.
// Nil slices and maps keep their type and go through their serializer.
func isNilRef(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Read decodes a value written by Write.
func (c *AnyCodec) Read(d *Decoder) (any, error) {
	tag, err := d.ReadSmallInt()
	if err != nil {
		return nil, err
	}

	switch {
	case tag == tagNil:
		return nil, nil //nolint:nilnil // nil is a decoded value.
	case tag == tagFallback:
		name, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		ft, ok := c.registry.lookupName(name)
		if !ok {
			return nil, zerr.With(domain.ErrCodecUnregisteredType, "name", name)
		}
		v, err := ft.read(d)
		if err != nil {
			return nil, zerr.With(err, "type", name)
		}
		return v, nil
	case tag >= 0 && tag < len(usualTypes):
		return usualTypes[tag].read(d)
	default:
		return nil, zerr.With(domain.ErrCodecUnknownTag, "tag", tag)
	}
}
