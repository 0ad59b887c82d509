package codec

import (
	"reflect"
	"sync"
	"time"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// fallbackType is a type resolved by its registered name.
type fallbackType struct {
	name  string
	typ   reflect.Type
	write func(e *Encoder, v any) error
	read  func(d *Decoder) (any, error)
}

// Registry maps stable type names to serializers for values outside the usual types.
//
// Types must be registered before any value of them is encoded or decoded;
// names are persisted and must not change once data was written with them.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]fallbackType
	byType map[reflect.Type]fallbackType
}

// NewRegistry creates a Registry holding the default registrations.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	mustRegister(r, "int", NewSerializer(
		func(e *Encoder, v int) error { e.WriteLong(int64(v)); return nil },
		func(d *Decoder) (int, error) { n, err := d.ReadLong(); return int(n), err },
	))
	mustRegister(r, "int32", NewSerializer(
		func(e *Encoder, v int32) error { e.WriteSmallInt(int(v)); return nil },
		func(d *Decoder) (int32, error) { n, err := d.ReadSmallInt(); return int32(n), err }, //nolint:gosec // Written from an int32.
	))
	mustRegister(r, "uint64", NewSerializer(
		func(e *Encoder, v uint64) error { e.WriteLong(int64(v)); return nil }, //nolint:gosec // Bit pattern is preserved.
		func(d *Decoder) (uint64, error) { n, err := d.ReadLong(); return uint64(n), err }, //nolint:gosec // Bit pattern is preserved.
	))
	mustRegister(r, "float64", NewSerializer(
		func(e *Encoder, v float64) error { e.WriteFloat(v); return nil },
		(*Decoder).ReadFloat,
	))
	mustRegister(r, "[]string", Strings())
	mustRegister(r, "map[string]string", StringMap())
	mustRegister(r, "time.Time", NewSerializer(
		func(e *Encoder, v time.Time) error {
			data, err := v.MarshalBinary()
			if err != nil {
				return zerr.Wrap(err, domain.ErrCodecEncodeFailed.Error())
			}
			e.WriteBytes(data)
			return nil
		},
		func(d *Decoder) (time.Time, error) {
			var t time.Time
			data, err := d.ReadBytes()
			if err != nil {
				return t, err
			}
			if err := t.UnmarshalBinary(data); err != nil {
				return t, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
			}
			return t, nil
		},
	))
	mustRegister(r, "rulecache.ModuleID", NewSerializer(
		func(e *Encoder, v domain.ModuleID) error {
			e.WriteString(v.Group)
			e.WriteString(v.Name)
			return nil
		},
		readModuleID,
	))
	mustRegister(r, "rulecache.Coordinate", NewSerializer(
		func(e *Encoder, v domain.Coordinate) error {
			e.WriteString(v.Module.Group)
			e.WriteString(v.Module.Name)
			e.WriteString(v.Version)
			return nil
		},
		func(d *Decoder) (domain.Coordinate, error) {
			m, err := readModuleID(d)
			if err != nil {
				return domain.Coordinate{}, err
			}
			version, err := d.ReadString()
			return domain.Coordinate{Module: m, Version: version}, err
		},
	))
	return r
}

// NewEmptyRegistry creates a Registry without any registration.
func NewEmptyRegistry() *Registry {
	return &Registry{
		byName: make(map[string]fallbackType),
		byType: make(map[reflect.Type]fallbackType),
	}
}

// RegisterType registers T under name.
// It fails when either the name or the type is already registered.
func RegisterType[T any](r *Registry, name string, s Serializer[T]) error {
	typ := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return zerr.With(domain.ErrCodecTypeAlreadyRegistered, "name", name)
	}
	if existing, ok := r.byType[typ]; ok {
		return zerr.With(zerr.With(domain.ErrCodecTypeAlreadyRegistered, "type", typ.String()), "name", existing.name)
	}

	ft := fallbackType{
		name: name,
		typ:  typ,
		write: func(e *Encoder, v any) error {
			return s.Write(e, v.(T))
		},
		read: func(d *Decoder) (any, error) {
			return s.Read(d)
		},
	}
	r.byName[name] = ft
	r.byType[typ] = ft
	return nil
}

// Names returns the registered type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}

func (r *Registry) lookupType(typ reflect.Type) (fallbackType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.byType[typ]
	return ft, ok
}

func (r *Registry) lookupName(name string) (fallbackType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ft, ok := r.byName[name]
	return ft, ok
}

func mustRegister[T any](r *Registry, name string, s Serializer[T]) {
	if err := RegisterType(r, name, s); err != nil {
		panic(err)
	}
}

func readModuleID(d *Decoder) (domain.ModuleID, error) {
	group, err := d.ReadString()
	if err != nil {
		return domain.ModuleID{}, err
	}
	name, err := d.ReadString()
	return domain.ModuleID{Group: group, Name: name}, err
}
