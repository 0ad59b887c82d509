// Package snapshot computes structural fingerprints of arbitrary Go values.
package snapshot

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"math"
	"reflect"
	"slices"
	"time"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Snapshotter = (*Snapshotter)(nil)

// maxDepth bounds the nesting of a snapshotted value. Self-referencing values hit it.
const maxDepth = 64

// Tags written before each encoded value. The canonical form is persisted, so
// existing tags must keep their meaning.
const (
	tagNil byte = iota + 1
	tagNamed
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagBytes
	tagList
	tagMap
	tagStruct
	tagTime
	tagBinary
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	marshalerType = reflect.TypeFor[encoding.BinaryMarshaler]()
)

// Snapshotter builds a canonical binary encoding of values and digests it with xxhash.
//
// Structurally equal values encode identically: pointers are followed, map
// entries are sorted by their encoded key, nil and empty collections are the
// same, and named types carry their qualified name so that a domain.FilePath
// never collides with a plain string. Unexported fields are encoded too.
// Functions, channels and unsafe pointers cannot be snapshotted, nor can a
// time.Time held in a map or interface behind an unexported field.
type Snapshotter struct{}

// New creates a new Snapshotter.
func New() *Snapshotter {
	return &Snapshotter{}
}

// Snapshot returns the fingerprint of values, in order.
func (s *Snapshotter) Snapshot(values ...any) (domain.Snapshot, error) {
	var buf bytes.Buffer
	writeLen(&buf, len(values))
	for i, v := range values {
		if err := encodeValue(&buf, addressable(reflect.ValueOf(v)), 0); err != nil {
			return domain.Snapshot{}, zerr.With(err, "position", i)
		}
	}
	canonical := buf.Bytes()
	return domain.NewSnapshot(canonical, xxhash.Sum64(canonical)), nil
}

//nolint:gocyclo,cyclop // One case per reflect kind.
func encodeValue(buf *bytes.Buffer, v reflect.Value, depth int) error {
	if !v.IsValid() {
		buf.WriteByte(tagNil)
		return nil
	}
	if depth > maxDepth {
		return zerr.With(domain.ErrSnapshotTooDeep, "type", v.Type().String())
	}

	t := v.Type()
	if t.Name() != "" && t.PkgPath() != "" {
		buf.WriteByte(tagNamed)
		writeString(buf, t.PkgPath()+"."+t.Name())
	}

	if t == timeType {
		return encodeTime(buf, v)
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Implements(marshalerType) && v.CanInterface() {
		data, err := v.Interface().(encoding.BinaryMarshaler).MarshalBinary()
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrUnsupportedSnapshotValue.Error()), "type", t.String())
		}
		buf.WriteByte(tagBinary)
		writeBytes(buf, data)
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		buf.WriteByte(tagBool)
		if v.Bool() {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteByte(tagInt)
		buf.Write(binary.AppendVarint(nil, v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf.WriteByte(tagUint)
		buf.Write(binary.AppendUvarint(nil, v.Uint()))
	case reflect.Float32, reflect.Float64:
		buf.WriteByte(tagFloat)
		writeFloat(buf, v.Float())
	case reflect.Complex64, reflect.Complex128:
		buf.WriteByte(tagComplex)
		c := v.Complex()
		writeFloat(buf, real(c))
		writeFloat(buf, imag(c))
	case reflect.String:
		buf.WriteByte(tagString)
		writeString(buf, v.String())
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			buf.WriteByte(tagBytes)
			writeLen(buf, v.Len())
			for i := range v.Len() {
				buf.WriteByte(byte(v.Index(i).Uint()))
			}
			return nil
		}
		buf.WriteByte(tagList)
		writeLen(buf, v.Len())
		for i := range v.Len() {
			if err := encodeValue(buf, v.Index(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Map:
		return encodeMap(buf, v, depth)
	case reflect.Struct:
		buf.WriteByte(tagStruct)
		writeLen(buf, t.NumField())
		for i := range t.NumField() {
			writeString(buf, t.Field(i).Name)
			if err := encodeValue(buf, v.Field(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			buf.WriteByte(tagNil)
			return nil
		}
		return encodeValue(buf, v.Elem(), depth+1)
	default:
		return zerr.With(domain.ErrUnsupportedSnapshotValue, "type", t.String())
	}
	return nil
}

func encodeMap(buf *bytes.Buffer, v reflect.Value, depth int) error {
	type pair struct {
		key   []byte
		value []byte
	}
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb, vb bytes.Buffer
		if err := encodeValue(&kb, iter.Key(), depth+1); err != nil {
			return err
		}
		if err := encodeValue(&vb, iter.Value(), depth+1); err != nil {
			return err
		}
		pairs = append(pairs, pair{key: kb.Bytes(), value: vb.Bytes()})
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		return bytes.Compare(a.key, b.key)
	})

	buf.WriteByte(tagMap)
	writeLen(buf, len(pairs))
	for _, p := range pairs {
		buf.Write(p.key)
		buf.Write(p.value)
	}
	return nil
}

// addressable returns a settable copy of v, so that unexported fields reached
// from it can still be read by address.
func addressable(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

func encodeTime(buf *bytes.Buffer, v reflect.Value) error {
	var ts time.Time
	switch {
	case v.CanInterface():
		ts, _ = v.Interface().(time.Time)
	case v.CanAddr():
		ts = *(*time.Time)(unsafe.Pointer(v.UnsafeAddr())) //nolint:gosec // Field of a copy made by Snapshot.
	default:
		return zerr.With(domain.ErrUnsupportedSnapshotValue, "type", "unexported time.Time")
	}
	buf.WriteByte(tagTime)
	buf.Write(binary.AppendVarint(nil, ts.Unix()))
	buf.Write(binary.AppendUvarint(nil, uint64(ts.Nanosecond())))
	return nil
}

func writeLen(buf *bytes.Buffer, n int) {
	buf.Write(binary.AppendUvarint(nil, uint64(n)))
}

func writeString(buf *bytes.Buffer, s string) {
	writeLen(buf, len(s))
	buf.WriteString(s)
}

func writeBytes(buf *bytes.Buffer, b []byte) {
	writeLen(buf, len(b))
	buf.Write(b)
}

func writeFloat(buf *bytes.Buffer, f float64) {
	buf.Write(binary.BigEndian.AppendUint64(nil, math.Float64bits(f)))
}
