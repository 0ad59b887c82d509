package codec

import (
	"encoding/json"
	"slices"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Serializer writes and reads values of one static type.
type Serializer[T any] interface {
	Write(e *Encoder, v T) error
	Read(d *Decoder) (T, error)
}

type funcSerializer[T any] struct {
	write func(*Encoder, T) error
	read  func(*Decoder) (T, error)
}

func (s funcSerializer[T]) Write(e *Encoder, v T) error { return s.write(e, v) }
func (s funcSerializer[T]) Read(d *Decoder) (T, error)  { return s.read(d) }

// NewSerializer builds a Serializer from a pair of functions.
func NewSerializer[T any](write func(*Encoder, T) error, read func(*Decoder) (T, error)) Serializer[T] {
	return funcSerializer[T]{write: write, read: read}
}

// String serializes strings.
func String() Serializer[string] {
	return NewSerializer(
		func(e *Encoder, v string) error {
			e.WriteString(v)
			return nil
		},
		(*Decoder).ReadString,
	)
}

// Long serializes 64-bit integers.
func Long() Serializer[int64] {
	return NewSerializer(
		func(e *Encoder, v int64) error {
			e.WriteLong(v)
			return nil
		},
		(*Decoder).ReadLong,
	)
}

// Strings serializes string slices. A nil slice decodes as nil.
func Strings() Serializer[[]string] {
	return NewSerializer(
		func(e *Encoder, v []string) error {
			if v == nil {
				e.WriteSmallInt(-1)
				return nil
			}
			e.WriteSmallInt(len(v))
			for _, s := range v {
				e.WriteString(s)
			}
			return nil
		},
		func(d *Decoder) ([]string, error) {
			n, err := d.ReadSmallInt()
			if err != nil || n < 0 {
				return nil, err
			}
			out := make([]string, 0, min(n, d.Remaining()))
			for range n {
				s, err := d.ReadString()
				if err != nil {
					return nil, err
				}
				out = append(out, s)
			}
			return out, nil
		},
	)
}

// StringMap serializes string maps with keys in sorted order. A nil map decodes as nil.
func StringMap() Serializer[map[string]string] {
	return NewSerializer(
		func(e *Encoder, v map[string]string) error {
			if v == nil {
				e.WriteSmallInt(-1)
				return nil
			}
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			e.WriteSmallInt(len(keys))
			for _, k := range keys {
				e.WriteString(k)
				e.WriteString(v[k])
			}
			return nil
		},
		func(d *Decoder) (map[string]string, error) {
			n, err := d.ReadSmallInt()
			if err != nil || n < 0 {
				return nil, err
			}
			out := make(map[string]string, min(n, d.Remaining()))
			for range n {
				k, err := d.ReadString()
				if err != nil {
					return nil, err
				}
				v, err := d.ReadString()
				if err != nil {
					return nil, err
				}
				out[k] = v
			}
			return out, nil
		},
	)
}

// JSON serializes values of T through encoding/json, length-prefixed.
// It suits plain data structs registered as fallback types.
func JSON[T any]() Serializer[T] {
	return NewSerializer(
		func(e *Encoder, v T) error {
			data, err := json.Marshal(v)
			if err != nil {
				return zerr.Wrap(err, domain.ErrCodecEncodeFailed.Error())
			}
			e.WriteBytes(data)
			return nil
		},
		func(d *Decoder) (T, error) {
			var v T
			data, err := d.ReadBytes()
			if err != nil {
				return v, err
			}
			if err := json.Unmarshal(data, &v); err != nil {
				return v, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
			}
			return v, nil
		},
	)
}
