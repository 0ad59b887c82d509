package codec

import (
	"fmt"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// usualType is a fast-path entry of the any-value format: its index in
// usualTypes is the tag written before the value.
type usualType struct {
	name  string
	match func(v any) bool
	write func(e *Encoder, v any) error
	read  func(d *Decoder) (any, error)
}

// usualTypes lists the types encoded with a one-byte tag.
//
// Indices are persisted. Entries may only be appended; reordering or removing
// one makes every existing store unreadable.
var usualTypes = [...]usualType{
	{
		name:  "string",
		match: func(v any) bool { _, ok := v.(string); return ok },
		write: func(e *Encoder, v any) error { e.WriteString(v.(string)); return nil },
		read:  func(d *Decoder) (any, error) { return d.ReadString() },
	},
	{
		name:  "bool",
		match: func(v any) bool { _, ok := v.(bool); return ok },
		write: func(e *Encoder, v any) error { e.WriteBool(v.(bool)); return nil },
		read:  func(d *Decoder) (any, error) { return d.ReadBool() },
	},
	{
		name:  "int64",
		match: func(v any) bool { _, ok := v.(int64); return ok },
		write: func(e *Encoder, v any) error { e.WriteLong(v.(int64)); return nil },
		read:  func(d *Decoder) (any, error) { return d.ReadLong() },
	},
	{
		name:  "file",
		match: func(v any) bool { _, ok := v.(domain.FilePath); return ok },
		write: func(e *Encoder, v any) error { e.WriteString(string(v.(domain.FilePath))); return nil },
		read: func(d *Decoder) (any, error) {
			s, err := d.ReadString()
			return domain.FilePath(s), err
		},
	},
	{
		name:  "bytes",
		match: func(v any) bool { _, ok := v.([]byte); return ok },
		write: func(e *Encoder, v any) error { e.WriteBytes(v.([]byte)); return nil },
		read:  func(d *Decoder) (any, error) { return d.ReadBytes() },
	},
	{
		name:  "hash",
		match: func(v any) bool { _, ok := v.(domain.ContentHash); return ok },
		write: func(e *Encoder, v any) error {
			h := v.(domain.ContentHash)
			e.WriteBytes(h[:])
			return nil
		},
		read: func(d *Decoder) (any, error) {
			b, err := d.ReadBytes()
			if err != nil {
				return nil, err
			}
			var h domain.ContentHash
			if len(b) != len(h) {
				return nil, zerr.With(domain.ErrCodecDecodeFailed, "hash_length", len(b))
			}
			copy(h[:], b)
			return h, nil
		},
	},
	{
		name:  "error",
		match: func(v any) bool { _, ok := v.(error); return ok },
		write: func(e *Encoder, v any) error {
			err := v.(error)
			e.WriteString(errorType(err))
			e.WriteString(err.Error())
			return nil
		},
		read: func(d *Decoder) (any, error) {
			typ, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			msg, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			return &domain.RecordedError{Type: typ, Message: msg}, nil
		},
	},
}

// usualIndex returns the tag of v's type, or -1 when v takes the fallback path.
func usualIndex(v any) int {
	for i, u := range usualTypes {
		if u.match(v) {
			return i
		}
	}
	return -1
}

// errorType names the type of err. A recorded error keeps the name it was recorded with.
func errorType(err error) string {
	if recorded, ok := err.(*domain.RecordedError); ok {
		return recorded.Type
	}
	return fmt.Sprintf("%T", err)
}
