// Package codec implements the binary format of persisted rule cache entries.
package codec

import (
	"bytes"
	"encoding/binary"
	"math"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
)

// Encoder appends primitive values to an in-memory buffer.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder creates an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded data.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// WriteSmallInt writes n as a zig-zag varint. Small magnitudes take one byte.
func (e *Encoder) WriteSmallInt(n int) {
	e.buf.Write(binary.AppendVarint(nil, int64(n)))
}

// WriteLong writes n as 8 big-endian bytes.
func (e *Encoder) WriteLong(n int64) {
	e.buf.Write(binary.BigEndian.AppendUint64(nil, uint64(n)))
}

// WriteBool writes b as a single byte.
func (e *Encoder) WriteBool(b bool) {
	if b {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

// WriteFloat writes the IEEE 754 bits of f.
func (e *Encoder) WriteFloat(f float64) {
	e.WriteLong(int64(math.Float64bits(f)))
}

// WriteString writes s prefixed with its length.
func (e *Encoder) WriteString(s string) {
	e.WriteSmallInt(len(s))
	e.buf.WriteString(s)
}

// WriteBytes writes b prefixed with its length.
func (e *Encoder) WriteBytes(b []byte) {
	e.WriteSmallInt(len(b))
	e.buf.Write(b)
}

// Decoder reads primitive values written by an Encoder.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a Decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// ReadSmallInt reads a value written by WriteSmallInt.
func (d *Decoder) ReadSmallInt() (int, error) {
	n, size := binary.Varint(d.data[d.pos:])
	if size <= 0 {
		return 0, zerr.With(domain.ErrCodecTruncated, "offset", d.pos)
	}
	d.pos += size
	return int(n), nil
}

// ReadLong reads a value written by WriteLong.
func (d *Decoder) ReadLong() (int64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ReadBool reads a value written by WriteBool.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.next(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadFloat reads a value written by WriteFloat.
func (d *Decoder) ReadFloat() (float64, error) {
	n, err := d.ReadLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(n)), nil
}

// ReadString reads a value written by WriteString.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.readPrefixed()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads a value written by WriteBytes. The result does not alias the input.
func (d *Decoder) ReadBytes() ([]byte, error) {
	b, err := d.readPrefixed()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (d *Decoder) readPrefixed() ([]byte, error) {
	n, err := d.ReadSmallInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, zerr.With(domain.ErrCodecDecodeFailed, "length", n)
	}
	return d.next(n)
}

func (d *Decoder) next(n int) ([]byte, error) {
	if n > d.Remaining() {
		return nil, zerr.With(zerr.With(domain.ErrCodecTruncated, "offset", d.pos), "want", n)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}
