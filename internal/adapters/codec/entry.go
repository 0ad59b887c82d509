package codec

import (
	"time"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EntryCodec[[]string] = (*EntryCodec[[]string])(nil)

// EntryCodec encodes cached entries whose results are of type R.
//
// Layout: the timestamp as 8-byte Unix milliseconds, the number of service
// groups, then per group the service name, the number of records and each
// record's input and output through the AnyCodec, and finally the result
// through the result serializer.
type EntryCodec[R any] struct {
	values *AnyCodec
	result Serializer[R]
}

// NewEntryCodec creates an EntryCodec.
func NewEntryCodec[R any](values *AnyCodec, result Serializer[R]) *EntryCodec[R] {
	return &EntryCodec[R]{values: values, result: result}
}

// Encode returns the binary form of entry.
func (c *EntryCodec[R]) Encode(entry domain.CachedEntry[R]) ([]byte, error) {
	e := NewEncoder()
	e.WriteLong(entry.Timestamp.UnixMilli())

	e.WriteSmallInt(entry.Implicits.Len())
	for service, records := range entry.Implicits.All() {
		e.WriteString(service)
		e.WriteSmallInt(len(records))
		for _, r := range records {
			if err := c.values.Write(e, r.Input); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrCodecEncodeFailed.Error()), "service", service)
			}
			if err := c.values.Write(e, r.Output); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrCodecEncodeFailed.Error()), "service", service)
			}
		}
	}

	if err := c.result.Write(e, entry.Result); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCodecEncodeFailed.Error())
	}
	return e.Bytes(), nil
}

// Decode rebuilds an entry from data produced by Encode.
func (c *EntryCodec[R]) Decode(data []byte) (domain.CachedEntry[R], error) {
	var entry domain.CachedEntry[R]
	d := NewDecoder(data)

	millis, err := d.ReadLong()
	if err != nil {
		return entry, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
	}
	entry.Timestamp = time.UnixMilli(millis).UTC()

	services, err := d.ReadSmallInt()
	if err != nil {
		return entry, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
	}
	for range services {
		service, records, err := c.readGroup(d)
		if err != nil {
			return entry, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
		}
		entry.Implicits.PutAll(service, records)
	}

	entry.Result, err = c.result.Read(d)
	if err != nil {
		return entry, zerr.Wrap(err, domain.ErrCodecDecodeFailed.Error())
	}
	if d.Remaining() != 0 {
		return entry, zerr.With(domain.ErrCodecTrailingData, "bytes", d.Remaining())
	}
	return entry, nil
}

func (c *EntryCodec[R]) readGroup(d *Decoder) (string, []domain.ImplicitInputRecord, error) {
	service, err := d.ReadString()
	if err != nil {
		return "", nil, err
	}
	n, err := d.ReadSmallInt()
	if err != nil {
		return "", nil, err
	}
	if n < 0 {
		return "", nil, zerr.With(domain.ErrCodecDecodeFailed, "records", n)
	}

	records := make([]domain.ImplicitInputRecord, 0, min(n, d.Remaining()))
	for range n {
		input, err := c.values.Read(d)
		if err != nil {
			return "", nil, zerr.With(err, "service", service)
		}
		output, err := c.values.Read(d)
		if err != nil {
			return "", nil, zerr.With(err, "service", service)
		}
		records = append(records, domain.ImplicitInputRecord{Input: input, Output: output})
	}
	return service, records, nil
}
