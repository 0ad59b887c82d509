package codec_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/internal/adapters/codec"
	"go.trai.ch/rulecache/internal/core/domain"
)

func newVersionsCodec() *codec.EntryCodec[[]string] {
	return codec.NewEntryCodec(codec.NewAnyCodec(codec.NewRegistry()), codec.Strings())
}

func TestEntryCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	var implicits domain.Implicits
	implicits.Put("versionLister", domain.ImplicitInputRecord{Input: "com.example:lib", Output: []string{"1.0", "1.1"}})
	implicits.Put("fileReader", domain.ImplicitInputRecord{Input: domain.FilePath("a.pom"), Output: domain.HashContent([]byte("a"))})
	implicits.Put("versionLister", domain.ImplicitInputRecord{Input: "com.example:other", Output: nil})

	entry := domain.CachedEntry[[]string]{
		Timestamp: time.Date(2024, 6, 1, 10, 0, 0, 123_000_000, time.UTC),
		Implicits: implicits,
		Result:    []string{"1.0", "1.1"},
	}

	c := newVersionsCodec()
	data, err := c.Encode(entry)
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)

	assert.True(t, entry.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, []string{"versionLister", "fileReader"}, got.Implicits.Services())
	assert.Equal(t, 3, got.Implicits.Size())
	assert.Equal(t, entry.Result, got.Result)

	for service, records := range entry.Implicits.All() {
		if diff := cmp.Diff(records, got.Implicits.Records(service)); diff != "" {
			t.Errorf("records of %s mismatch (-want +got):\n%s", service, diff)
		}
	}
}

func TestEntryCodec_Empty(t *testing.T) {
	t.Parallel()

	c := newVersionsCodec()
	data, err := c.Encode(domain.CachedEntry[[]string]{Timestamp: time.UnixMilli(0), Result: []string{}})
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.True(t, got.Implicits.IsEmpty())
	assert.Equal(t, []string{}, got.Result)
	assert.Equal(t, int64(0), got.Timestamp.UnixMilli())
}

func TestEntryCodec_ScalarResults(t *testing.T) {
	t.Parallel()

	values := codec.NewAnyCodec(codec.NewRegistry())
	ts := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		c := codec.NewEntryCodec(values, codec.String())
		data, err := c.Encode(domain.CachedEntry[string]{Timestamp: ts, Result: "com.example:lib:1.1"})
		require.NoError(t, err)

		got, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "com.example:lib:1.1", got.Result)
	})

	t.Run("long", func(t *testing.T) {
		t.Parallel()
		c := codec.NewEntryCodec(values, codec.Long())
		data, err := c.Encode(domain.CachedEntry[int64]{Timestamp: ts, Result: -42})
		require.NoError(t, err)

		got, err := c.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), got.Result)
		assert.True(t, ts.Equal(got.Timestamp))
	})
}

func TestEntryCodec_TimestampPrecision(t *testing.T) {
	t.Parallel()

	c := newVersionsCodec()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 999_999_999, time.UTC)
	data, err := c.Encode(domain.CachedEntry[[]string]{Timestamp: ts})
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assert.True(t, ts.Truncate(time.Millisecond).Equal(got.Timestamp))
}

func TestEntryCodec_Malformed(t *testing.T) {
	t.Parallel()

	c := newVersionsCodec()
	var implicits domain.Implicits
	implicits.Put("versionLister", domain.ImplicitInputRecord{Input: "g:n", Output: []string{"1"}})
	data, err := c.Encode(domain.CachedEntry[[]string]{Timestamp: time.Now(), Implicits: implicits, Result: []string{"1"}})
	require.NoError(t, err)

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		_, err := c.Decode(data[:len(data)-1])
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCodecDecodeFailed.Error())
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		padded := append(append([]byte{}, data...), 0)
		_, err := c.Decode(padded)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCodecTrailingData.Error())
	})

	t.Run("unencodable implicit", func(t *testing.T) {
		t.Parallel()
		var bad domain.Implicits
		bad.Put("versionLister", domain.ImplicitInputRecord{Input: struct{}{}})
		_, err := c.Encode(domain.CachedEntry[[]string]{Implicits: bad})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCodecEncodeFailed.Error())
	})
}
