package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/internal/adapters/codec"
	"go.trai.ch/rulecache/internal/core/domain"
)

type artifact struct {
	Path     string            `json:"path"`
	Size     int64             `json:"size"`
	Checksum map[string]string `json:"checksum"`
}

type lookupError struct{ module string }

func (e *lookupError) Error() string { return "no versions for " + e.module }

func roundTrip(t *testing.T, c *codec.AnyCodec, v any) any {
	t.Helper()

	e := codec.NewEncoder()
	require.NoError(t, c.Write(e, v))

	d := codec.NewDecoder(e.Bytes())
	got, err := c.Read(d)
	require.NoError(t, err)
	assert.Zero(t, d.Remaining())
	return got
}

func TestAnyCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	registry := codec.NewRegistry()
	require.NoError(t, codec.RegisterType(registry, "test.artifact", codec.JSON[artifact]()))
	c := codec.NewAnyCodec(registry)

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "string", value: "com.example:lib"},
		{name: "empty string", value: ""},
		{name: "bool", value: true},
		{name: "int64", value: int64(-9876543210)},
		{name: "file path", value: domain.FilePath("/repo/com/example/lib")},
		{name: "bytes", value: []byte("payload")},
		{name: "content hash", value: domain.HashContent([]byte("payload"))},
		{name: "recorded error", value: &domain.RecordedError{Type: "*fs.PathError", Message: "open x: no such file"}},
		{name: "int", value: 42},
		{name: "int32", value: int32(-7)},
		{name: "uint64", value: uint64(1 << 63)},
		{name: "float64", value: 0.125},
		{name: "string slice", value: []string{"1.0", "1.1"}},
		{name: "string map", value: map[string]string{"b": "2", "a": "1"}},
		{name: "time", value: time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)},
		{name: "module id", value: domain.ModuleID{Group: "com.example", Name: "lib"}},
		{name: "coordinate", value: domain.Coordinate{Module: domain.ModuleID{Group: "com.example", Name: "lib"}, Version: "1.0"}},
		{name: "custom", value: artifact{Path: "lib.jar", Size: 12, Checksum: map[string]string{"sha256": "ab"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := roundTrip(t, c, tt.value)
			if diff := cmp.Diff(tt.value, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAnyCodec_UsualTypeTags(t *testing.T) {
	t.Parallel()

	c := codec.NewAnyCodec(codec.NewRegistry())

	tests := []struct {
		value any
		tag   byte
	}{
		{value: "s", tag: 0},
		{value: false, tag: 2},
		{value: int64(1), tag: 4},
		{value: domain.FilePath("f"), tag: 6},
		{value: []byte{1}, tag: 8},
		{value: domain.ContentHash{}, tag: 10},
		{value: errors.New("boom"), tag: 12},
		{value: nil, tag: 1},
		{value: 1, tag: 3},
	}

	for _, tt := range tests {
		e := codec.NewEncoder()
		require.NoError(t, c.Write(e, tt.value))
		assert.Equal(t, tt.tag, e.Bytes()[0], "value %#v", tt.value)
	}
}

func TestAnyCodec_ErrorsDecodeAsRecorded(t *testing.T) {
	t.Parallel()

	c := codec.NewAnyCodec(codec.NewRegistry())

	got := roundTrip(t, c, errors.New("module not found"))

	recorded, ok := got.(*domain.RecordedError)
	require.True(t, ok)
	assert.Equal(t, "*errors.errorString", recorded.Type)
	assert.Equal(t, "module not found", recorded.Error())
}

func TestAnyCodec_TypedNil(t *testing.T) {
	t.Parallel()

	c := codec.NewAnyCodec(codec.NewRegistry())

	t.Run("nil error pointer", func(t *testing.T) {
		t.Parallel()
		var err *lookupError
		assert.Nil(t, roundTrip(t, c, err))
	})

	t.Run("nil pointer to unregistered type", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, roundTrip(t, c, (*artifact)(nil)))
	})

	t.Run("nil slice keeps its type", func(t *testing.T) {
		t.Parallel()
		got := roundTrip(t, c, []string(nil))
		assert.IsType(t, []string(nil), got)
		assert.Nil(t, got)
	})

	t.Run("non-nil error pointer", func(t *testing.T) {
		t.Parallel()
		got := roundTrip(t, c, &lookupError{module: "com.example:lib"})
		assert.Equal(t, &domain.RecordedError{Type: "*codec_test.lookupError", Message: "no versions for com.example:lib"}, got)
	})
}

func TestAnyCodec_Unregistered(t *testing.T) {
	t.Parallel()

	c := codec.NewAnyCodec(codec.NewRegistry())

	err := c.Write(codec.NewEncoder(), artifact{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecUnregisteredType.Error())

	// An entry written by a process that knew the type.
	registry := codec.NewRegistry()
	require.NoError(t, codec.RegisterType(registry, "test.artifact", codec.JSON[artifact]()))
	e := codec.NewEncoder()
	require.NoError(t, codec.NewAnyCodec(registry).Write(e, artifact{Path: "x"}))

	_, err = c.Read(codec.NewDecoder(e.Bytes()))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecUnregisteredType.Error())
}

func TestAnyCodec_UnknownTag(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.WriteSmallInt(99)

	_, err := codec.NewAnyCodec(codec.NewRegistry()).Read(codec.NewDecoder(e.Bytes()))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecUnknownTag.Error())
}

func TestRegisterType_Duplicates(t *testing.T) {
	t.Parallel()

	registry := codec.NewRegistry()

	err := codec.RegisterType(registry, "int", codec.JSON[artifact]())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecTypeAlreadyRegistered.Error())

	err = codec.RegisterType(registry, "another.int", codec.JSON[int]())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecTypeAlreadyRegistered.Error())

	assert.NotContains(t, registry.Names(), "another.int")
	assert.Contains(t, registry.Names(), "time.Time")
	assert.Empty(t, codec.NewEmptyRegistry().Names())
}
