package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/internal/adapters/codec"
	"go.trai.ch/rulecache/internal/core/domain"
)

func TestEncoder_Primitives(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.WriteSmallInt(-2)
	e.WriteSmallInt(300)
	e.WriteLong(math.MinInt64)
	e.WriteBool(true)
	e.WriteFloat(3.25)
	e.WriteString("héllo")
	e.WriteBytes([]byte{0, 1, 2})

	d := codec.NewDecoder(e.Bytes())

	small, err := d.ReadSmallInt()
	require.NoError(t, err)
	assert.Equal(t, -2, small)

	small, err = d.ReadSmallInt()
	require.NoError(t, err)
	assert.Equal(t, 300, small)

	long, err := d.ReadLong()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), long)

	b, err := d.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	f, err := d.ReadFloat()
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f, 0)

	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	raw, err := d.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, raw)

	assert.Zero(t, d.Remaining())
}

func TestEncoder_SmallIntsAreCompact(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-2, -1, 0, 1, 6, 63} {
		e := codec.NewEncoder()
		e.WriteSmallInt(n)
		assert.Len(t, e.Bytes(), 1, "n=%d", n)
	}
}

func TestDecoder_Truncated(t *testing.T) {
	t.Parallel()

	e := codec.NewEncoder()
	e.WriteString("truncated")
	data := e.Bytes()

	_, err := codec.NewDecoder(data[:4]).ReadString()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecTruncated.Error())

	_, err = codec.NewDecoder(nil).ReadLong()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecTruncated.Error())

	_, err = codec.NewDecoder(nil).ReadSmallInt()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCodecTruncated.Error())
}
