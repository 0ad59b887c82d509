package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rulecache/internal/core/domain"
)

func TestImplicits_Order(t *testing.T) {
	t.Parallel()

	var im domain.Implicits
	assert.True(t, im.IsEmpty())
	assert.Empty(t, im.Services())

	im.Put("versionLister", domain.ImplicitInputRecord{Input: "a:b", Output: []string{"1.0"}})
	im.Put("fileReader", domain.ImplicitInputRecord{Input: "x", Output: "content"})
	im.PutAll("versionLister", []domain.ImplicitInputRecord{
		{Input: "c:d", Output: []string(nil)},
	})

	assert.False(t, im.IsEmpty())
	assert.Equal(t, 2, im.Len())
	assert.Equal(t, 3, im.Size())
	assert.Equal(t, []string{"versionLister", "fileReader"}, im.Services())
	assert.Equal(t, []domain.ImplicitInputRecord{
		{Input: "a:b", Output: []string{"1.0"}},
		{Input: "c:d", Output: []string(nil)},
	}, im.Records("versionLister"))
	assert.Nil(t, im.Records("unknown"))

	var names []string
	for name, records := range im.All() {
		names = append(names, name)
		assert.NotEmpty(t, records)
	}
	assert.Equal(t, []string{"versionLister", "fileReader"}, names)
}

func TestImplicits_AllStopsEarly(t *testing.T) {
	t.Parallel()

	var im domain.Implicits
	im.Put("a", domain.ImplicitInputRecord{Input: 1})
	im.Put("b", domain.ImplicitInputRecord{Input: 2})

	seen := 0
	for range im.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestImplicits_Clone(t *testing.T) {
	t.Parallel()

	var im domain.Implicits
	im.Put("a", domain.ImplicitInputRecord{Input: 1, Output: 2})

	clone := im.Clone()
	clone.Put("a", domain.ImplicitInputRecord{Input: 3, Output: 4})
	clone.Put("b", domain.ImplicitInputRecord{Input: 5})

	assert.Equal(t, 1, im.Size())
	assert.Equal(t, []string{"a"}, im.Services())
	assert.Equal(t, 3, clone.Size())

	services := im.Services()
	services[0] = "mutated"
	assert.Equal(t, []string{"a"}, im.Services())
}

func TestRecordedError(t *testing.T) {
	t.Parallel()

	var err error = &domain.RecordedError{Type: "*fs.PathError", Message: "open x: no such file"}
	assert.EqualError(t, err, "open x: no such file")
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	var zero domain.Snapshot
	assert.True(t, zero.IsZero())

	a := domain.NewSnapshot([]byte("abc"), 0xff)
	b := domain.NewSnapshot([]byte("abc"), 0xff)
	c := domain.NewSnapshot([]byte("abd"), 0xff)

	assert.False(t, a.IsZero())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, []byte("abc"), a.Bytes())
	assert.Equal(t, uint64(0xff), a.Hash())
	assert.Equal(t, "00000000000000ff", a.String())
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	h := domain.HashContent([]byte("hello"))
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", h.String())
	assert.Equal(t, "a/b", domain.FilePath("a/b").String())
}
