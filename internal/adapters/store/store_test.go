package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/internal/adapters/store"
	"go.trai.ch/rulecache/internal/core/domain"
)

var backends = []domain.Backend{domain.BackendSQLite, domain.BackendFiles}

func key(s string) domain.Snapshot {
	return domain.NewSnapshot([]byte(s), uint64(len(s)))
}

func open(t *testing.T, dir string, backend domain.Backend) *store.Store {
	t.Helper()
	s, err := store.Open(store.Options{Dir: dir, Name: "test", Backend: backend})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			s := open(t, t.TempDir(), backend)

			got, ok, err := s.Get(key("missing"))
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, got)

			require.NoError(t, s.Put(key("a"), []byte("first")))
			require.NoError(t, s.Put(key("b"), []byte("other")))

			got, ok, err = s.Get(key("a"))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("first"), got)

			require.NoError(t, s.Put(key("a"), []byte("second")))
			got, ok, err = s.Get(key("a"))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("second"), got)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s := open(t, t.TempDir(), domain.BackendSQLite)

	value := []byte("value")
	require.NoError(t, s.Put(key("k"), value))
	value[0] = 'X'

	got, _, err := s.Get(key("k"))
	require.NoError(t, err)
	got[1] = 'Y'

	again, _, err := s.Get(key("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()

			first, err := store.Open(store.Options{Dir: dir, Name: "test", Backend: backend})
			require.NoError(t, err)
			require.NoError(t, first.Put(key("k"), []byte("persisted")))
			require.NoError(t, first.Close())

			second := open(t, dir, backend)
			got, ok, err := second.Get(key("k"))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("persisted"), got)
		})
	}
}

func TestStore_SeesOtherWriters(t *testing.T) {
	t.Parallel()

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writer := open(t, dir, backend)
			reader := open(t, dir, backend)

			require.NoError(t, writer.Put(key("k"), []byte("v1")))
			got, ok, err := reader.Get(key("k"))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("v1"), got)

			// reader now holds v1 in its front cache.
			require.NoError(t, writer.Put(key("k"), []byte("v2")))
			got, ok, err = reader.Get(key("k"))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []byte("v2"), got)
		})
	}
}

func TestStore_SmallFrontCache(t *testing.T) {
	t.Parallel()

	s, err := store.Open(store.Options{Dir: t.TempDir(), Name: "test", FrontCacheSize: 1})
	require.NoError(t, err)
	defer s.Close()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, s.Put(key(k), []byte(k)))
	}
	for _, k := range []string{"a", "b", "c"} {
		got, ok, err := s.Get(key(k))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(k), got)
	}

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FrontCached)
}

func TestStore_StatsAndClear(t *testing.T) {
	t.Parallel()

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			s := open(t, t.TempDir(), backend)

			require.NoError(t, s.Put(key("a"), []byte("1234")))
			require.NoError(t, s.Put(key("b"), []byte("56")))

			stats, err := s.Stats()
			require.NoError(t, err)
			assert.Equal(t, backend, stats.Backend)
			assert.Equal(t, 2, stats.Entries)
			assert.Positive(t, stats.Bytes)
			assert.NotEmpty(t, stats.Location)

			require.NoError(t, s.Clear())

			stats, err = s.Stats()
			require.NoError(t, err)
			assert.Zero(t, stats.Entries)
			assert.Zero(t, stats.FrontCached)

			_, ok, err := s.Get(key("a"))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_Close(t *testing.T) {
	t.Parallel()

	for _, backend := range backends {
		t.Run(string(backend), func(t *testing.T) {
			t.Parallel()
			s, err := store.Open(store.Options{Dir: t.TempDir(), Name: "test", Backend: backend})
			require.NoError(t, err)

			require.NoError(t, s.Close())
			require.NoError(t, s.Close())

			_, _, err = s.Get(key("k"))
			require.ErrorIs(t, err, domain.ErrStoreClosed)
			require.ErrorIs(t, s.Put(key("k"), []byte("v")), domain.ErrStoreClosed)
			_, err = s.Stats()
			require.ErrorIs(t, err, domain.ErrStoreClosed)
			require.ErrorIs(t, s.Clear(), domain.ErrStoreClosed)
		})
	}
}

func TestStore_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := open(t, dir, domain.BackendSQLite)
	b := open(t, dir, domain.BackendSQLite)

	var wg sync.WaitGroup
	for i, s := range []*store.Store{a, b, a, b} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Put(key("shared"), []byte{byte(i)}))
		}()
	}
	wg.Wait()

	got, ok, err := a.Get(key("shared"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := open(t, dir, domain.BackendFiles)
	require.NoError(t, s.Put(key("k"), []byte("v")))

	entries, err := os.ReadDir(filepath.Join(dir, "test"))
	require.NoError(t, err)
	var corrupted int
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".entry") {
			//nolint:gosec // 0644 is fine for test
			require.NoError(t, os.WriteFile(filepath.Join(dir, "test", e.Name()), []byte{0xff}, 0o644))
			corrupted++
		}
	}
	require.Equal(t, 1, corrupted)

	// A fresh instance has nothing in its front cache.
	fresh := open(t, dir, domain.BackendFiles)
	_, _, err = fresh.Get(key("k"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())

	_, ok, err := fresh.Get(key("other"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := store.Open(store.Options{Dir: t.TempDir(), Backend: "tape"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownBackend.Error())
}

func TestFactory_Open(t *testing.T) {
	t.Parallel()

	cfg := domain.DefaultConfig(t.TempDir()).Store
	s, err := store.Factory{}.Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(cfg.Dir, cfg.Name+".db"))
	require.NoError(t, err)
}
