package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rulecache/internal/adapters/config"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(dir), cfg)
	assert.Equal(t, filepath.Join(dir, ".rulecache"), cfg.Store.Dir)
	assert.Equal(t, domain.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, 2000, cfg.Store.FrontCacheSize)
	assert.Equal(t, 24*time.Hour, cfg.Policy.MaxAge)
}

func TestLoader_Load_Full(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, `
version: "1"
store:
  dir: cache
  name: metadata
  backend: files
  frontCacheSize: 16
  busyTimeout: 250ms
policy:
  maxAge: -1s
repository:
  dir: ./repo
  url: https://repo.example.com/versions/
  timeout: 3s
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, &domain.Config{
		Root: dir,
		Store: domain.StoreConfig{
			Dir:            filepath.Join(dir, "cache"),
			Name:           "metadata",
			Backend:        domain.BackendFiles,
			FrontCacheSize: 16,
			BusyTimeout:    250 * time.Millisecond,
		},
		Policy: domain.CachePolicy{MaxAge: -time.Second},
		Repository: domain.RepositoryConfig{
			Dir:     filepath.Join(dir, "repo"),
			URL:     "https://repo.example.com/versions",
			Timeout: 3 * time.Second,
		},
	}, cfg)
}

func TestLoader_Load_Discovery(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "store:\n  dir: /var/cache/rules\n")

	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, domain.DirPerm))

	cfg, err := newLoader(t).Load(deep)
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "/var/cache/rules", cfg.Store.Dir)
	assert.Equal(t, domain.DefaultStoreName, cfg.Store.Name)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	createFile(t, root, domain.ConfigFileName, "store:\n  name: outer\n")

	inner := filepath.Join(root, "inner")
	require.NoError(t, os.Mkdir(inner, domain.DirPerm))
	createFile(t, inner, domain.ConfigFileName, "store:\n  name: inner\n")

	cfg, err := newLoader(t).Load(inner)
	require.NoError(t, err)
	assert.Equal(t, "inner", cfg.Store.Name)
	assert.Equal(t, inner, cfg.Root)
}

func TestLoader_LoadFile_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown backend", content: "store:\n  backend: redis\n", wantErr: domain.ErrUnknownBackend},
		{name: "zero front cache", content: "store:\n  frontCacheSize: 0\n", wantErr: domain.ErrInvalidConfig},
		{name: "negative busy timeout", content: "store:\n  busyTimeout: -1s\n", wantErr: domain.ErrInvalidConfig},
		{name: "name with separator", content: "store:\n  name: a/b\n", wantErr: domain.ErrInvalidConfig},
		{name: "zero repository timeout", content: "repository:\n  timeout: 0s\n", wantErr: domain.ErrInvalidConfig},
		{name: "malformed yaml", content: "store: [\n", wantErr: domain.ErrConfigParseFailed},
		{name: "bad duration", content: "policy:\n  maxAge: soon\n", wantErr: domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := createFile(t, t.TempDir(), "custom.yaml", tt.content)

			_, err := newLoader(t).LoadFile(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t).LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
