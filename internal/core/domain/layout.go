package domain

import (
	"path/filepath"
	"time"
)

const (
	// CacheDirName is the name of the directory holding persistent rule caches.
	CacheDirName = ".rulecache"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "rulecache.yaml"

	// DefaultStoreName is the name of the persistent area used for dependency metadata rules.
	DefaultStoreName = "dependency-metadata"

	// DefaultFrontCacheSize is the number of entries kept in memory in front of the durable store.
	DefaultFrontCacheSize = 2000

	// DefaultBusyTimeout is how long a store waits for another process to release the database.
	DefaultBusyTimeout = 5 * time.Second

	// DefaultMaxAge is how long a cached rule result stays fresh.
	DefaultMaxAge = 24 * time.Hour

	// DefaultRepositoryTimeout bounds a single remote repository request.
	DefaultRepositoryTimeout = 30 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStoreDir returns the store directory for a project rooted at root.
func DefaultStoreDir(root string) string {
	return filepath.Join(root, CacheDirName)
}
