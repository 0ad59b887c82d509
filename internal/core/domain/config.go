package domain

import "time"

// Backend names a storage engine for the persistent rule cache.
type Backend string

const (
	// BackendSQLite stores entries in a SQLite database in WAL mode.
	BackendSQLite Backend = "sqlite"
	// BackendFiles stores one atomically replaced file per entry.
	BackendFiles Backend = "files"
)

// Config is the resolved configuration of the host tool.
type Config struct {
	// Root is the directory containing the configuration file, or the working
	// directory when no file was found. Relative paths resolve against it.
	Root       string
	Store      StoreConfig
	Policy     CachePolicy
	Repository RepositoryConfig
}

// StoreConfig configures the persistent rule cache.
type StoreConfig struct {
	Dir            string
	Name           string
	Backend        Backend
	FrontCacheSize int
	BusyTimeout    time.Duration
}

// RepositoryConfig configures where module versions are listed from.
type RepositoryConfig struct {
	// Dir is a local repository laid out as <group path>/<name>/<version>/.
	Dir string
	// URL is a remote repository; it takes precedence over Dir.
	URL     string
	Timeout time.Duration
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(root string) *Config {
	return &Config{
		Root: root,
		Store: StoreConfig{
			Dir:            DefaultStoreDir(root),
			Name:           DefaultStoreName,
			Backend:        BackendSQLite,
			FrontCacheSize: DefaultFrontCacheSize,
			BusyTimeout:    DefaultBusyTimeout,
		},
		Policy: DefaultCachePolicy(),
		Repository: RepositoryConfig{
			Timeout: DefaultRepositoryTimeout,
		},
	}
}

// StoreStats describes the content of a persistent area.
type StoreStats struct {
	Backend     Backend
	Location    string
	Entries     int
	Bytes       int64
	FrontCached int
}
