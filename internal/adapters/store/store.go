// Package store implements the persistent key-value area holding rule cache entries.
package store

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ManagedStore = (*Store)(nil)
	_ ports.StoreFactory = Factory{}
)

// Options configures Open.
type Options struct {
	// Dir holds the persistent areas.
	Dir string
	// Name selects the area inside Dir.
	Name string
	// Backend selects the storage engine. Defaults to SQLite.
	Backend domain.Backend
	// FrontCacheSize bounds the number of entries kept in memory.
	FrontCacheSize int
	// BusyTimeout is how long SQLite waits for another process's lock.
	BusyTimeout time.Duration
}

// backend is the durable layer under the front cache.
type backend interface {
	get(key []byte) ([]byte, bool, error)
	put(key, value []byte) error
	// version changes whenever another writer modified the area.
	version() (uint64, error)
	stats() (entries int, size int64, err error)
	clear() error
	location() string
	close() error
}

// Store serves entries from a bounded in-memory front cache layered over a
// durable backend shared with other processes.
//
// No exclusive lock is taken: concurrent processes are coordinated by the
// backend. Before the front cache is consulted the backend is asked whether
// the area changed since the last look, and the front cache is dropped if so.
type Store struct {
	mu      sync.Mutex
	kind    domain.Backend
	backend backend
	front   *lru.Cache[string, []byte]
	seen    uint64
	closed  bool

	closeOnce sync.Once
	closeErr  error
}

// Open opens the named persistent area, creating it when needed.
func Open(opts Options) (*Store, error) {
	if opts.Backend == "" {
		opts.Backend = domain.BackendSQLite
	}
	if opts.Name == "" {
		opts.Name = domain.DefaultStoreName
	}
	if opts.FrontCacheSize <= 0 {
		opts.FrontCacheSize = domain.DefaultFrontCacheSize
	}
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = domain.DefaultBusyTimeout
	}

	if err := os.MkdirAll(opts.Dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "dir", opts.Dir)
	}

	var (
		b   backend
		err error
	)
	switch opts.Backend {
	case domain.BackendSQLite:
		b, err = openSQLite(filepath.Join(opts.Dir, opts.Name+".db"), opts.BusyTimeout)
	case domain.BackendFiles:
		b, err = openFiles(filepath.Join(opts.Dir, opts.Name))
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", string(opts.Backend))
	}
	if err != nil {
		return nil, err
	}

	front, err := lru.New[string, []byte](opts.FrontCacheSize)
	if err != nil {
		_ = b.close()
		return nil, zerr.Wrap(err, domain.ErrStoreOpenFailed.Error())
	}

	seen, err := b.version()
	if err != nil {
		_ = b.close()
		return nil, err
	}

	return &Store{
		kind:    opts.Backend,
		backend: b,
		front:   front,
		seen:    seen,
	}, nil
}

// Factory opens stores from configuration.
type Factory struct{}

// Open implements ports.StoreFactory.
func (Factory) Open(cfg domain.StoreConfig) (ports.ManagedStore, error) {
	s, err := Open(Options{
		Dir:            cfg.Dir,
		Name:           cfg.Name,
		Backend:        cfg.Backend,
		FrontCacheSize: cfg.FrontCacheSize,
		BusyTimeout:    cfg.BusyTimeout,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the entry stored for key.
func (s *Store) Get(key domain.Snapshot) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false, domain.ErrStoreClosed
	}
	if err := s.syncLocked(); err != nil {
		return nil, false, err
	}

	k := key.Bytes()
	if v, ok := s.front.Get(string(k)); ok {
		return slices.Clone(v), true, nil
	}

	v, ok, err := s.backend.get(k)
	if err != nil || !ok {
		return nil, false, err
	}
	s.front.Add(string(k), v)
	return slices.Clone(v), true, nil
}

// Put stores entry for key, replacing any previous entry.
func (s *Store) Put(key domain.Snapshot, entry []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}
	if err := s.syncLocked(); err != nil {
		return err
	}

	k := key.Bytes()
	if err := s.backend.put(k, entry); err != nil {
		return err
	}
	s.front.Add(string(k), slices.Clone(entry))

	// Some backends observe their own writes as changes.
	seen, err := s.backend.version()
	if err != nil {
		return err
	}
	s.seen = seen
	return nil
}

// Stats reports the number and total size of the stored entries.
func (s *Store) Stats() (domain.StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.StoreStats{}, domain.ErrStoreClosed
	}
	entries, size, err := s.backend.stats()
	if err != nil {
		return domain.StoreStats{}, err
	}
	return domain.StoreStats{
		Backend:     s.kind,
		Location:    s.backend.location(),
		Entries:     entries,
		Bytes:       size,
		FrontCached: s.front.Len(),
	}, nil
}

// Clear removes every entry of the area.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}
	if err := s.backend.clear(); err != nil {
		return err
	}
	s.front.Purge()
	seen, err := s.backend.version()
	if err != nil {
		return err
	}
	s.seen = seen
	return nil
}

// Close releases the backend. Calls after the first return the first result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.closed = true
		s.front.Purge()
		s.closeErr = s.backend.close()
	})
	return s.closeErr
}

func (s *Store) syncLocked() error {
	v, err := s.backend.version()
	if err != nil {
		return err
	}
	if v != s.seen {
		s.front.Purge()
		s.seen = v
	}
	return nil
}
