package ports

import "go.trai.ch/rulecache/internal/core/domain"

// EntryStore maps snapshots to encoded cache entries in a durable area shared
// between processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EntryStore interface {
	// Get returns the encoded entry stored for key.
	// The boolean is false when no entry exists.
	Get(key domain.Snapshot) ([]byte, bool, error)

	// Put stores the encoded entry for key, replacing any previous one.
	Put(key domain.Snapshot, entry []byte) error

	// Close releases the store. It is safe to call more than once.
	Close() error
}

// ManagedStore is an EntryStore that can also be inspected and emptied.
type ManagedStore interface {
	EntryStore

	// Stats reports the number and total size of the stored entries.
	Stats() (domain.StoreStats, error)

	// Clear removes every entry.
	Clear() error
}

// StoreFactory opens persistent areas.
type StoreFactory interface {
	Open(cfg domain.StoreConfig) (ManagedStore, error)
}
