package ports

import "go.trai.ch/rulecache/internal/core/domain"

// Snapshotter computes structural fingerprints of ordered values.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks
type Snapshotter interface {
	// Snapshot returns the fingerprint of values, in order.
	// Structurally equal sequences yield equal snapshots, in this process and in any other.
	Snapshot(values ...any) (domain.Snapshot, error)
}
