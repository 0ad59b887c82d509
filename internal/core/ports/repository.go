package ports

import (
	"context"

	"go.trai.ch/rulecache/internal/core/domain"
)

// VersionLister lists the versions a repository offers for a module.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type VersionLister interface {
	// ListVersions returns the available versions of module, sorted ascending.
	// A module the repository does not know has no versions and no error.
	ListVersions(ctx context.Context, module domain.ModuleID) ([]string, error)
}

// VersionListerFactory creates the lister for a configured repository.
type VersionListerFactory interface {
	New(cfg domain.RepositoryConfig) (VersionLister, error)
}
