package repository

import (
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
)

// Factory implements ports.VersionListerFactory. A configured URL takes
// precedence over a local directory.
type Factory struct{}

// New creates the lister for cfg.
func (Factory) New(cfg domain.RepositoryConfig) (ports.VersionLister, error) {
	switch {
	case cfg.URL != "":
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultRepositoryTimeout
		}
		return NewHTTPLister(cfg.URL, timeout), nil
	case cfg.Dir != "":
		return NewDirLister(cfg.Dir), nil
	default:
		return nil, domain.ErrNoRepository
	}
}
