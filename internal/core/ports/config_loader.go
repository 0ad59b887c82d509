package ports

import "go.trai.ch/rulecache/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given working directory.
	// It returns the defaults rooted at cwd when no configuration file exists.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration file at path.
	LoadFile(path string) (*domain.Config, error)
}
