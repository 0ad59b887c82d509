// Package config provides the configuration loader for rulecache.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds rulecache.yaml in cwd or one of its parents and reads it.
// Without a file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug(fmt.Sprintf("no %s found from %s, using defaults", domain.ConfigFileName, cwd))
		return domain.DefaultConfig(filepath.Clean(cwd)), nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration file at path. Relative paths in the file
// resolve against its directory.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Rulefile
	if err := readAndUnmarshalYAML(absPath, &file); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	l.Logger.Debug("loaded configuration from " + absPath)

	cfg := domain.DefaultConfig(filepath.Dir(absPath))
	if err := apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file *Rulefile) error {
	if err := applyStore(cfg, &file.Store); err != nil {
		return err
	}

	if file.Policy.MaxAge != nil {
		cfg.Policy.MaxAge = *file.Policy.MaxAge
	}

	repo := &file.Repository
	if repo.Dir != "" {
		cfg.Repository.Dir = resolvePath(cfg.Root, repo.Dir)
	}
	cfg.Repository.URL = strings.TrimSuffix(repo.URL, "/")
	if repo.Timeout != nil {
		if *repo.Timeout <= 0 {
			return zerr.With(domain.ErrInvalidConfig, "repository.timeout", repo.Timeout.String())
		}
		cfg.Repository.Timeout = *repo.Timeout
	}

	return nil
}

func applyStore(cfg *domain.Config, store *StoreDTO) error {
	if store.Dir != "" {
		cfg.Store.Dir = resolvePath(cfg.Root, store.Dir)
	}

	if store.Name != "" {
		if strings.ContainsAny(store.Name, `/\`) || store.Name == "." || store.Name == ".." {
			return zerr.With(domain.ErrInvalidConfig, "store.name", store.Name)
		}
		cfg.Store.Name = store.Name
	}

	if store.Backend != "" {
		backend := domain.Backend(strings.ToLower(store.Backend))
		if backend != domain.BackendSQLite && backend != domain.BackendFiles {
			return zerr.With(domain.ErrUnknownBackend, "backend", store.Backend)
		}
		cfg.Store.Backend = backend
	}

	if store.FrontCacheSize != nil {
		if *store.FrontCacheSize <= 0 {
			return zerr.With(domain.ErrInvalidConfig, "store.frontCacheSize", *store.FrontCacheSize)
		}
		cfg.Store.FrontCacheSize = *store.FrontCacheSize
	}

	if store.BusyTimeout != nil {
		if *store.BusyTimeout < 0 {
			return zerr.With(domain.ErrInvalidConfig, "store.busyTimeout", store.BusyTimeout.String())
		}
		cfg.Store.BusyTimeout = *store.BusyTimeout
	}

	return nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given on the command line
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
