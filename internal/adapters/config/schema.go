package config

import "time"

// Rulefile represents the structure of the rulecache.yaml configuration file.
// Unset fields keep their defaults.
type Rulefile struct {
	Version    string        `yaml:"version"`
	Store      StoreDTO      `yaml:"store"`
	Policy     PolicyDTO     `yaml:"policy"`
	Repository RepositoryDTO `yaml:"repository"`
}

// StoreDTO configures the persistent rule cache.
type StoreDTO struct {
	Dir            string         `yaml:"dir"`
	Name           string         `yaml:"name"`
	Backend        string         `yaml:"backend"`
	FrontCacheSize *int           `yaml:"frontCacheSize"`
	BusyTimeout    *time.Duration `yaml:"busyTimeout"`
}

// PolicyDTO configures how long cached results are reused.
type PolicyDTO struct {
	MaxAge *time.Duration `yaml:"maxAge"`
}

// RepositoryDTO configures where module versions are listed from.
type RepositoryDTO struct {
	Dir     string         `yaml:"dir"`
	URL     string         `yaml:"url"`
	Timeout *time.Duration `yaml:"timeout"`
}
