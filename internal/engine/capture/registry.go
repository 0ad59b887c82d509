package capture

import (
	"sync"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ServiceLocator = (*Registry)(nil)

// Registry resolves capturing services by name.
// Names are what cached entries refer to, so they must be stable across processes.
type Registry struct {
	mu       sync.RWMutex
	services map[string]ports.CapturingService
}

// NewRegistry creates a Registry holding services.
func NewRegistry(services ...ports.CapturingService) (*Registry, error) {
	r := &Registry{services: make(map[string]ports.CapturingService, len(services))}
	for _, s := range services {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s under its name.
func (r *Registry) Register(s ports.CapturingService) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if _, ok := r.services[name]; ok {
		return zerr.With(domain.ErrServiceAlreadyRegistered, "service", name)
	}
	r.services[name] = s
	return nil
}

// Find returns the service registered under name.
func (r *Registry) Find(name string) (ports.CapturingService, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.services[name]
	return s, ok
}
