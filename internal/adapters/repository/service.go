package repository

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/core/ports"
	"go.trai.ch/zerr"
)

// ServiceName is the name under which version listings are recorded.
const ServiceName = "versionLister"

// VersionService exposes a VersionLister as a capturing service. Its input is
// a module id string (group:name) and its output the sorted []string of versions.
type VersionService struct {
	lister  ports.VersionLister
	offline bool
}

var _ ports.CapturingService = (*VersionService)(nil)

// NewVersionService creates the service over lister.
func NewVersionService(lister ports.VersionLister) *VersionService {
	return &VersionService{lister: lister}
}

// Offline returns a copy that trusts every recorded listing instead of
// asking the repository again.
func (s *VersionService) Offline() *VersionService {
	return &VersionService{lister: s.lister, offline: true}
}

// Name implements ports.CapturingService.
func (s *VersionService) Name() string {
	return ServiceName
}

// Provide lists the versions of the module named by input.
func (s *VersionService) Provide(ctx context.Context, input any) (any, error) {
	module, err := moduleInput(input)
	if err != nil {
		return nil, err
	}
	return s.lister.ListVersions(ctx, module)
}

// IsUpToDate lists the module again and compares with the recorded output.
func (s *VersionService) IsUpToDate(ctx context.Context, input, output any) (bool, error) {
	if s.offline {
		return true, nil
	}

	recorded, ok := output.([]string)
	if output != nil && !ok {
		return false, zerr.With(domain.ErrServiceTypeMismatch, "output", fmt.Sprintf("%T", output))
	}

	current, err := s.Provide(ctx, input)
	if err != nil {
		return false, err
	}
	return slices.Equal(current.([]string), recorded), nil
}

func moduleInput(input any) (domain.ModuleID, error) {
	s, ok := input.(string)
	if !ok {
		return domain.ModuleID{}, zerr.With(domain.ErrServiceTypeMismatch, "input", fmt.Sprintf("%T", input))
	}
	return domain.ParseModuleID(s)
}
