package app

import (
	"context"

	"go.trai.ch/rulecache/internal/adapters/repository"
	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/rulecache/internal/engine/capture"
	"go.trai.ch/rulecache/internal/engine/rulecache"
)

// VersionDetails is filled by the ListVersions rule.
type VersionDetails struct {
	Coordinate domain.Coordinate
	Versions   []string
}

// NewVersionDetails creates the details for coordinate.
func NewVersionDetails(coordinate domain.Coordinate) *VersionDetails {
	return &VersionDetails{Coordinate: coordinate}
}

// ExtractVersions reads the result of the ListVersions rule. A module without
// versions has no result.
func ExtractVersions(d *VersionDetails) ([]string, bool) {
	return d.Versions, len(d.Versions) > 0
}

// ListVersions asks the versionLister service for the versions of the
// module behind the coordinate.
type ListVersions struct{}

// Execute implements rulecache.Action.
func (ListVersions) Execute(ctx context.Context, d *VersionDetails, services *capture.Services) error {
	versions, err := capture.Call[string, []string](ctx, services, repository.ServiceName, d.Coordinate.Module.String())
	if err != nil {
		return err
	}
	d.Versions = versions
	return nil
}

// NewListVersionsRule creates the cacheable ListVersions rule.
func NewListVersionsRule() *rulecache.Rule[*VersionDetails] {
	return rulecache.NewRule[*VersionDetails](ListVersions{})
}

// coordinateKey is the snapshotted form of a lookup key.
func coordinateKey(c domain.Coordinate) any {
	return c.String()
}
