package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rulecache/internal/core/ports"
)

// NodeID is the unique identifier for the version lister factory Graft node.
const NodeID graft.ID = "adapter.repository_factory"

func init() {
	graft.Register(graft.Node[ports.VersionListerFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionListerFactory, error) {
			return Factory{}, nil
		},
	})
}
