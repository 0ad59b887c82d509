package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rulecache/internal/core/ports"
)

// NodeID is the unique identifier for the snapshotter Graft node.
const NodeID graft.ID = "adapter.snapshotter"

func init() {
	graft.Register(graft.Node[ports.Snapshotter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Snapshotter, error) {
			return New(), nil
		},
	})
}
