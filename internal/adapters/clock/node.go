package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rulecache/internal/core/ports"
)

// NodeID is the unique identifier for the clock Graft node.
const NodeID graft.ID = "adapter.clock"

func init() {
	graft.Register(graft.Node[ports.Clock]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Clock, error) {
			return NewBuildClock(), nil
		},
	})
}
