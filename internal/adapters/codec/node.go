package codec

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// RegistryNodeID is the unique identifier for the type registry Graft node.
	RegistryNodeID graft.ID = "adapter.codec.registry"
	// AnyCodecNodeID is the unique identifier for the any-value codec Graft node.
	AnyCodecNodeID graft.ID = "adapter.codec.any"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[*AnyCodec]{
		ID:        AnyCodecNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID},
		Run: func(ctx context.Context) (*AnyCodec, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewAnyCodec(registry), nil
		},
	})
}
