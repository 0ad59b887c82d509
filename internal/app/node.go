package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rulecache/internal/adapters/clock"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/codec"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/repository" //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/snapshot"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/store"      //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rulecache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components groups what the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			store.NodeID,
			repository.NodeID,
			snapshot.NodeID,
			codec.AnyCodecNodeID,
			clock.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.StoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	repositories, err := graft.Dep[ports.VersionListerFactory](ctx)
	if err != nil {
		return nil, err
	}

	snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
	if err != nil {
		return nil, err
	}

	values, err := graft.Dep[*codec.AnyCodec](ctx)
	if err != nil {
		return nil, err
	}

	clk, err := graft.Dep[ports.Clock](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, stores, repositories, snapshotter, values, clk, tracer), nil
}
