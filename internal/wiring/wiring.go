// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rulecache/internal/adapters/clock"
	_ "go.trai.ch/rulecache/internal/adapters/codec"
	_ "go.trai.ch/rulecache/internal/adapters/config"
	_ "go.trai.ch/rulecache/internal/adapters/logger"
	_ "go.trai.ch/rulecache/internal/adapters/repository"
	_ "go.trai.ch/rulecache/internal/adapters/snapshot"
	_ "go.trai.ch/rulecache/internal/adapters/store"
	_ "go.trai.ch/rulecache/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/rulecache/internal/app"
)
