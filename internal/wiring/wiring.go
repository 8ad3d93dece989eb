// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/assetsync/internal/adapters/cas"
	_ "go.trai.ch/assetsync/internal/adapters/config"
	_ "go.trai.ch/assetsync/internal/adapters/fs"
	_ "go.trai.ch/assetsync/internal/adapters/logger"
	_ "go.trai.ch/assetsync/internal/adapters/shell"
	_ "go.trai.ch/assetsync/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/assetsync/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/assetsync/internal/app"
	_ "go.trai.ch/assetsync/internal/engine/synchronizer"
)
