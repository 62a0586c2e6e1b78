// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gate/internal/adapters/config"
	_ "go.trai.ch/gate/internal/adapters/logger"
	_ "go.trai.ch/gate/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/gate/internal/app"
	_ "go.trai.ch/gate/internal/engine/selection"
)
