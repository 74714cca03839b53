// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/instant/internal/adapters/cas"
	_ "go.trai.ch/instant/internal/adapters/config"
	_ "go.trai.ch/instant/internal/adapters/host"
	_ "go.trai.ch/instant/internal/adapters/logger"
	_ "go.trai.ch/instant/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/instant/internal/app"
	_ "go.trai.ch/instant/internal/engine/snapshot"
)
