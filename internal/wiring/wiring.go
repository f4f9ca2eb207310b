// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/msb/internal/adapters/fs"
	_ "go.trai.ch/msb/internal/adapters/logger"
	_ "go.trai.ch/msb/internal/adapters/msbfile"
	_ "go.trai.ch/msb/internal/adapters/shell"
	_ "go.trai.ch/msb/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/msb/internal/app"
	_ "go.trai.ch/msb/internal/engine/scheduler"
	_ "go.trai.ch/msb/internal/engine/staleness"
)
