// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgsweep/internal/adapters/config"
	_ "go.trai.ch/pkgsweep/internal/adapters/fs"
	_ "go.trai.ch/pkgsweep/internal/adapters/logger"
	_ "go.trai.ch/pkgsweep/internal/adapters/prompt"
	_ "go.trai.ch/pkgsweep/internal/adapters/report"
	_ "go.trai.ch/pkgsweep/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/pkgsweep/internal/app"
	_ "go.trai.ch/pkgsweep/internal/engine/resolution"
)
