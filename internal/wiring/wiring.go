// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/postpub/internal/adapters/cas"
	_ "go.trai.ch/postpub/internal/adapters/config"
	_ "go.trai.ch/postpub/internal/adapters/linear"
	_ "go.trai.ch/postpub/internal/adapters/logger"
	_ "go.trai.ch/postpub/internal/adapters/minify"
	_ "go.trai.ch/postpub/internal/adapters/telemetry"
	_ "go.trai.ch/postpub/internal/adapters/templates"
	_ "go.trai.ch/postpub/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/postpub/internal/app"
)
