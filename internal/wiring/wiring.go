// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.chol.dev/cbuild/internal/adapters/config"
	_ "go.chol.dev/cbuild/internal/adapters/fs"
	_ "go.chol.dev/cbuild/internal/adapters/logger"
	_ "go.chol.dev/cbuild/internal/adapters/shell"
	_ "go.chol.dev/cbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.chol.dev/cbuild/internal/app"
	_ "go.chol.dev/cbuild/internal/engine/driver"
)
