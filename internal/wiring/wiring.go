// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mvnconf/internal/adapters/config"
	_ "go.trai.ch/mvnconf/internal/adapters/hasher"
	_ "go.trai.ch/mvnconf/internal/adapters/logger"
	_ "go.trai.ch/mvnconf/internal/adapters/transport"
	// Register app nodes.
	_ "go.trai.ch/mvnconf/internal/app"
)
