// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.bittr.nu/spoolsync/internal/adapters/config"
	_ "go.bittr.nu/spoolsync/internal/adapters/logger"
	// Register app nodes.
	_ "go.bittr.nu/spoolsync/internal/app"
)
