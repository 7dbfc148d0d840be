package ports

//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks

import "go.bittr.nu/spoolsync/internal/core/domain"

// ConfigLoader loads settings from a configuration file.
type ConfigLoader interface {
	// Load searches cwd and its parents for a configuration file and
	// returns its settings. A missing file is not an error; the zero
	// Settings is returned instead.
	Load(cwd string) (domain.Settings, error)
}
