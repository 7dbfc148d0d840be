// export_test.go exports private hooks for white-box testing.
package app

import "go.bittr.nu/spoolsync/internal/core/domain"

// Resolve exposes the flag/file/default merge for testing.
func (a *App) Resolve(opts Options) (domain.Settings, error) {
	return a.resolve(opts)
}
