package ports

import "context"

// TemplateWatcher reports changes to the template directory so watch mode
// can reload templates and re-render outputs.
type TemplateWatcher interface {
	// Start begins watching the given directory.
	Start(ctx context.Context, dir string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Changes returns a channel that receives one value per debounced
	// batch of template modifications.
	Changes() <-chan struct{}
}
