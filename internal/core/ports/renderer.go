package ports

// TemplateRenderer renders a named template against a record. It is a pure
// function from the engine's point of view: template name + data in, text
// or "not found" out.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type TemplateRenderer interface {
	// Render renders the named template. A missing template is reported
	// with domain.ErrTemplateNotFound so callers can fall back.
	Render(name string, data map[string]any) (string, error)

	// Reload re-reads the template set from its backing store.
	Reload() error
}
