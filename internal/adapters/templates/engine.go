// Package templates implements the template renderer over a directory of
// user-editable *.template files.
package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Ext is the file extension identifying template files.
const Ext = ".template"

// Engine implements ports.TemplateRenderer using text/template. The whole
// template set is parsed up front; Reload re-reads the directory, which is
// how watch mode picks up edits.
//
// Engine is owned by the event loop and is not safe for concurrent use.
type Engine struct {
	dir string
	log ports.Logger
	set map[string]*template.Template
}

var _ ports.TemplateRenderer = (*Engine)(nil)

// NewEngine loads every template in dir.
func NewEngine(dir string, log ports.Logger) (*Engine, error) {
	e := &Engine{dir: dir, log: log}
	if err := e.Reload(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload re-parses the template directory, replacing the current set
// atomically: a parse failure leaves the previous set in place.
func (e *Engine) Reload() error {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrTemplateDirMissing, "failed to load templates"), "dir", e.dir)
		}
		return zerr.Wrap(err, "failed to read template directory")
	}

	set := make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, Ext) {
			continue
		}
		src, err := os.ReadFile(filepath.Join(e.dir, name))
		if err != nil {
			return zerr.Wrap(err, "failed to read template "+name)
		}
		tmpl, err := template.New(name).Option("missingkey=zero").Parse(string(src))
		if err != nil {
			return zerr.Wrap(err, "failed to parse template "+name)
		}
		set[name] = tmpl
	}

	e.log.Debug("loaded templates from: " + e.dir)
	e.set = set
	return nil
}

// Render renders the named template against the record.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tmpl, ok := e.set[name]
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrTemplateNotFound, "failed to render"), "template", name)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", zerr.Wrap(err, "failed to render template "+name)
	}
	return buf.String(), nil
}
