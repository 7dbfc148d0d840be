// Package reconcile implements the output-reconciliation engine: the
// mapping from entities to output records, the filename/content cache that
// makes writes idempotent, and the event-driven state machine that keeps
// the generated files consistent with the entity graph.
package reconcile

import (
	"maps"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.bittr.nu/spoolsync/internal/build"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
)

// Template names the engine resolves against the renderer.
const (
	filenameTemplate         = "filename.template"
	filenameForSpoolTemplate = "filename_for_spool.template"
	defaultTemplatePrefix    = "default."
	templateSuffix           = ".template"
)

// Outputs is the filename/content cache. It decides write-vs-skip per
// output record, reference-counts shared filenames, and performs the
// actual writes and deletes through the output directory port.
//
// Content equality is tracked as an xxhash digest of the rendered body
// rather than the body itself.
type Outputs struct {
	mode      domain.Mode
	suffixes  []string
	variants  []string
	sourceURL string

	renderer ports.TemplateRenderer
	dir      ports.OutputDir
	log      ports.Logger

	// filename cache key -> last filename written for that subject.
	filenames map[string]string
	// content cache key -> digest of the last body written.
	contents map[string]uint64
	// filename -> number of subjects currently mapped to it.
	usage map[string]int

	now func() time.Time
}

// NewOutputs creates an empty output cache for one run.
func NewOutputs(
	mode domain.Mode,
	suffixes, variants []string,
	sourceURL string,
	renderer ports.TemplateRenderer,
	dir ports.OutputDir,
	log ports.Logger,
) *Outputs {
	if len(variants) == 0 {
		variants = []string{""}
	}
	return &Outputs{
		mode:      mode,
		suffixes:  suffixes,
		variants:  variants,
		sourceURL: sourceURL,
		renderer:  renderer,
		dir:       dir,
		log:       log,
		filenames: make(map[string]string),
		contents:  make(map[string]uint64),
		usage:     make(map[string]int),
		now:       time.Now,
	}
}

// Subjects expands a filament (optionally bound to a spool) across the
// configured suffix × variant combinations.
func (o *Outputs) Subjects(f *domain.Filament, s *domain.Spool) []domain.Subject {
	subs := make([]domain.Subject, 0, len(o.suffixes)*len(o.variants))
	for _, suffix := range o.suffixes {
		for _, variant := range o.variants {
			subs = append(subs, domain.Subject{
				Filament: f,
				Spool:    s,
				Suffix:   suffix,
				Variant:  variant,
			})
		}
	}
	return subs
}

// Write materializes one output record. The write is skipped entirely when
// both the filename and the body are unchanged for the subject's cache
// keys; that skip is the engine's idempotence guarantee.
func (o *Outputs) Write(sub domain.Subject) error {
	data := o.templateData(sub)

	filename, err := o.filename(data)
	if err != nil {
		return err
	}
	o.usage[filename]++

	fkey := sub.FilenameKey(o.mode)
	ckey := sub.ContentKey(o.mode)
	oldFilename, hadFilename := o.filenames[fkey]
	o.filenames[fkey] = filename

	body, err := o.body(sub, data)
	if err != nil {
		return err
	}

	digest := xxhash.Sum64String(body)
	if oldDigest, ok := o.contents[ckey]; ok && oldDigest == digest &&
		hadFilename && oldFilename == filename {
		o.log.Debug("unchanged, skipping: " + filename)
		return nil
	}

	o.log.Info("writing: " + filename)
	if err := o.dir.WriteFile(filename, []byte(body)); err != nil {
		return err
	}
	o.contents[ckey] = digest
	return nil
}

// Release drops one subject's claim on its output file. The file is
// deleted only when its usage count reaches zero; on the update path the
// delete is suppressed when the recomputed filename is unchanged, because
// the file is about to be rewritten in place. Releasing a subject that was
// never committed is a no-op.
func (o *Outputs) Release(sub domain.Subject, isUpdate bool) error {
	fkey := sub.FilenameKey(o.mode)
	filename, ok := o.filenames[fkey]
	if !ok {
		return nil
	}
	if _, tracked := o.usage[filename]; !tracked {
		return nil
	}

	o.usage[filename]--
	if o.usage[filename] > 0 {
		return nil
	}

	if isUpdate {
		newFilename, err := o.filename(o.templateData(sub))
		if err != nil {
			return err
		}
		if newFilename == filename {
			// Rewritten in place next; deleting here would expose a
			// missing-file window to anything watching the directory.
			return nil
		}
	}

	delete(o.usage, filename)
	delete(o.filenames, fkey)
	delete(o.contents, sub.ContentKey(o.mode))

	o.log.Info("deleting: " + filename)
	return o.dir.Remove(filename)
}

// DeleteAll removes every generated file for the configured suffixes.
func (o *Outputs) DeleteAll() error {
	removed, err := o.dir.RemoveBySuffix(o.suffixes)
	for _, name := range removed {
		o.log.Info("deleting: " + name)
	}
	return err
}

// filename renders the mode-dependent filename template.
func (o *Outputs) filename(data map[string]any) (string, error) {
	name := filenameTemplate
	if o.mode == domain.ModeAll {
		name = filenameForSpoolTemplate
	}
	out, err := o.renderer.Render(name, data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// body renders the material-specific template when the subject declares a
// material, falling back silently to the suffix default when the specific
// template does not exist.
func (o *Outputs) body(sub domain.Subject, data map[string]any) (string, error) {
	defaultName := defaultTemplatePrefix + sub.Suffix + templateSuffix

	name := defaultName
	if sub.Filament.Material != "" {
		name = sub.Filament.Material + "." + sub.Suffix + templateSuffix
	}

	out, err := o.renderer.Render(name, data)
	if err == nil {
		o.log.Debug("rendered with template: " + name)
		return out, nil
	}
	if name == defaultName || !domain.IsTemplateNotFound(err) {
		return "", err
	}

	o.log.Debug("falling back to template: " + defaultName)
	return o.renderer.Render(defaultName, data)
}

// templateData composes the render context: the filament's full payload
// plus vendor, spool, and the sm2s namespace.
func (o *Outputs) templateData(sub domain.Subject) map[string]any {
	data := maps.Clone(sub.Filament.Fields)
	if data == nil {
		data = make(map[string]any)
	}
	if sub.Filament.Vendor != nil {
		data["vendor"] = sub.Filament.Vendor.Fields
	}
	if sub.Spool != nil {
		data["spool"] = sub.Spool.Fields
	} else {
		data["spool"] = map[string]any{}
	}

	ts := o.now()
	data["sm2s"] = map[string]any{
		"name":          "spoolsync",
		"version":       build.Version,
		"now":           ts.Format(time.ANSIC),
		"now_int":       ts.Unix(),
		"slicer_suffix": sub.Suffix,
		"variant":       strings.TrimSpace(sub.Variant),
		"spoolman_url":  o.sourceURL,
	}
	return data
}
