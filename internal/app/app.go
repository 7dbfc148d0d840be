// Package app implements the application layer for spoolsync.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.bittr.nu/spoolsync/internal/adapters/outputdir"
	"go.bittr.nu/spoolsync/internal/adapters/spoolman"
	"go.bittr.nu/spoolsync/internal/adapters/templates"
	"go.bittr.nu/spoolsync/internal/adapters/watcher"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.bittr.nu/spoolsync/internal/engine/reconcile"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultURL is the Spoolman installation used when neither the flag
	// nor the config file names one.
	DefaultURL = "http://localhost:7912"
	// DefaultSlicer is the slicer target used when none is configured.
	DefaultSlicer = domain.SlicerSuper

	// initialLoadRetryDelay paces snapshot retries in watch mode, where a
	// temporarily unreachable Spoolman should not kill the process.
	initialLoadRetryDelay = 5 * time.Second

	eventChannelBuffer = 100
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		loader: loader,
		logger: log,
	}
}

// Options carries the command line flag values. Zero values mean "not set";
// set values override the configuration file.
type Options struct {
	URL         string
	OutputDir   string
	Slicer      string
	TemplateDir string
	Variants    string
	Mode        string
	DeleteAll   bool
	Verbose     bool
}

// resolve merges flags over the configuration file over built-in defaults.
func (a *App) resolve(opts Options) (domain.Settings, error) {
	settings, err := a.loader.Load(".")
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.URL != "" {
		settings.URL = opts.URL
	}
	if opts.OutputDir != "" {
		settings.OutputDir = opts.OutputDir
	}
	if opts.Slicer != "" {
		settings.Slicer = opts.Slicer
	}
	if opts.TemplateDir != "" {
		settings.TemplateDir = opts.TemplateDir
	}
	if opts.Variants != "" {
		settings.Variants = strings.Split(opts.Variants, ",")
	}
	if opts.Mode != "" {
		mode, err := domain.ParseMode(opts.Mode)
		if err != nil {
			return domain.Settings{}, err
		}
		settings.Mode = mode
	}
	settings.Verbose = settings.Verbose || opts.Verbose

	if settings.URL == "" {
		settings.URL = DefaultURL
	}
	if settings.Slicer == "" {
		settings.Slicer = DefaultSlicer
	}
	if _, err := domain.SlicerSuffixes(settings.Slicer); err != nil {
		return domain.Settings{}, err
	}
	if settings.TemplateDir == "" {
		settings.TemplateDir, err = defaultTemplateDir(settings.Slicer)
		if err != nil {
			return domain.Settings{}, err
		}
	}

	a.logger.SetVerbose(settings.Verbose)
	return settings, nil
}

// defaultTemplateDir is the per-user template location, one directory per
// slicer so template sets don't mix.
func defaultTemplateDir(slicer string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "cannot determine the user config directory")
	}
	return filepath.Join(configDir, "spoolsync", "templates-"+slicer), nil
}

// session bundles the wired-up engine for one sync or watch run.
type session struct {
	settings domain.Settings
	engine   *templates.Engine
	client   *spoolman.Client
	rec      *reconcile.Reconciler
}

// buildSession resolves settings and wires the renderer, output directory,
// inventory client and reconciler together.
func (a *App) buildSession(opts Options) (*session, error) {
	settings, err := a.resolve(opts)
	if err != nil {
		return nil, err
	}
	if settings.OutputDir == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "no output directory configured, pass --dir")
	}

	engine, err := templates.NewEngine(settings.TemplateDir, a.logger)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateDirMissing) {
			return nil, zerr.Wrap(err, "no templates found, run 'spoolsync seed' to install the starter set")
		}
		return nil, err
	}

	dir, err := outputdir.New(settings.OutputDir, a.logger)
	if err != nil {
		return nil, err
	}

	suffixes, err := domain.SlicerSuffixes(settings.Slicer)
	if err != nil {
		return nil, err
	}

	outputs := reconcile.NewOutputs(
		settings.Mode,
		suffixes,
		settings.Variants,
		settings.URL,
		engine,
		dir,
		a.logger,
	)

	return &session{
		settings: settings,
		engine:   engine,
		client:   spoolman.NewClient(settings.URL, a.logger),
		rec:      reconcile.New(domain.NewGraph(), outputs, settings.Mode, a.logger),
	}, nil
}

// SyncOnce performs one full snapshot sync and exits.
func (a *App) SyncOnce(ctx context.Context, opts Options) error {
	s, err := a.buildSession(opts)
	if err != nil {
		return err
	}

	if opts.DeleteAll {
		if err := s.rec.DeleteAll(); err != nil {
			return err
		}
	}

	if err := s.rec.LoadSnapshot(ctx, s.client); err != nil {
		return err
	}
	return s.rec.MaterializeAll(false)
}

// Watch performs the snapshot sync and then keeps the output directory
// synchronized: websocket events update individual outputs, template edits
// trigger a full re-render. Runs until ctx is done.
func (a *App) Watch(ctx context.Context, opts Options) error {
	s, err := a.buildSession(opts)
	if err != nil {
		return err
	}

	if opts.DeleteAll {
		if err := s.rec.DeleteAll(); err != nil {
			return err
		}
	}

	// The initial snapshot retries forever: watch mode usually starts at
	// boot, possibly before Spoolman is up.
	for {
		err := s.rec.LoadSnapshot(ctx, s.client)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.logger.Error(zerr.Wrap(err, fmt.Sprintf("initial load failed, retrying in %s", initialLoadRetryDelay)))
		select {
		case <-time.After(initialLoadRetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := s.rec.MaterializeAll(false); err != nil {
		return err
	}

	changes := a.startTemplateWatcher(ctx, s.settings.TemplateDir)

	events := make(chan domain.Event, eventChannelBuffer)
	stream := spoolman.NewStream(s.settings.URL, a.logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return stream.Listen(ctx, func(ev domain.Event) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
	})

	// Single owner goroutine: events and template reloads are strictly
	// serialized, so every reconciliation runs to completion before the
	// next input is looked at.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				if err := s.rec.HandleEvent(ev); err != nil {
					return err
				}
			case _, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				a.logger.Info("templates changed, re-rendering all outputs")
				if err := s.engine.Reload(); err != nil {
					a.logger.Error(zerr.Wrap(err, "template reload failed, keeping previous set"))
					continue
				}
				if err := s.rec.MaterializeAll(true); err != nil {
					return err
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// startTemplateWatcher starts the fsnotify watcher for live template
// edits. Watching is best-effort: on failure the returned channel is nil
// (blocks forever in select) and watch mode runs without reloads.
func (a *App) startTemplateWatcher(ctx context.Context, dir string) <-chan struct{} {
	w, err := watcher.NewWatcher()
	if err != nil {
		a.logger.Warn("cannot watch templates: " + err.Error())
		return nil
	}
	if err := w.Start(ctx, dir); err != nil {
		a.logger.Warn("cannot watch templates: " + err.Error())
		_ = w.Stop()
		return nil
	}

	go func() {
		<-ctx.Done()
		_ = w.Stop()
	}()

	return w.Changes()
}

// Clean deletes every generated filament config for the configured slicer.
func (a *App) Clean(_ context.Context, opts Options) error {
	settings, err := a.resolve(opts)
	if err != nil {
		return err
	}
	if settings.OutputDir == "" {
		return zerr.Wrap(domain.ErrConfigInvalid, "no output directory configured, pass --dir")
	}

	dir, err := outputdir.New(settings.OutputDir, a.logger)
	if err != nil {
		return err
	}

	suffixes, err := domain.SlicerSuffixes(settings.Slicer)
	if err != nil {
		return err
	}

	removed, err := dir.RemoveBySuffix(suffixes)
	for _, name := range removed {
		a.logger.Info("deleted: " + name)
	}
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %d files from %s", len(removed), settings.OutputDir))
	return nil
}

// Seed installs the built-in starter templates for the configured slicer.
func (a *App) Seed(_ context.Context, opts Options) error {
	settings, err := a.resolve(opts)
	if err != nil {
		return err
	}
	return templates.Seed(settings.TemplateDir, settings.Slicer, a.logger)
}
