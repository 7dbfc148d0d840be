// Package config provides the configuration loader for spoolsync.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	FS     FileSystem
	Logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{FS: NewOSFS(), Logger: logger}
}

// Load searches cwd and its parents for spoolsync.yaml and returns its
// settings. A missing file yields the zero Settings without an error.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.Settings{}, nil
	}

	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to read "+configPath)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		err = zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		return domain.Settings{}, zerr.With(err, "file", configPath)
	}

	settings, err := toSettings(&file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "file", configPath)
	}

	l.Logger.Debug("loaded configuration: " + configPath)
	return settings, nil
}

// findConfiguration walks from cwd up to the filesystem root looking for
// the configuration file.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			l.Logger.Warn("cannot read " + configPath + ", skipping")
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", false
}

// toSettings validates the decoded file and converts it to domain settings.
func toSettings(file *File) (domain.Settings, error) {
	mode, err := domain.ParseMode(file.Mode)
	if err != nil {
		return domain.Settings{}, err
	}

	if file.Slicer != "" {
		if _, err := domain.SlicerSuffixes(file.Slicer); err != nil {
			return domain.Settings{}, err
		}
	}

	return domain.Settings{
		URL:         file.URL,
		OutputDir:   file.OutputDir,
		Slicer:      file.Slicer,
		TemplateDir: file.TemplateDir,
		Variants:    file.Variants,
		Mode:        mode,
		Verbose:     file.Verbose,
	}, nil
}
