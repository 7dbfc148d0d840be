package templates

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed seed
var seedFS embed.FS

const dirPerm = 0o755

// Seed installs the built-in starter templates for the slicer into dir,
// creating the directory if needed. Existing files are never overwritten,
// so user edits survive re-runs.
func Seed(dir, slicer string, log ports.Logger) error {
	src := filepath.Join("seed", slicer)
	entries, err := seedFS.ReadDir(src)
	if err != nil {
		return zerr.Wrap(err, "no starter templates for slicer "+slicer)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create template directory")
	}

	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(target); err == nil {
			log.Debug("keeping existing template: " + target)
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(err, "failed to stat "+target)
		}

		data, err := seedFS.ReadFile(filepath.Join(src, entry.Name()))
		if err != nil {
			return zerr.Wrap(err, "failed to read starter template "+entry.Name())
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return zerr.Wrap(err, "failed to write "+target)
		}
		log.Info("created template: " + target)
	}
	return nil
}
