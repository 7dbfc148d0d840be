// Package outputdir implements the durable file surface for generated
// configs on top of a billy filesystem, so tests can run against memfs.
package outputdir

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dir implements ports.OutputDir rooted at one directory.
type Dir struct {
	fs  billy.Filesystem
	log ports.Logger
}

var _ ports.OutputDir = (*Dir)(nil)

// New creates a Dir rooted at path. The directory must already exist;
// creating it is the user's call, not ours.
func New(path string, log ports.Logger) (*Dir, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirMissing, "failed to open output directory"), "dir", path)
	}
	return &Dir{fs: osfs.New(path), log: log}, nil
}

// NewWithFS creates a Dir over an arbitrary filesystem. Used in tests with
// memfs.
func NewWithFS(bfs billy.Filesystem, log ports.Logger) *Dir {
	return &Dir{fs: bfs, log: log}
}

// WriteFile atomically replaces name with data: the bytes go to a temp
// file in the same directory, which is then renamed over the target.
func (d *Dir) WriteFile(name string, data []byte) error {
	tmp, err := util.TempFile(d.fs, "", "."+name+".tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for "+name)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = d.fs.Remove(tmpName)
		return zerr.Wrap(err, "failed to write "+name)
	}
	if err := tmp.Close(); err != nil {
		_ = d.fs.Remove(tmpName)
		return zerr.Wrap(err, "failed to write "+name)
	}

	if err := d.fs.Rename(tmpName, name); err != nil {
		_ = d.fs.Remove(tmpName)
		return zerr.Wrap(err, "failed to replace "+name)
	}
	return nil
}

// Remove deletes the named file.
func (d *Dir) Remove(name string) error {
	if err := d.fs.Remove(name); err != nil {
		return zerr.Wrap(err, "failed to delete "+name)
	}
	return nil
}

// RemoveBySuffix deletes every file whose name ends in "." + one of the
// given suffixes, returning the removed names.
func (d *Dir) RemoveBySuffix(suffixes []string) ([]string, error) {
	entries, err := d.fs.ReadDir(".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirMissing, "failed to list output directory"), "dir", d.fs.Root())
		}
		return nil, zerr.Wrap(err, "failed to list output directory")
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, suffix := range suffixes {
			if strings.HasSuffix(name, "."+suffix) {
				if err := d.fs.Remove(name); err != nil {
					return removed, zerr.Wrap(err, "failed to delete "+name)
				}
				removed = append(removed, name)
				break
			}
		}
	}
	return removed, nil
}
