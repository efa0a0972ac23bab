package fs

import (
	"errors"
	iofs "io/fs"

	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Lister    = (*FS)(nil)
	_ ports.Workspace = (*FS)(nil)
)

// FS implements ports.Lister and ports.Workspace on top of afero.
type FS struct {
	fs afero.Fs
}

// New creates an FS backed by the operating system filesystem.
func New() *FS {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an FS backed by the given filesystem. This is primarily
// useful for testing with in-memory filesystems.
func NewWithFs(fsys afero.Fs) *FS {
	return &FS{fs: fsys}
}

// List returns the entries of dir, non-recursively.
func (f *FS) List(dir string) ([]ports.DirEntry, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open directory"), "path", dir)
	}

	entries := make([]ports.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, ports.DirEntry{
			Name:  info.Name(),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}

// EnsureDir creates dir and any missing parents.
func (f *FS) EnsureDir(dir string) error {
	if err := f.fs.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// Remove deletes the file at path. A missing file is not an error.
func (f *FS) Remove(path string) error {
	if err := f.fs.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove file"), "path", path)
	}
	return nil
}
