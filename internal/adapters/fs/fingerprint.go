// Package fs provides filesystem adapters: file fingerprinting, directory
// listing and workspace mutation.
package fs

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Fingerprinter = (*ModTimeFingerprinter)(nil)
	_ ports.Fingerprinter = (*HashFingerprinter)(nil)
)

// ModTimeFingerprinter fingerprints a file by its modification time in unix
// seconds.
type ModTimeFingerprinter struct {
	fs afero.Fs
}

// NewModTimeFingerprinter creates a mtime-based fingerprinter.
func NewModTimeFingerprinter(fsys afero.Fs) *ModTimeFingerprinter {
	return &ModTimeFingerprinter{fs: fsys}
}

// Fingerprint returns the file's modification time in unix seconds.
func (f *ModTimeFingerprinter) Fingerprint(path string) (uint64, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return uint64(info.ModTime().Unix()), nil //nolint:gosec // mtimes predate 1970 only on broken filesystems
}

// HashFingerprinter fingerprints a file by the xxhash64 of its contents.
// Slower than mtime but immune to checkout-time churn.
type HashFingerprinter struct {
	fs afero.Fs
}

// NewHashFingerprinter creates a content-hash fingerprinter.
func NewHashFingerprinter(fsys afero.Fs) *HashFingerprinter {
	return &HashFingerprinter{fs: fsys}
}

// Fingerprint returns the xxhash64 of the file contents.
func (f *HashFingerprinter) Fingerprint(path string) (uint64, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// ForMode returns the fingerprinter matching the configured staleness mode.
func ForMode(mode domain.StaleMode, fsys afero.Fs) (ports.Fingerprinter, error) {
	switch mode {
	case domain.StaleModTime, "":
		return NewModTimeFingerprinter(fsys), nil
	case domain.StaleHash:
		return NewHashFingerprinter(fsys), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStaleMode, "mode", string(mode))
	}
}
