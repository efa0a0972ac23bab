// Package cache implements the flat-file build cache store.
package cache

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore using a line-oriented text file, one
// entry per line:
//
//	"<path>" <decimal fingerprint>
//
// An absent backing file is equivalent to an empty store. Save rewrites the
// whole file; there is no atomic rename, a crash mid-write leaves a truncated
// cache, which is an accepted risk for a dev-loop cache.
type Store struct {
	fs      afero.Fs
	path    string
	entries map[string]uint64
	dirty   bool
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets a custom filesystem for the store. This is primarily useful
// for testing with in-memory filesystems.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) {
		s.fs = fsys
	}
}

// Open loads the cache store backed by the file at the given path. A missing
// file yields an empty store; a structurally malformed file fails the whole
// load with domain.ErrCacheCorrupted.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		fs:      afero.NewOsFs(),
		path:    filepath.Clean(path),
		entries: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read build cache"), "path", s.path)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		path, fp, perr := parseLine(scanner.Text())
		if perr != nil {
			err := zerr.Wrap(domain.ErrCacheCorrupted, perr.Error())
			err = zerr.With(err, "path", s.path)
			return zerr.With(err, "line", n)
		}
		s.entries[path] = fp
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to scan build cache"), "path", s.path)
	}
	return nil
}

// parseLine splits one `"<path>" <fingerprint>` record.
func parseLine(line string) (string, uint64, error) {
	if !strings.HasPrefix(line, `"`) {
		return "", 0, errors.New("entry does not start with a quoted path")
	}
	end := strings.IndexByte(line[1:], '"')
	if end < 0 {
		return "", 0, errors.New("unterminated path quote")
	}
	path := line[1 : 1+end]

	fp, err := strconv.ParseUint(strings.TrimSpace(line[end+2:]), 10, 64)
	if err != nil {
		return "", 0, errors.New("invalid fingerprint value")
	}
	return path, fp, nil
}

// Get returns the fingerprint recorded for path.
func (s *Store) Get(path string) (uint64, bool) {
	fp, ok := s.entries[path]
	return fp, ok
}

// Set records fp for path, overwriting any previous value.
func (s *Store) Set(path string, fp uint64) {
	if old, ok := s.entries[path]; ok && old == fp {
		return
	}
	s.entries[path] = fp
	s.dirty = true
}

// Len reports the number of tracked paths.
func (s *Store) Len() int {
	return len(s.entries)
}

// Dirty reports whether any entry changed since the store was loaded or
// last saved.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save serializes every entry back to the backing file, sorted by path,
// replacing the previous contents entirely.
func (s *Store) Save() error {
	paths := make([]string, 0, len(s.entries))
	for path := range s.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	for _, path := range paths {
		buf.WriteByte('"')
		buf.WriteString(path)
		buf.WriteString(`" `)
		buf.WriteString(strconv.FormatUint(s.entries[path], 10))
		buf.WriteByte('\n')
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory for build cache"), "path", s.path)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build cache"), "path", s.path)
	}

	s.dirty = false
	return nil
}
