// Package config provides the project configuration loader for cbuild.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from the operating system filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a loader reading from the given filesystem.
func NewLoaderWithFs(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load reads a configuration file from the given path and returns the
// defaulted, validated project.
func (l *Loader) Load(path string) (*domain.Project, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Cbuildfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	project := &domain.Project{
		Compiler:  file.Compiler,
		SrcDirs:   file.SrcDirs,
		SrcExt:    file.SrcExt,
		HeaderExt: file.HeaderExt,
		BinDir:    file.BinDir,
		Out:       file.Out,
		CFlags:    file.CFlags,
		LDFlags:   file.LDFlags,
		Stale:     domain.StaleMode(file.Stale),
		CacheFile: file.CacheFile,
	}
	applyDefaults(project, path)

	if err := validate(project); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return project, nil
}

func applyDefaults(p *domain.Project, configPath string) {
	if p.Compiler == "" {
		if cc := os.Getenv("CC"); cc != "" {
			p.Compiler = cc
		} else {
			p.Compiler = "cc"
		}
	}
	if p.SrcExt == "" {
		p.SrcExt = "c"
	}
	if p.HeaderExt == "" {
		p.HeaderExt = "h"
	}
	if p.BinDir == "" {
		p.BinDir = "bin"
	}
	if p.Stale == "" {
		p.Stale = domain.StaleModTime
	}
	if p.CacheFile == "" {
		p.CacheFile = ".cbuild-cache"
	}
	if p.Out == "" {
		p.Out = filepath.Join(p.BinDir, projectName(configPath))
	}
}

// projectName derives a binary name from the directory holding the config
// file.
func projectName(configPath string) string {
	abs, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return "app"
	}
	name := filepath.Base(abs)
	if name == "." || name == string(filepath.Separator) {
		return "app"
	}
	return name
}

func validate(p *domain.Project) error {
	if len(p.SrcDirs) == 0 {
		return domain.ErrNoSourceDirs
	}
	switch p.Stale {
	case domain.StaleModTime, domain.StaleHash:
	default:
		return zerr.With(domain.ErrUnknownStaleMode, "mode", string(p.Stale))
	}
	return nil
}
