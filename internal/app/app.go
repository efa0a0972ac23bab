// Package app implements the application layer for cbuild.
package app

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.chol.dev/cbuild/internal/adapters/cache"        //nolint:depguard // Per-invocation store construction
	fsadapter "go.chol.dev/cbuild/internal/adapters/fs" //nolint:depguard // Per-invocation fingerprinter construction
	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.chol.dev/cbuild/internal/engine/driver"
	"go.chol.dev/cbuild/internal/engine/embed"
	"go.chol.dev/cbuild/internal/engine/stale"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	driver    *driver.Driver
	logger    ports.Logger
	lister    ports.Lister
	workspace ports.Workspace
	fs        afero.Fs
}

// Option configures an App.
type Option func(*App)

// WithFs sets a custom filesystem for the per-invocation cache store and
// fingerprinter. This is primarily useful for testing with in-memory
// filesystems.
func WithFs(fsys afero.Fs) Option {
	return func(a *App) {
		a.fs = fsys
	}
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	drv *driver.Driver,
	logger ports.Logger,
	lister ports.Lister,
	workspace ports.Workspace,
	opts ...Option,
) *App {
	a := &App{
		loader:    loader,
		driver:    drv,
		logger:    logger,
		lister:    lister,
		workspace: workspace,
		fs:        afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BuildOptions adjust a single build invocation.
type BuildOptions struct {
	// Force recompiles every source regardless of recorded fingerprints.
	Force bool
	// Compiler overrides the configured compiler executable when non-empty.
	Compiler string
}

// Build runs one incremental build for the project described by the config
// file at configPath. The cache store, fingerprinter and oracle live for
// exactly one invocation; only the driver and its adapters are shared.
func (a *App) Build(ctx context.Context, configPath string, opts BuildOptions) error {
	project, err := a.loadProject(configPath)
	if err != nil {
		return err
	}
	if opts.Compiler != "" {
		project.Compiler = opts.Compiler
	}
	if opts.Force {
		project.RebuildAll = true
	}

	store, err := cache.Open(project.CacheFile, cache.WithFs(a.fs))
	if err != nil {
		return zerr.Wrap(err, "failed to open build cache")
	}

	fp, err := fsadapter.ForMode(project.Stale, a.fs)
	if err != nil {
		return err
	}

	if err := a.driver.Build(ctx, project, store, stale.NewOracle(store, fp)); err != nil {
		return zerr.Wrap(err, "build failed")
	}
	return nil
}

// Clean removes the object files from the project's bin directory and
// deletes the persisted build cache.
func (a *App) Clean(configPath string) error {
	project, err := a.loadProject(configPath)
	if err != nil {
		return err
	}

	entries, err := a.lister.List(project.BinDir)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}

	removed := 0
	for _, ent := range entries {
		if ent.IsDir || !strings.HasSuffix(ent.Name, ".o") {
			continue
		}
		if err := a.workspace.Remove(filepath.Join(project.BinDir, ent.Name)); err != nil {
			return err
		}
		removed++
	}

	if err := a.workspace.Remove(project.CacheFile); err != nil {
		return err
	}

	if removed == 0 {
		a.logger.Info("nothing to clean")
	} else {
		a.logger.Info(fmt.Sprintf("removed %d object files", removed))
	}
	return nil
}

// EmbedOptions adjust a single embed invocation.
type EmbedOptions struct {
	// Bytes embeds the file as an unsigned char array instead of a string
	// array.
	Bytes bool
}

// Embed generates a C header at out carrying the contents of the file at
// src.
func (a *App) Embed(src, out string, opts EmbedOptions) error {
	mode := embed.StringArray
	if opts.Bytes {
		mode = embed.ByteArray
	}

	gen := embed.NewGenerator(embed.WithFs(a.fs))
	if err := gen.Generate(src, out, mode); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("embedded %s into %s", src, out))
	return nil
}

func (a *App) loadProject(configPath string) (*domain.Project, error) {
	project, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return project, nil
}
