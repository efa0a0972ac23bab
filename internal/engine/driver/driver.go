// Package driver implements the incremental build driver.
package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Oracle reports whether a tracked file changed since it was last recorded,
// updating the record as a side effect.
type Oracle interface {
	CheckAndUpdate(path string) (bool, error)
}

// Driver decides which translation units must be recompiled and runs the
// compile and link commands for them, strictly one after another.
type Driver struct {
	executor  ports.Executor
	lister    ports.Lister
	workspace ports.Workspace
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Driver.
func New(
	executor ports.Executor,
	lister ports.Lister,
	workspace ports.Workspace,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Driver {
	return &Driver{
		executor:  executor,
		lister:    lister,
		workspace: workspace,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Build runs one incremental build pass for the project. The store is
// persisted only when at least one file was compiled; a pass in which
// nothing changed leaves the cache file untouched and runs no commands.
func (d *Driver) Build(ctx context.Context, project *domain.Project, store ports.CacheStore, oracle Oracle) error {
	if err := d.workspace.EnsureDir(project.BinDir); err != nil {
		return err
	}

	rebuildAll, err := d.headerScan(project, oracle)
	if err != nil {
		return err
	}

	objects, compiled, err := d.compilePass(ctx, project, oracle, rebuildAll)
	if err != nil {
		return err
	}

	if compiled == 0 {
		d.logger.Info("nothing to rebuild")
		return nil
	}

	if err := d.link(ctx, project, objects); err != nil {
		return err
	}

	if err := store.Save(); err != nil {
		return zerr.Wrap(err, "failed to save build cache")
	}
	return nil
}

// headerScan checks every header in every source directory. A single changed
// header invalidates all translation units: dependency tracking is file
// granularity only, so extra recompiles are accepted over missed ones.
func (d *Driver) headerScan(project *domain.Project, oracle Oracle) (bool, error) {
	rebuildAll := project.RebuildAll

	for _, dir := range project.SrcDirs {
		entries, err := d.lister.List(dir)
		if err != nil {
			return false, err
		}
		for _, ent := range entries {
			if ent.IsDir || !hasExt(ent.Name, project.HeaderExt) {
				continue
			}
			changed, err := oracle.CheckAndUpdate(filepath.Join(dir, ent.Name))
			if err != nil {
				return false, err
			}
			if changed {
				rebuildAll = true
			}
		}
	}
	return rebuildAll, nil
}

// compilePass compiles every source whose fingerprint changed, or all of them
// when rebuildAll is set. It returns the object paths of all sources, compiled
// this run or not: a file that did not need recompiling still needs linking.
func (d *Driver) compilePass(ctx context.Context, project *domain.Project, oracle Oracle, rebuildAll bool) ([]string, int, error) {
	var objects []string
	compiled := 0

	for _, dir := range project.SrcDirs {
		entries, err := d.lister.List(dir)
		if err != nil {
			return nil, 0, err
		}
		for _, ent := range entries {
			if ent.IsDir || !hasExt(ent.Name, project.SrcExt) {
				continue
			}

			src := filepath.Join(dir, ent.Name)
			obj := project.ObjectPath(ent.Name)

			changed, err := oracle.CheckAndUpdate(src)
			if err != nil {
				return nil, 0, err
			}

			if changed || rebuildAll {
				if err := d.compile(ctx, project, src, obj); err != nil {
					return nil, 0, err
				}
				compiled++
			}
			objects = append(objects, obj)
		}
	}
	return objects, compiled, nil
}

func (d *Driver) compile(ctx context.Context, project *domain.Project, src, obj string) error {
	argv := []string{project.Compiler, "-c", src, "-o", obj}
	argv = append(argv, project.CFlags...)

	step := d.telemetry.Step("compile " + src)
	_, _ = fmt.Fprintln(step, strings.Join(argv, " "))

	err := d.executor.Run(ctx, argv)
	step.Done(err)
	if err != nil {
		return zerr.With(err, "source", src)
	}
	return nil
}

func (d *Driver) link(ctx context.Context, project *domain.Project, objects []string) error {
	argv := []string{project.Compiler, "-o", project.Out}
	argv = append(argv, objects...)
	argv = append(argv, project.LDFlags...)

	step := d.telemetry.Step("link " + project.Out)
	_, _ = fmt.Fprintln(step, strings.Join(argv, " "))

	err := d.executor.Run(ctx, argv)
	step.Done(err)
	if err != nil {
		return zerr.With(err, "output", project.Out)
	}
	return nil
}

// hasExt reports whether name has the given extension (without the dot).
func hasExt(name, ext string) bool {
	return strings.TrimPrefix(filepath.Ext(name), ".") == ext && ext != ""
}
