package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.chol.dev/cbuild/cmd/cbuild/commands"
	"go.chol.dev/cbuild/internal/adapters/config"
	adapterfs "go.chol.dev/cbuild/internal/adapters/fs"
	"go.chol.dev/cbuild/internal/adapters/telemetry"
	"go.chol.dev/cbuild/internal/app"
	"go.chol.dev/cbuild/internal/core/ports/mocks"
	"go.chol.dev/cbuild/internal/engine/driver"
	"go.uber.org/mock/gomock"
)

type testLogger struct {
	mu   sync.Mutex
	info []string
}

func (l *testLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, msg)
}

func (l *testLogger) Warn(string) {}
func (l *testLogger) Error(error) {}

const configYAML = `version: "1"
compiler: cc
src_dirs: [src]
out: bin/app
`

// newCLI wires a CLI against real adapters on a memory filesystem with a
// one-source project; only the executor is mocked.
func newCLI(t *testing.T, executor *mocks.MockExecutor) (*commands.CLI, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fsys, "cbuild.yaml", []byte(configYAML), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "src/main.c", []byte("int main(void) { return 0; }"), 0o644))
	require.NoError(t, fsys.Chtimes("src/main.c", time.Unix(1000, 0), time.Unix(1000, 0)))

	log := &testLogger{}
	fsad := adapterfs.NewWithFs(fsys)
	drv := driver.New(executor, fsad, fsad, log, telemetry.NewNoop())
	a := app.New(config.NewLoaderWithFs(fsys), drv, log, fsad, fsad, app.WithFs(fsys))
	return commands.New(a), fsys
}

func TestBuild_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		executor.EXPECT().Run(gomock.Any(), []string{"cc", "-c", "src/main.c", "-o", "bin/main.o"}).Return(nil),
		executor.EXPECT().Run(gomock.Any(), []string{"cc", "-o", "bin/app", "bin/main.o"}).Return(nil),
	)

	cli, fsys := newCLI(t, executor)
	cli.SetArgs([]string{"build"})
	require.NoError(t, cli.Execute(context.Background()))

	exists, err := afero.Exists(fsys, ".cbuild-cache")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBuild_CompilerFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		executor.EXPECT().Run(gomock.Any(), []string{"clang", "-c", "src/main.c", "-o", "bin/main.o"}).Return(nil),
		executor.EXPECT().Run(gomock.Any(), []string{"clang", "-o", "bin/app", "bin/main.o"}).Return(nil),
	)

	cli, _ := newCLI(t, executor)
	cli.SetArgs([]string{"build", "--compiler", "clang"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestBuild_MissingConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, mocks.NewMockExecutor(ctrl))
	cli.SetArgs([]string{"build", "-c", "no-such.yaml"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestClean_RemovesObjectsAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, fsys := newCLI(t, mocks.NewMockExecutor(ctrl))
	for _, path := range []string{"bin/main.o", ".cbuild-cache"} {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("x"), 0o644))
	}

	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))

	for _, gone := range []string{"bin/main.o", ".cbuild-cache"} {
		exists, err := afero.Exists(fsys, gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}
}

func TestEmbed_GeneratesHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, fsys := newCLI(t, mocks.NewMockExecutor(ctrl))
	require.NoError(t, afero.WriteFile(fsys, "banner.txt", []byte("hi\n"), 0o644))

	cli.SetArgs([]string{"embed", "banner.txt", "-o", "banner.h"})
	require.NoError(t, cli.Execute(context.Background()))

	out, err := afero.ReadFile(fsys, "banner.h")
	require.NoError(t, err)
	assert.Contains(t, string(out), "static const char *EMBED_NAME[]")
}

func TestEmbed_RequiresOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, mocks.NewMockExecutor(ctrl))
	cli.SetArgs([]string{"embed", "banner.txt"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, mocks.NewMockExecutor(ctrl))
	cli.SetArgs([]string{"--help"})
	// Cobra handles help automatically.
	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _ := newCLI(t, mocks.NewMockExecutor(ctrl))
	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}
