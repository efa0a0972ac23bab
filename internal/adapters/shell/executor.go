// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.chol.dev/cbuild/internal/core/domain"
	"go.chol.dev/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes argv[0] with the remaining arguments and blocks until the
// process exits. Stdout and stderr are streamed to the logger. A non-zero
// exit status is returned as domain.ErrCommandFailed carrying the exit code.
func (e *Executor) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	e.logger.Info(strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the project config

	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "command", argv[0])
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write forwards process output to the logger, one line per message. Partial
// lines are forwarded as-is; compilers emit line-buffered diagnostics so this
// is good enough for a build log.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
