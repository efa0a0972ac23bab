package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.chol.dev/cbuild/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("compiling src/main.c")
	log.Warn("cache file missing")
	log.Error(errors.New("cc exited with status 1"))

	out := buf.String()
	for _, want := range []string{
		"level=INFO",
		"compiling src/main.c",
		"level=WARN",
		"cache file missing",
		"level=ERROR",
		"cc exited with status 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
