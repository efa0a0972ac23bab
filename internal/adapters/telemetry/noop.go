// Package telemetry provides build step recording implementations.
package telemetry

import "go.chol.dev/cbuild/internal/core/ports"

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Step returns a step that discards everything.
func (Noop) Step(string) ports.Step {
	return noopStep{}
}

// Close does nothing.
func (Noop) Close() error {
	return nil
}

type noopStep struct{}

func (noopStep) Write(p []byte) (int, error) { return len(p), nil }
func (noopStep) Done(error)                  {}
func (noopStep) Cached()                     {}
