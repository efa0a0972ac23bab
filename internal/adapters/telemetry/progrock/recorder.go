// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.chol.dev/cbuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using the progrock vertex model: one
// vertex per build step.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Step starts a vertex named after the build step.
func (r *Recorder) Step(name string) ports.Step {
	v := r.rec.Vertex(digest.FromString(name), name)
	return &step{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// step wraps *progrock.VertexRecorder.
type step struct {
	vertex *progrock.VertexRecorder
}

// Write forwards step output to the vertex stdout stream.
func (s *step) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// Done marks the vertex as finished, successfully or with an error.
func (s *step) Done(err error) {
	s.vertex.Done(err)
}

// Cached marks the vertex as already up to date.
func (s *step) Cached() {
	s.vertex.Cached()
}
