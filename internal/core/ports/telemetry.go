package ports

import "io"

// Telemetry records build steps for progress rendering.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Step begins recording a named step, e.g. one compile invocation.
	Step(name string) Step

	// Close flushes and closes the recording session.
	Close() error
}

// Step represents one recorded build step. Writes go to the step's output
// stream.
type Step interface {
	io.Writer

	// Done completes the step, recording err if non-nil.
	Done(err error)

	// Cached marks the step as skipped because it was already up to date.
	Cached()
}
