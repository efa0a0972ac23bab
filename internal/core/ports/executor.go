package ports

import "context"

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes argv[0] with the remaining arguments and blocks until
	// the process exits. A non-zero exit status is returned as an error
	// carrying the exit code.
	Run(ctx context.Context, argv []string) error
}
