package ports

// Workspace mutates the build workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// EnsureDir creates dir (and parents) if it does not exist.
	EnsureDir(dir string) error

	// Remove deletes the file at path. Removing a missing file is not an
	// error.
	Remove(path string) error
}
