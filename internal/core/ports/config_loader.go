package ports

import "go.chol.dev/cbuild/internal/core/domain"

// ConfigLoader loads a project definition.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project configuration from the given path.
	Load(path string) (*domain.Project, error)
}
