package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.chol.dev/cbuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.chol.dev/cbuild/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.chol.dev/cbuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.chol.dev/cbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.chol.dev/cbuild/internal/core/ports"
	"go.chol.dev/cbuild/internal/engine/driver"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			driver.NodeID,
			logger.NodeID,
			fs.ListerNodeID,
			fs.WorkspaceNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			drv, err := graft.Dep[*driver.Driver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			lister, err := graft.Dep[ports.Lister](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, drv, log, lister, workspace), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
