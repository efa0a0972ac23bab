package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.chol.dev/cbuild/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.chol.dev/cbuild/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.chol.dev/cbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.chol.dev/cbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.chol.dev/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the driver graft node.
const NodeID graft.ID = "engine.driver"

func init() {
	graft.Register(graft.Node[*Driver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			fs.ListerNodeID,
			fs.WorkspaceNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Driver, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
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

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, lister, workspace, log, telemetry), nil
		},
	})
}
