package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.chol.dev/cbuild/internal/core/ports"
)

const (
	// ListerNodeID is the unique identifier for the Lister graft node.
	ListerNodeID graft.ID = "adapter.lister"
	// WorkspaceNodeID is the unique identifier for the Workspace graft node.
	WorkspaceNodeID graft.ID = "adapter.workspace"
)

func init() {
	graft.Register(graft.Node[ports.Lister]{
		ID:        ListerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Lister, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Workspace, error) {
			return New(), nil
		},
	})
}
