package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mvnconf/internal/core/ports"
)

// NodeID is the unique identifier for the repository prober Graft node.
const NodeID graft.ID = "adapter.repository_prober"

func init() {
	graft.Register(graft.Node[ports.RepositoryProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepositoryProber, error) {
			return NewProber(), nil
		},
	})
}
