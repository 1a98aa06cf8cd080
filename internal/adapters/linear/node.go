package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/core/ports"
)

// NodeID is the unique identifier for the render progress reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewRenderer(os.Stderr), nil
		},
	})
}
