package minify

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/core/ports"
)

// NodeID is the unique identifier for the compressor Graft node.
const NodeID graft.ID = "adapter.compressor"

func init() {
	graft.Register(graft.Node[ports.Compressor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Compressor, error) {
			return New(), nil
		},
	})
}
