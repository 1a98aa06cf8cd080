package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/core/domain"
	"go.trai.ch/postpub/internal/core/ports"
)

// NodeID is the unique identifier for the bundle store Graft node.
const NodeID graft.ID = "adapter.bundle_store"

func init() {
	graft.Register(graft.Node[ports.BundleStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BundleStore, error) {
			return NewStore(domain.DefaultStorePath()), nil
		},
	})
}
