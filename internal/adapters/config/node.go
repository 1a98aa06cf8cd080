package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/adapters/logger"
	"go.trai.ch/postpub/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// Commands run from the project root; -C changes into it first.
			return NewLoader(log, "."), nil
		},
	})
}
