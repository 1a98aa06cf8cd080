package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/adapters/logger"
	"go.trai.ch/postpub/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			provider := NewProvider(NewLogExporter(log))
			return NewOTelTracerWithProvider(provider, InstrumentationName), nil
		},
	})
}
