package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/postpub/internal/adapters/cas"
	"go.trai.ch/postpub/internal/adapters/config"
	"go.trai.ch/postpub/internal/adapters/linear"
	"go.trai.ch/postpub/internal/adapters/logger"
	"go.trai.ch/postpub/internal/adapters/minify"
	"go.trai.ch/postpub/internal/adapters/telemetry"
	"go.trai.ch/postpub/internal/adapters/templates"
	"go.trai.ch/postpub/internal/adapters/watcher"
	"go.trai.ch/postpub/internal/core/ports"
)

// ComponentsNodeID is the unique identifier for the application components Graft node.
const ComponentsNodeID graft.ID = "app.components"

// Components bundles what the command line needs from the dependency graph.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			minify.NodeID,
			cas.NodeID,
			templates.NodeID,
			telemetry.NodeID,
			logger.NodeID,
			watcher.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			compressor, err := graft.Dep[ports.Compressor](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BundleStore](ctx)
			if err != nil {
				return nil, err
			}
			engine, err := graft.Dep[ports.TemplateEngine](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, compressor, store, engine, tracer, log, w, reporter),
				Logger: log,
			}, nil
		},
	})
}
