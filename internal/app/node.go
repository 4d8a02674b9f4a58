package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mvnconf/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnconf/internal/adapters/hasher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnconf/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnconf/internal/adapters/transport" //nolint:depguard // Wired in app layer
	"go.trai.ch/mvnconf/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			hasher.NodeID,
			transport.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.EnvironmentLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fingerprint, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.RepositoryProber](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, fingerprint, prober), nil
}
