package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgsweep/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/adapters/prompt"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/adapters/report"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkgsweep/internal/core/ports"
	"go.trai.ch/pkgsweep/internal/engine/resolution"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			fs.RemoverNodeID,
			prompt.NodeID,
			report.NodeID,
			watcher.NodeID,
			logger.NodeID,
			resolution.EngineNodeID,
			resolution.AmbiguityNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.Remover](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	dirWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*resolution.Engine](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*resolution.AmbiguityResolver](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, scanner, remover, prompter, reporter, dirWatcher, log, engine, resolver), nil
}
