package resolution

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgsweep/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgsweep/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgsweep/internal/adapters/prompt" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pkgsweep/internal/core/ports"
)

const (
	// EngineNodeID is the unique identifier for the resolution engine Graft node.
	EngineNodeID graft.ID = "engine.resolution"
	// AmbiguityNodeID is the unique identifier for the ambiguity resolver Graft node.
	AmbiguityNodeID graft.ID = "engine.ambiguity"
)

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        EngineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})

	graft.Register(graft.Node[*AmbiguityResolver]{
		ID:        AmbiguityNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			prompt.NodeID,
			fs.TimestamperNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*AmbiguityResolver, error) {
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}

			timestamps, err := graft.Dep[ports.Timestamper](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewAmbiguityResolver(prompter, timestamps, log), nil
		},
	})
}
