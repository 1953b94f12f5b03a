package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkgsweep/internal/core/ports"
)

const (
	// FilesystemNodeID is the concrete Filesystem shared by the port nodes.
	FilesystemNodeID  graft.ID = "adapter.fs"
	ScannerNodeID     graft.ID = "adapter.fs.scanner"
	TimestamperNodeID graft.ID = "adapter.fs.timestamper"
	RemoverNodeID     graft.ID = "adapter.fs.remover"
)

func init() {
	graft.Register(graft.Node[*Filesystem]{
		ID:        FilesystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Filesystem, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			fsys, err := graft.Dep[*Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return fsys, nil
		},
	})

	graft.Register(graft.Node[ports.Timestamper]{
		ID:        TimestamperNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.Timestamper, error) {
			fsys, err := graft.Dep[*Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return fsys, nil
		},
	})

	graft.Register(graft.Node[ports.Remover]{
		ID:        RemoverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FilesystemNodeID},
		Run: func(ctx context.Context) (ports.Remover, error) {
			fsys, err := graft.Dep[*Filesystem](ctx)
			if err != nil {
				return nil, err
			}
			return fsys, nil
		},
	})
}
