package download

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/adapters/telemetry"
	"go.trai.ch/cjtool/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "adapter.downloader"

func init() {
	graft.Register(graft.Node[ports.Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.NodeID},
		Run: func(ctx context.Context) (ports.Downloader, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return NewDownloader(tracer), nil
		},
	})
}
