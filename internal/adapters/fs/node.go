package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjtool/internal/core/ports"
)

// ProbeNodeID is the unique identifier for the path probe Graft node.
const ProbeNodeID graft.ID = "adapter.path_probe"

func init() {
	graft.Register(graft.Node[ports.PathProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathProbe, error) {
			return NewProbe(), nil
		},
	})
}
