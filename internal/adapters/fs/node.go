package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/msb/internal/core/ports"
)

// NodeID is the unique identifier for the filesystem probe Graft node.
const NodeID graft.ID = "adapter.fs.stat"

func init() {
	graft.Register(graft.Node[ports.FileStat]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileStat, error) {
			return NewStat(), nil
		},
	})
}
