package staleness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/msb/internal/adapters/fs"
	"go.trai.ch/msb/internal/core/ports"
)

// NodeID is the unique identifier for the staleness evaluator Graft node.
const NodeID graft.ID = "engine.staleness"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Evaluator, error) {
			stat, err := graft.Dep[ports.FileStat](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(stat), nil
		},
	})
}
