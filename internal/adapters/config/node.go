package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/internal/core/ports"
)

const NodeID graft.ID = "adapter.pipeline_loader"

func init() {
	graft.Register(graft.Node[ports.PipelineLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PipelineLoader, error) {
			return NewLoader(), nil
		},
	})
}
