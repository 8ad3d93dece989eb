package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/internal/core/ports"
)

const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.ShaderCompiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShaderCompiler, error) {
			return NewCompiler(), nil
		},
	})
}
