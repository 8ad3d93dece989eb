package synchronizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/assetsync/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/assetsync/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/assetsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/assetsync/internal/core/ports"
)

// NodeID is the unique identifier for the synchronizer Graft node.
const NodeID graft.ID = "engine.synchronizer"

func init() {
	graft.Register(graft.Node[*Synchronizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			fs.ComparerNodeID,
			fs.CopierNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			shell.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Synchronizer, error) {
			walker, err := graft.Dep[ports.FileWalker](ctx)
			if err != nil {
				return nil, err
			}

			comparer, err := graft.Dep[ports.FileComparer](ctx)
			if err != nil {
				return nil, err
			}

			copier, err := graft.Dep[ports.AssetCopier](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			compiler, err := graft.Dep[ports.ShaderCompiler](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(walker, comparer, copier, compiler, hasher, verifier, telemetry, log), nil
		},
	})
}
