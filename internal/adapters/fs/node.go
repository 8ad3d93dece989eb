package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetsync/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	ComparerNodeID graft.ID = "adapter.fs.comparer"
	CopierNodeID   graft.ID = "adapter.fs.copier"
	HasherNodeID   graft.ID = "adapter.fs.hasher"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[ports.FileWalker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileWalker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileComparer]{
		ID:        ComparerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileComparer, error) {
			return NewComparer(), nil
		},
	})

	graft.Register(graft.Node[ports.AssetCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AssetCopier, error) {
			return NewCopier(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
