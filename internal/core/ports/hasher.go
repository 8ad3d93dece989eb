package ports

import (
	"context"

	"go.trai.ch/assetsync/internal/core/domain"
)

// Hasher defines the interface for computing shader input hashes.
type Hasher interface {
	// ComputeIncludeDigest computes a single digest over the given include-only files.
	// The result does not depend on the order of paths.
	ComputeIncludeDigest(ctx context.Context, paths []string) (string, error)

	// ComputeShaderHash computes the input hash of a compile job: the source bytes,
	// the compiler and its arguments, and the include digest.
	ComputeShaderHash(job domain.CompileJob, includeDigest string) (string, error)
}
