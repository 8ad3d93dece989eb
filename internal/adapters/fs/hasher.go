package fs

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for shader sources and their includes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeIncludeDigest hashes the include files concurrently and folds the results
// in path order, so the digest is independent of the order of paths.
func (h *Hasher) ComputeIncludeDigest(ctx context.Context, paths []string) (string, error) {
	sorted := slices.Clone(paths)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	hashes := make([]uint64, len(sorted))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range sorted {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				return err
			}
			hashes[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for i, path := range sorted {
		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0}) // Separator
		if err := binary.Write(hasher, binary.LittleEndian, hashes[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeShaderHash computes a single hash representing the compiler invocation,
// the shader source contents and the include digest.
func (h *Hasher) ComputeShaderHash(job domain.CompileJob, includeDigest string) (string, error) {
	hasher := xxhash.New()

	// Invocation
	_, _ = hasher.WriteString(job.Compiler)
	_, _ = hasher.Write([]byte{0})
	for _, arg := range job.Argv() {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	// Includes
	_, _ = hasher.WriteString(includeDigest)
	_, _ = hasher.Write([]byte{0})

	// Source
	sum, err := h.ComputeFileHash(job.Input)
	if err != nil {
		return "", err
	}
	if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
		return "", zerr.Wrap(err, "failed to write hash to digest")
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
