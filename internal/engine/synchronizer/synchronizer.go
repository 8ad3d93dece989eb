// Package synchronizer mirrors a source tree into a build tree, compiling shaders on the way.
package synchronizer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes a single synchronization pass.
type Request struct {
	SourceRoot string
	BuildRoot  string
	Pipeline   domain.Pipeline
	// Store holds shader build records. A nil store disables the shader memo.
	Store ports.BuildInfoStore
}

// Synchronizer runs synchronization passes.
type Synchronizer struct {
	walker    ports.FileWalker
	comparer  ports.FileComparer
	copier    ports.AssetCopier
	compiler  ports.ShaderCompiler
	hasher    ports.Hasher
	verifier  ports.Verifier
	telemetry ports.Telemetry
	logger    ports.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a new Synchronizer writing progress and compiler output to the process streams.
func New(
	walker ports.FileWalker,
	comparer ports.FileComparer,
	copier ports.AssetCopier,
	compiler ports.ShaderCompiler,
	hasher ports.Hasher,
	verifier ports.Verifier,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Synchronizer {
	return &Synchronizer{
		walker:    walker,
		comparer:  comparer,
		copier:    copier,
		compiler:  compiler,
		hasher:    hasher,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    logger,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects progress lines and compiler output.
func (s *Synchronizer) SetOutput(stdout, stderr io.Writer) {
	s.stdout = stdout
	s.stderr = stderr
}

// Synchronize walks the source tree once, in lexical order, and brings the build tree up to date.
// The first failure ends the pass; the returned report then only covers the assets handled so far.
func (s *Synchronizer) Synchronize(ctx context.Context, req Request) (domain.Report, error) {
	var report domain.Report

	skip := SkipDirs(req.SourceRoot, req.BuildRoot)

	var includeDigest string
	if s.useRecords(req) {
		digest, err := s.includeDigest(ctx, req, skip)
		if err != nil {
			return report, err
		}
		includeDigest = digest
	}

	for path, err := range s.walker.WalkFiles(req.SourceRoot, skip) {
		if err != nil {
			return report, err
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		asset, err := newAsset(req, path)
		if err != nil {
			return report, err
		}

		action, err := s.process(ctx, req, asset, includeDigest)
		if err != nil {
			return report, err
		}
		report.Record(action)
	}

	return report, nil
}

func (s *Synchronizer) useRecords(req Request) bool {
	return req.Store != nil && req.Pipeline.UseRecords
}

// includeDigest hashes every include-only file of the tree, so editing a shared include
// invalidates the records of all shaders.
func (s *Synchronizer) includeDigest(ctx context.Context, req Request, skip []string) (string, error) {
	var includes []string
	for path, err := range s.walker.WalkFiles(req.SourceRoot, skip) {
		if err != nil {
			return "", err
		}
		if req.Pipeline.Extensions.Classify(path) == domain.ClassIncludeOnly {
			includes = append(includes, path)
		}
	}
	return s.hasher.ComputeIncludeDigest(ctx, includes)
}

func newAsset(req Request, path string) (domain.Asset, error) {
	rel, err := filepath.Rel(req.SourceRoot, path)
	if err != nil {
		return domain.Asset{}, zerr.With(zerr.Wrap(err, "failed to compute relative path"), "path", path)
	}
	return domain.Asset{
		SourcePath: path,
		RelPath:    rel,
		DestPath:   filepath.Join(req.BuildRoot, rel),
		Class:      req.Pipeline.Extensions.Classify(path),
	}, nil
}

func (s *Synchronizer) process(
	ctx context.Context,
	req Request,
	asset domain.Asset,
	includeDigest string,
) (domain.Action, error) {
	ctx, vertex := s.telemetry.Record(ctx, asset.RelPath)

	equal, err := s.comparer.Equal(asset.SourcePath, asset.DestPath)
	if err != nil {
		vertex.Complete(err)
		return "", err
	}
	if equal {
		vertex.Cached()
		return domain.ActionUpToDate, nil
	}

	dir := filepath.Dir(asset.DestPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", dir)
		vertex.Complete(err)
		return "", err
	}

	var action domain.Action
	switch asset.Class {
	case domain.ClassShaderSource:
		action, err = s.compile(ctx, req, asset, includeDigest, vertex)
	case domain.ClassIncludeOnly:
		vertex.Log(domain.LogLevelDebug, "include-only file, nothing to build")
		action = domain.ActionIgnored
	default:
		action, err = s.copy(asset)
	}

	if err != nil {
		vertex.Complete(err)
		return "", err
	}
	if action == domain.ActionCached || action == domain.ActionUpToDate {
		vertex.Cached()
	} else {
		vertex.Complete(nil)
	}
	return action, nil
}

func (s *Synchronizer) copy(asset domain.Asset) (domain.Action, error) {
	copied, err := s.copier.CopyIfStale(asset.SourcePath, asset.DestPath)
	if err != nil {
		return "", err
	}
	if copied {
		return domain.ActionCopied, nil
	}
	return domain.ActionUpToDate, nil
}

func (s *Synchronizer) compile(
	ctx context.Context,
	req Request,
	asset domain.Asset,
	includeDigest string,
	vertex ports.Vertex,
) (domain.Action, error) {
	job := req.Pipeline.CompileJob(asset)

	var inputHash string
	if s.useRecords(req) {
		hash, err := s.hasher.ComputeShaderHash(job, includeDigest)
		if err != nil {
			return "", err
		}
		inputHash = hash

		if s.recordIsCurrent(req.Store, asset, job, inputHash) {
			return domain.ActionCached, nil
		}
	}

	progress := fmt.Sprintf("Building shader file %s", asset.SourcePath)
	_, _ = fmt.Fprintln(s.stdout, progress)
	vertex.Log(domain.LogLevelInfo, progress)

	stdout := io.MultiWriter(s.stdout, vertex.Stdout())
	stderr := io.MultiWriter(s.stderr, vertex.Stderr())
	if err := s.compiler.Compile(ctx, job, stdout, stderr); err != nil {
		return "", err
	}

	if inputHash != "" {
		record := domain.ShaderRecord{
			Path:      filepath.ToSlash(asset.RelPath),
			InputHash: inputHash,
			Output:    job.Output,
			Timestamp: time.Now(),
		}
		// A lost record costs one recompile on the next pass.
		if err := req.Store.Put(record); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to store build record for %s: %v", asset.RelPath, err))
		}
	}

	return domain.ActionCompiled, nil
}

func (s *Synchronizer) recordIsCurrent(
	store ports.BuildInfoStore,
	asset domain.Asset,
	job domain.CompileJob,
	inputHash string,
) bool {
	record, err := store.Get(filepath.ToSlash(asset.RelPath))
	if err != nil || record == nil {
		return false
	}
	if record.InputHash != inputHash || record.Output != job.Output {
		return false
	}
	exists, err := s.verifier.VerifyOutputs("", []string{job.Output})
	return err == nil && exists
}

// SkipDirs returns the directories of the source tree a pass must not enter.
// When the build root lies inside the source root, that is the build root itself, which
// also holds the record store. When both roots are the same, only the record store is skipped.
func SkipDirs(sourceRoot, buildRoot string) []string {
	absSource, err := filepath.Abs(sourceRoot)
	if err != nil {
		return nil
	}
	absBuild, err := filepath.Abs(buildRoot)
	if err != nil {
		return nil
	}

	rel, err := filepath.Rel(absSource, absBuild)
	switch {
	case err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)):
		return nil
	case rel == ".":
		return []string{filepath.Join(sourceRoot, domain.StateDirName)}
	default:
		return []string{filepath.Join(sourceRoot, rel)}
	}
}
