// Package app implements the application layer for assetsync.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/assetsync/internal/adapters/watcher" //nolint:depguard // Debouncer is used directly
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/assetsync/internal/engine/synchronizer"
	"go.trai.ch/zerr"
)

// Invocation holds the arguments and flags of a single command line invocation.
type Invocation struct {
	SourceDir     string
	BuildDir      string
	Compiler      string
	Configuration string

	// PipelinePath is an optional pipeline file; empty means defaults.
	PipelinePath string
	// TargetEnv and OutputSuffix override the pipeline file when not empty.
	TargetEnv    string
	OutputSuffix string
	// NoCache disables the shader build records.
	NoCache bool
	// Watch keeps running passes whenever the source tree changes.
	Watch bool
}

// App represents the main application logic.
type App struct {
	loader         ports.PipelineLoader
	synchronizer   *synchronizer.Synchronizer
	stores         ports.BuildInfoStoreFactory
	watchers       ports.WatcherFactory
	logger         ports.Logger
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.PipelineLoader,
	syncer *synchronizer.Synchronizer,
	stores ports.BuildInfoStoreFactory,
	watchers ports.WatcherFactory,
	logger ports.Logger,
) *App {
	return &App{
		loader:         loader,
		synchronizer:   syncer,
		stores:         stores,
		watchers:       watchers,
		logger:         logger,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long watch mode waits for file events to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// Run validates the invocation and synchronizes the build tree once, or keeps doing so in watch mode.
// Invocation errors are returned before any file is touched.
func (a *App) Run(ctx context.Context, inv Invocation) error {
	req, err := a.prepare(inv)
	if err != nil {
		return err
	}

	if inv.Watch {
		return a.watch(ctx, req)
	}
	return a.pass(ctx, req)
}

func (a *App) prepare(inv Invocation) (synchronizer.Request, error) {
	spec, err := a.loader.Load(inv.PipelinePath)
	if err != nil {
		return synchronizer.Request{}, zerr.Wrap(err, "failed to load pipeline")
	}

	if inv.TargetEnv != "" {
		spec.TargetEnv = inv.TargetEnv
	}
	if inv.OutputSuffix != "" {
		spec.OutputSuffix = inv.OutputSuffix
	}
	if inv.NoCache {
		spec.DisableBuildRecord = true
	}

	pipeline, err := spec.Resolve(inv.Compiler, inv.Configuration)
	if err != nil {
		return synchronizer.Request{}, err
	}

	if err := validateDirs(inv.SourceDir, inv.BuildDir); err != nil {
		return synchronizer.Request{}, err
	}

	req := synchronizer.Request{
		SourceRoot: inv.SourceDir,
		BuildRoot:  inv.BuildDir,
		Pipeline:   pipeline,
	}

	if pipeline.UseRecords {
		store, err := a.stores.Open(domain.StateFilePath(inv.BuildDir))
		if err != nil {
			return synchronizer.Request{}, zerr.Wrap(err, "failed to open build records")
		}
		req.Store = store
	}

	return req, nil
}

func validateDirs(sourceDir, buildDir string) error {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotDirectory, err.Error()), "path", sourceDir)
	}
	if !info.IsDir() {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotDirectory, "not a directory"), "path", sourceDir)
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", sourceDir)
	}
	absBuild, err := filepath.Abs(buildDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve build directory"), "path", buildDir)
	}
	if absSource == absBuild {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidArguments, "build directory must differ from source directory"),
			"path", buildDir,
		)
	}
	return nil
}

func (a *App) pass(ctx context.Context, req synchronizer.Request) error {
	report, err := a.synchronizer.Synchronize(ctx, req)
	if err != nil {
		return zerr.Wrap(err, "synchronization failed")
	}

	a.logger.Info(fmt.Sprintf(
		"synchronized %d assets: %d compiled, %d cached, %d copied, %d up to date, %d ignored",
		report.Total(), report.Compiled, report.Cached, report.Copied, report.UpToDate, report.Ignored,
	))
	return nil
}

// watch runs a pass, then one more pass per settled batch of source changes until ctx is done.
// Failed passes are logged and do not end watch mode.
func (a *App) watch(ctx context.Context, req synchronizer.Request) error {
	a.passLogged(ctx, req)
	if ctx.Err() != nil {
		return nil
	}

	w, err := a.watchers.NewWatcher(synchronizer.SkipDirs(req.SourceRoot, req.BuildRoot))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, req.SourceRoot); err != nil {
		_ = w.Stop()
		return zerr.With(zerr.Wrap(err, "failed to start watching"), "path", req.SourceRoot)
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	defer func() {
		debouncer.Stop()
		_ = w.Stop()
		<-drained
	}()

	a.logger.Info("watching " + req.SourceRoot + " for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.passLogged(ctx, req)
		}
	}
}

func (a *App) passLogged(ctx context.Context, req synchronizer.Request) {
	if err := a.pass(ctx, req); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}
