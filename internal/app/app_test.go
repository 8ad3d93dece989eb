package app_test

import (
	"context"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetsync/internal/adapters/cas"
	"go.trai.ch/assetsync/internal/adapters/fs"
	"go.trai.ch/assetsync/internal/adapters/telemetry"
	"go.trai.ch/assetsync/internal/app"
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/assetsync/internal/core/ports/mocks"
	"go.trai.ch/assetsync/internal/engine/synchronizer"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type harness struct {
	src      string
	build    string
	loader   *mocks.MockPipelineLoader
	compiler *mocks.MockShaderCompiler
	stores   *mocks.MockBuildInfoStoreFactory
	watchers *mocks.MockWatcherFactory
	logger   *mocks.MockLogger
	app      *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	root := t.TempDir()
	h := &harness{
		src:      filepath.Join(root, "src"),
		build:    filepath.Join(root, "build"),
		loader:   mocks.NewMockPipelineLoader(ctrl),
		compiler: mocks.NewMockShaderCompiler(ctrl),
		stores:   mocks.NewMockBuildInfoStoreFactory(ctrl),
		watchers: mocks.NewMockWatcherFactory(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	require.NoError(t, os.MkdirAll(h.src, 0o750))

	s := synchronizer.New(
		fs.NewWalker(),
		fs.NewComparer(),
		fs.NewCopier(),
		h.compiler,
		fs.NewHasher(),
		fs.NewVerifier(),
		telemetry.NewNoOp(),
		h.logger,
	)
	s.SetOutput(io.Discard, io.Discard)

	h.app = app.New(h.loader, s, h.stores, h.watchers, h.logger).WithDebounceWindow(10 * time.Millisecond)
	return h
}

func (h *harness) invocation(configuration string) app.Invocation {
	return app.Invocation{
		SourceDir:     h.src,
		BuildDir:      h.build,
		Compiler:      "glslc",
		Configuration: configuration,
	}
}

func (h *harness) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(h.src, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func fakeCompile(_ context.Context, job domain.CompileJob, _, _ io.Writer) error {
	data, err := os.ReadFile(job.Input)
	if err != nil {
		return err
	}
	return os.WriteFile(job.Output, append([]byte("SPIRV:"), data...), 0o600)
}

func TestApp_Run_SinglePass(t *testing.T) {
	h := newHarness(t)
	h.write(t, "a.vert", "void main() {}")
	h.write(t, "b.png", "PNGDATA")

	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)
	h.stores.EXPECT().Open(domain.StateFilePath(h.build)).DoAndReturn(func(path string) (ports.BuildInfoStore, error) {
		return cas.NewStore(path)
	})
	h.compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fakeCompile)
	h.logger.EXPECT().Info("synchronized 2 assets: 1 compiled, 0 cached, 1 copied, 0 up to date, 0 ignored")

	require.NoError(t, h.app.Run(context.Background(), h.invocation("Release")))

	_, err := os.Stat(filepath.Join(h.build, "a.vert"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(h.build, "b.png"))
	require.NoError(t, err)
}

func TestApp_Run_UnknownConfiguration(t *testing.T) {
	h := newHarness(t)
	h.write(t, "a.vert", "void main() {}")

	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)

	err := h.app.Run(context.Background(), h.invocation("Profile"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownConfiguration)

	_, err = os.Stat(h.build)
	assert.True(t, os.IsNotExist(err))
}

func TestApp_Run_UnknownCompiler(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)

	inv := h.invocation("Debug")
	inv.Compiler = "/usr/bin/dxc"
	err := h.app.Run(context.Background(), inv)
	assert.ErrorIs(t, err, domain.ErrUnknownCompiler)
}

func TestApp_Run_InvalidDirectories(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(h *harness, inv *app.Invocation)
		wantErr error
	}{
		{
			name: "missing source",
			modify: func(h *harness, inv *app.Invocation) {
				inv.SourceDir = filepath.Join(h.src, "missing")
			},
			wantErr: domain.ErrSourceNotDirectory,
		},
		{
			name: "source is a file",
			modify: func(h *harness, inv *app.Invocation) {
				inv.SourceDir = filepath.Join(h.src, "file.txt")
			},
			wantErr: domain.ErrSourceNotDirectory,
		},
		{
			name: "build equals source",
			modify: func(h *harness, inv *app.Invocation) {
				inv.BuildDir = h.src + string(filepath.Separator)
			},
			wantErr: domain.ErrInvalidArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.write(t, "file.txt", "x")
			h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)

			inv := h.invocation("Debug")
			tt.modify(h, &inv)

			err := h.app.Run(context.Background(), inv)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_FlagOverrides(t *testing.T) {
	h := newHarness(t)
	h.write(t, "a.comp", "void main() {}")

	h.loader.EXPECT().Load("pipeline.yaml").Return(domain.DefaultPipelineSpec(), nil)
	h.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, job domain.CompileJob, stdout, stderr io.Writer) error {
			assert.Equal(t, filepath.Join(h.build, "a.comp.spv"), job.Output)
			assert.Equal(t, []string{"--target-env=vulkan1.2", "-Os"}, job.Args)
			return fakeCompile(ctx, job, stdout, stderr)
		})
	h.logger.EXPECT().Info(gomock.Any())

	inv := h.invocation("MinSizeRel")
	inv.PipelinePath = "pipeline.yaml"
	inv.TargetEnv = "vulkan1.2"
	inv.OutputSuffix = ".spv"
	inv.NoCache = true

	require.NoError(t, h.app.Run(context.Background(), inv))

	_, err := os.Stat(domain.StateFilePath(h.build))
	assert.True(t, os.IsNotExist(err))
}

func TestApp_Run_CompilerFailure(t *testing.T) {
	h := newHarness(t)
	h.write(t, "a.vert", "broken")

	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)
	h.stores.EXPECT().Open(gomock.Any()).Return(cas.NewStore(domain.StateFilePath(h.build)))
	h.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrCompilerFailed)

	err := h.app.Run(context.Background(), h.invocation("Debug"))
	assert.ErrorIs(t, err, domain.ErrCompilerFailed)
}

// fakeWatcher delivers events pushed by the test.
type fakeWatcher struct {
	events  chan ports.WatchEvent
	started chan struct{}
	once    sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events:  make(chan ports.WatchEvent, 10),
		started: make(chan struct{}),
	}
}

func (w *fakeWatcher) Start(ctx context.Context, _ string) error {
	close(w.started)
	go func() {
		<-ctx.Done()
		_ = w.Stop()
	}()
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.once.Do(func() { close(w.events) })
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func TestApp_Run_Watch(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness(t)
	h.write(t, "a.png", "PNGDATA")

	w := newFakeWatcher()
	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)
	h.stores.EXPECT().Open(gomock.Any()).Return(cas.NewStore(domain.StateFilePath(h.build)))
	h.watchers.EXPECT().NewWatcher(gomock.Any()).Return(w, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inv := h.invocation("Debug")
	inv.Watch = true

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx, inv) }()

	select {
	case <-w.started:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher was not started")
	}

	_, err := os.Stat(filepath.Join(h.build, "a.png"))
	require.NoError(t, err)

	h.write(t, "b.png", "MOREPNG")
	w.events <- ports.WatchEvent{Path: filepath.Join(h.src, "b.png"), Operation: ports.OpCreate}

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(h.build, "b.png"))
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch mode did not stop")
	}
}

func TestApp_Run_WatchKeepsRunningAfterFailedPass(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := newHarness(t)
	h.write(t, "a.vert", "broken")

	w := newFakeWatcher()
	h.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)
	h.stores.EXPECT().Open(gomock.Any()).Return(cas.NewStore(domain.StateFilePath(h.build)))
	h.watchers.EXPECT().NewWatcher(gomock.Any()).Return(w, nil)
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	gomock.InOrder(
		h.compiler.EXPECT().
			Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrCompilerFailed),
		h.compiler.EXPECT().
			Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(fakeCompile),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inv := h.invocation("Debug")
	inv.Watch = true

	done := make(chan error, 1)
	go func() { done <- h.app.Run(ctx, inv) }()

	select {
	case <-w.started:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher was not started")
	}

	h.write(t, "a.vert", "void main() {}")
	w.events <- ports.WatchEvent{Path: filepath.Join(h.src, "a.vert"), Operation: ports.OpWrite}

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(filepath.Join(h.build, "a.vert"))
		return err == nil && string(data) == "SPIRV:void main() {}"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
