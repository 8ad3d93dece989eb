package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetsync/cmd/assetsync/commands"
	"go.trai.ch/assetsync/internal/adapters/fs"
	"go.trai.ch/assetsync/internal/adapters/telemetry"
	"go.trai.ch/assetsync/internal/app"
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports/mocks"
	"go.trai.ch/assetsync/internal/engine/synchronizer"
	"go.uber.org/mock/gomock"
)

type setup struct {
	loader   *mocks.MockPipelineLoader
	compiler *mocks.MockShaderCompiler
	stores   *mocks.MockBuildInfoStoreFactory
	logger   *mocks.MockLogger
	cli      *commands.CLI
}

func newSetup(t *testing.T) *setup {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := &setup{
		loader:   mocks.NewMockPipelineLoader(ctrl),
		compiler: mocks.NewMockShaderCompiler(ctrl),
		stores:   mocks.NewMockBuildInfoStoreFactory(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	syncer := synchronizer.New(
		fs.NewWalker(), fs.NewComparer(), fs.NewCopier(), s.compiler,
		fs.NewHasher(), fs.NewVerifier(), telemetry.NewNoOp(), s.logger,
	)
	syncer.SetOutput(io.Discard, io.Discard)

	a := app.New(s.loader, syncer, s.stores, mocks.NewMockWatcherFactory(ctrl), s.logger)
	s.cli = commands.New(a)
	return s
}

func TestRoot_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"three", []string{"src", "build", "glslc"}},
		{"five", []string{"src", "build", "glslc", "Debug", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSetup(t)
			s.cli.SetArgs(tt.args)

			err := s.cli.Execute(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArguments)
		})
	}
}

func TestRoot_UnknownConfiguration(t *testing.T) {
	s := newSetup(t)
	s.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.vert"), []byte("void main() {}"), 0o600))

	s.cli.SetArgs([]string{src, filepath.Join(t.TempDir(), "build"), "glslc", "debug"})

	err := s.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownConfiguration)
}

func TestRoot_FlagsReachInvocation(t *testing.T) {
	s := newSetup(t)

	src := t.TempDir()
	build := filepath.Join(t.TempDir(), "build")
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.frag"), []byte("void main() {}"), 0o600))

	s.loader.EXPECT().Load("pipeline.yaml").Return(domain.DefaultPipelineSpec(), nil)
	s.compiler.EXPECT().
		Compile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, job domain.CompileJob, _, _ io.Writer) error {
			assert.Equal(t, "glslangValidator", job.Compiler)
			assert.Equal(t, filepath.Join(build, "a.frag.spv"), job.Output)
			assert.Equal(t, []string{"--target-env", "vulkan1.1", "--quiet", "-gVS"}, job.Args)
			return os.WriteFile(job.Output, []byte("SPIRV"), 0o600)
		})
	s.logger.EXPECT().Info(gomock.Any())

	s.cli.SetArgs([]string{
		"-p", "pipeline.yaml",
		"--target-env", "vulkan1.1",
		"--output-suffix", ".spv",
		"-n",
		src, build, "glslangValidator", "RelWithDebInfo",
	})

	require.NoError(t, s.cli.Execute(context.Background()))
}

func TestRoot_LogFormatHook(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantJSON bool
		wantErr  bool
	}{
		{name: "text", format: "text"},
		{name: "json", format: "json", wantJSON: true},
		{name: "unknown", format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSetup(t)

			var gotJSON, called bool
			s.cli.SetLogFormatHook(func(json bool) {
				called = true
				gotJSON = json
			})

			src := t.TempDir()
			if !tt.wantErr {
				s.loader.EXPECT().Load("").Return(domain.DefaultPipelineSpec(), nil)
				s.logger.EXPECT().Info(gomock.Any())
			}

			s.cli.SetArgs([]string{"--log-format", tt.format, "-n", src, filepath.Join(t.TempDir(), "build"), "glslc", "Debug"})
			err := s.cli.Execute(context.Background())

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidArguments)
				assert.False(t, called)
				return
			}
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.wantJSON, gotJSON)
		})
	}
}
