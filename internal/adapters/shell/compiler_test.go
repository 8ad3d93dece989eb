package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetsync/internal/adapters/shell"
	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeScript creates an executable shell script acting as a fake compiler.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test script must be executable
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCompiler_Compile_Arguments(t *testing.T) {
	tmpDir := t.TempDir()
	argsFile := filepath.Join(tmpDir, "args.txt")
	compilerPath := writeScript(t, tmpDir, "glslc", `for a in "$@"; do echo "$a"; done > "`+argsFile+`"`)

	job := domain.CompileJob{
		Compiler: compilerPath,
		Input:    "in.vert",
		Output:   "out.vert",
		Args:     []string{"--target-env=vulkan1.3", "-O"},
	}

	err := shell.NewCompiler().Compile(context.Background(), job, io.Discard, io.Discard)
	require.NoError(t, err)

	got, err := os.ReadFile(argsFile) //nolint:gosec // Test file with controlled path
	require.NoError(t, err)
	assert.Equal(t, []string{"in.vert", "-o", "out.vert", "--target-env=vulkan1.3", "-O"},
		strings.Split(strings.TrimSpace(string(got)), "\n"))
}

func TestCompiler_Compile_ProducesOutput(t *testing.T) {
	tmpDir := t.TempDir()
	compilerPath := writeScript(t, tmpDir, "glslangValidator", `cp "$1" "$3"`)

	input := filepath.Join(tmpDir, "mesh.frag")
	output := filepath.Join(tmpDir, "mesh.frag.spv")
	require.NoError(t, os.WriteFile(input, []byte("void main() {}"), 0o600))

	job := domain.CompileJob{Compiler: compilerPath, Input: input, Output: output}
	require.NoError(t, shell.NewCompiler().Compile(context.Background(), job, io.Discard, io.Discard))

	got, err := os.ReadFile(output) //nolint:gosec // Test file with controlled path
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", string(got))
}

func TestCompiler_Compile_StreamsOutput(t *testing.T) {
	tmpDir := t.TempDir()
	compilerPath := writeScript(t, tmpDir, "glslc", `echo "compiling $1"; echo "warning: unused" >&2`)

	var stdout, stderr bytes.Buffer
	job := domain.CompileJob{Compiler: compilerPath, Input: "a.comp", Output: "b.comp"}
	require.NoError(t, shell.NewCompiler().Compile(context.Background(), job, &stdout, &stderr))

	assert.Equal(t, "compiling a.comp\n", stdout.String())
	assert.Equal(t, "warning: unused\n", stderr.String())
}

func TestCompiler_Compile_Failure(t *testing.T) {
	tmpDir := t.TempDir()
	compilerPath := writeScript(t, tmpDir, "glslc", `echo "error: syntax" >&2; exit 2`)

	var stderr bytes.Buffer
	job := domain.CompileJob{Compiler: compilerPath, Input: "bad.vert", Output: "bad.spv"}
	err := shell.NewCompiler().Compile(context.Background(), job, io.Discard, &stderr)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCompilerFailed)
	assert.Contains(t, stderr.String(), "error: syntax")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 2, zErr.Metadata()["exit_code"])
	assert.Equal(t, "bad.vert", zErr.Metadata()["input"])
}

func TestCompiler_Compile_MissingExecutable(t *testing.T) {
	job := domain.CompileJob{
		Compiler: filepath.Join(t.TempDir(), "glslc"),
		Input:    "a.vert",
		Output:   "a.spv",
	}
	err := shell.NewCompiler().Compile(context.Background(), job, io.Discard, io.Discard)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCompilerFailed)
}

func TestCompiler_Compile_BareNameUsesPath(t *testing.T) {
	tmpDir := t.TempDir()
	marker := filepath.Join(tmpDir, "ran")
	writeScript(t, tmpDir, "glslc", `touch "`+marker+`"`)

	t.Setenv("PATH", tmpDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	job := domain.CompileJob{Compiler: "glslc", Input: "a.vert", Output: "a.spv"}
	require.NoError(t, shell.NewCompiler().Compile(context.Background(), job, io.Discard, io.Discard))

	_, err := os.Stat(marker)
	assert.NoError(t, err)
}

func TestCompiler_Compile_Cancelled(t *testing.T) {
	tmpDir := t.TempDir()
	compilerPath := writeScript(t, tmpDir, "glslc", `sleep 5`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := domain.CompileJob{Compiler: compilerPath, Input: "a.vert", Output: "a.spv"}
	err := shell.NewCompiler().Compile(ctx, job, io.Discard, io.Discard)
	assert.Error(t, err)
}
