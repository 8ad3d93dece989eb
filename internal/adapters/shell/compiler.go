// Package shell provides the shader compiler adapter that runs the compiler as a subprocess.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ShaderCompiler = (*Compiler)(nil)

// Compiler implements ports.ShaderCompiler using os/exec.
type Compiler struct {
	env []string
}

// NewCompiler creates a new Compiler that runs with the current process environment.
func NewCompiler() *Compiler {
	return &Compiler{env: os.Environ()}
}

// Compile runs the compiler for the job and waits for it to exit.
// The process inherits the environment of the tool and writes straight to stdout and stderr.
func (c *Compiler) Compile(ctx context.Context, job domain.CompileJob, stdout, stderr io.Writer) error {
	if job.Compiler == "" {
		return zerr.Wrap(domain.ErrUnknownCompiler, "no compiler executable given")
	}

	// Bare names are resolved against PATH, anything with a separator is used as is.
	executable := job.Compiler
	if !strings.ContainsRune(executable, filepath.Separator) && !strings.ContainsRune(executable, '/') {
		if lp, err := lookPath(executable, c.env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, job.Argv()...) //nolint:gosec // compiler path is provided by the build system

	// exec.CommandContext sets Args[0] to the executable path.
	// We want to preserve the original name as invoked.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = job.Compiler
	}

	cmd.Env = c.env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrCompilerFailed, exitErr.Error()), "exit_code", exitErr.ExitCode()),
				"input", job.Input,
			)
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to run shader compiler"), "compiler", job.Compiler), "input", job.Input)
	}

	return nil
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	// Find PATH in env
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
