// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/assetsync/internal/core/domain"
)

// ShaderCompiler defines the interface for invoking the external shader compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type ShaderCompiler interface {
	// Compile runs the compiler for the given job and blocks until it exits.
	//
	// The compiler's own diagnostics are streamed to stdout and stderr.
	// A non-zero exit status is reported as domain.ErrCompilerFailed.
	Compile(ctx context.Context, job domain.CompileJob, stdout, stderr io.Writer) error
}
