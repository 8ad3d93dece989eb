package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArguments is returned when the tool is invoked with the wrong number of arguments.
	ErrInvalidArguments = zerr.New("expected source dir, build dir, compiler path and build configuration")

	// ErrUnknownConfiguration is returned when the build configuration name is not recognized.
	ErrUnknownConfiguration = zerr.New("unknown build configuration")

	// ErrUnknownCompiler is returned when the compiler binary does not belong to a known family.
	ErrUnknownCompiler = zerr.New("unknown shader compiler")

	// ErrInvalidPipeline is returned when a pipeline file is malformed or contradictory.
	ErrInvalidPipeline = zerr.New("invalid pipeline definition")

	// ErrSourceNotDirectory is returned when the source root is missing or not a directory.
	ErrSourceNotDirectory = zerr.New("source root is not a directory")

	// ErrCompilerFailed is returned when the shader compiler exits with a non-zero status.
	ErrCompilerFailed = zerr.New("shader compilation failed")
)
