package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CompilerFamily identifies the command line dialect of a shader compiler binary.
type CompilerFamily string

const (
	// FamilyGlslc is the shaderc front end (glslc).
	FamilyGlslc CompilerFamily = "glslc"
	// FamilyGlslang is the Khronos reference compiler (glslangValidator).
	FamilyGlslang CompilerFamily = "glslangValidator"
)

// DefaultTargetEnv is the Vulkan version compiled shaders must be compatible with.
const DefaultTargetEnv = "vulkan1.3"

// DetectCompilerFamily derives the compiler family from the executable name.
// The directory, a trailing ".exe" and letter case are ignored.
func DetectCompilerFamily(compilerPath string) (CompilerFamily, error) {
	name := strings.ToLower(filepath.Base(compilerPath))
	name = strings.TrimSuffix(name, ".exe")

	switch name {
	case "glslc":
		return FamilyGlslc, nil
	case "glslangvalidator", "glslang":
		return FamilyGlslang, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownCompiler, name), "compiler", compilerPath)
	}
}

// ParseCompilerFamily converts a family name as written in a pipeline file.
func ParseCompilerFamily(name string) (CompilerFamily, error) {
	switch CompilerFamily(name) {
	case FamilyGlslc, FamilyGlslang:
		return CompilerFamily(name), nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownCompiler, name), "family", name)
	}
}

// FlagTable holds the optimization and debug flags forwarded per build configuration.
type FlagTable map[BuildConfiguration][]string

// DefaultFlagTable returns the flags each compiler family receives per build configuration.
func DefaultFlagTable(family CompilerFamily) FlagTable {
	switch family {
	case FamilyGlslc:
		return FlagTable{
			ConfigDebug:          {"-O0", "-g"},
			ConfigRelease:        {"-O"},
			ConfigRelWithDebInfo: {"-O", "-g"},
			ConfigMinSizeRel:     {"-Os"},
		}
	case FamilyGlslang:
		return FlagTable{
			ConfigDebug:          {"-Od", "-gVS"},
			ConfigRelease:        {},
			ConfigRelWithDebInfo: {"-gVS"},
			ConfigMinSizeRel:     {"-Os"},
		}
	default:
		return FlagTable{}
	}
}

// TargetEnvArgs returns the target environment arguments in the dialect of the family.
// glslangValidator also gets --quiet so it does not echo the input file name.
func TargetEnvArgs(family CompilerFamily, env string) []string {
	if family == FamilyGlslc {
		return []string{"--target-env=" + env}
	}
	return []string{"--target-env", env, "--quiet"}
}

// CompileJob describes a single invocation of the shader compiler.
type CompileJob struct {
	Compiler string
	Input    string
	Output   string
	Args     []string
}

// Argv returns the full argument vector passed to the compiler, excluding the executable.
func (j CompileJob) Argv() []string {
	argv := make([]string, 0, 3+len(j.Args))
	argv = append(argv, j.Input, "-o", j.Output)
	return append(argv, j.Args...)
}
