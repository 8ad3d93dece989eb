package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// StateDirName is the directory under the build root that holds the shader build records.
const StateDirName = ".assetsync"

// StateFilePath returns the location of the shader build record store for a build root.
func StateFilePath(buildRoot string) string {
	return filepath.Join(buildRoot, StateDirName, "state.json")
}

// PipelineSpec is the user-tunable part of a pipeline, as read from a pipeline file.
// Zero values mean "use the default".
type PipelineSpec struct {
	TargetEnv          string
	OutputSuffix       string
	ShaderExtensions   []string
	IncludeExtensions  []string
	FlagOverrides      map[CompilerFamily]FlagTable
	DisableBuildRecord bool
}

// DefaultPipelineSpec returns the spec used when no pipeline file is given.
func DefaultPipelineSpec() PipelineSpec {
	return PipelineSpec{
		TargetEnv:         DefaultTargetEnv,
		ShaderExtensions:  slices.Clone(DefaultShaderExtensions),
		IncludeExtensions: slices.Clone(DefaultIncludeExtensions),
	}
}

// Pipeline is the fully resolved settings of a synchronization pass.
type Pipeline struct {
	Compiler      string
	Family        CompilerFamily
	Configuration BuildConfiguration
	TargetEnv     string
	OutputSuffix  string
	Extensions    ExtensionTable
	Flags         []string
	UseRecords    bool
}

// Resolve validates the invocation against the spec and produces a Pipeline.
// Invocation errors are returned before any file is touched.
func (s PipelineSpec) Resolve(compiler, configuration string) (Pipeline, error) {
	config, err := ParseBuildConfiguration(configuration)
	if err != nil {
		return Pipeline{}, err
	}

	family, err := DetectCompilerFamily(compiler)
	if err != nil {
		return Pipeline{}, err
	}

	table, err := s.extensionTable()
	if err != nil {
		return Pipeline{}, err
	}

	flags := DefaultFlagTable(family)
	if override, ok := s.FlagOverrides[family]; ok {
		for c, f := range override {
			flags[c] = f
		}
	}

	targetEnv := s.TargetEnv
	if targetEnv == "" {
		targetEnv = DefaultTargetEnv
	}

	args := TargetEnvArgs(family, targetEnv)
	args = append(args, flags[config]...)

	return Pipeline{
		Compiler:      compiler,
		Family:        family,
		Configuration: config,
		TargetEnv:     targetEnv,
		OutputSuffix:  s.OutputSuffix,
		Extensions:    table,
		Flags:         args,
		UseRecords:    !s.DisableBuildRecord,
	}, nil
}

func (s PipelineSpec) extensionTable() (ExtensionTable, error) {
	shaders := s.ShaderExtensions
	if shaders == nil {
		shaders = DefaultShaderExtensions
	}
	includes := s.IncludeExtensions
	if includes == nil {
		includes = DefaultIncludeExtensions
	}

	table := make(ExtensionTable, len(shaders)+len(includes))
	for _, ext := range shaders {
		if err := validateExtension(ext); err != nil {
			return nil, err
		}
		table[ext] = ClassShaderSource
	}
	for _, ext := range includes {
		if err := validateExtension(ext); err != nil {
			return nil, err
		}
		if table[ext] == ClassShaderSource {
			return nil, zerr.With(zerr.Wrap(ErrInvalidPipeline, "extension is both shader and include"), "extension", ext)
		}
		table[ext] = ClassIncludeOnly
	}
	return table, nil
}

func validateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' || filepath.Ext(ext) != ext {
		return zerr.With(zerr.Wrap(ErrInvalidPipeline, "extension must start with a dot"), "extension", ext)
	}
	return nil
}

// CompileJob builds the compiler invocation for a shader asset.
func (p Pipeline) CompileJob(asset Asset) CompileJob {
	return CompileJob{
		Compiler: p.Compiler,
		Input:    asset.SourcePath,
		Output:   p.OutputPath(asset),
		Args:     p.Flags,
	}
}

// OutputPath returns where the compiled form of a shader asset is written.
func (p Pipeline) OutputPath(asset Asset) string {
	return asset.DestPath + p.OutputSuffix
}
