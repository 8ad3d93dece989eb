// Package config provides the pipeline file loader for assetsync.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"slices"

	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only pipeline file schema version understood by the loader.
const SupportedVersion = "1"

var _ ports.PipelineLoader = (*Loader)(nil)

// Loader implements ports.PipelineLoader using YAML files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the pipeline file at path and merges it over the default spec.
// An empty path yields the defaults.
func (l *Loader) Load(path string) (domain.PipelineSpec, error) {
	if path == "" {
		return domain.DefaultPipelineSpec(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.PipelineSpec{}, zerr.With(zerr.Wrap(err, "failed to read pipeline file"), "path", path)
	}

	spec, err := Parse(data)
	if err != nil {
		return domain.PipelineSpec{}, zerr.With(err, "path", path)
	}
	return spec, nil
}

// Parse decodes a pipeline file and merges it over the default spec.
func Parse(data []byte) (domain.PipelineSpec, error) {
	var file PipelineFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.PipelineSpec{}, zerr.Wrap(errors.Join(domain.ErrInvalidPipeline, err), "failed to parse pipeline file")
	}

	if file.Version != "" && file.Version != SupportedVersion {
		return domain.PipelineSpec{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidPipeline, "unsupported pipeline version"), "version", file.Version)
	}

	spec := domain.DefaultPipelineSpec()
	if file.TargetEnv != "" {
		spec.TargetEnv = file.TargetEnv
	}
	spec.OutputSuffix = file.OutputSuffix

	if file.Extensions.Shader != nil {
		spec.ShaderExtensions = canonicalizeStrings(file.Extensions.Shader)
	}
	if file.Extensions.Include != nil {
		spec.IncludeExtensions = canonicalizeStrings(file.Extensions.Include)
	}

	overrides, err := parseFlags(file.Flags)
	if err != nil {
		return domain.PipelineSpec{}, err
	}
	spec.FlagOverrides = overrides

	if file.BuildRecords != nil {
		spec.DisableBuildRecord = !*file.BuildRecords
	}

	return spec, nil
}

func parseFlags(raw map[string]map[string][]string) (map[domain.CompilerFamily]domain.FlagTable, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	overrides := make(map[domain.CompilerFamily]domain.FlagTable, len(raw))
	for familyName, perConfig := range raw {
		family, err := domain.ParseCompilerFamily(familyName)
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrInvalidPipeline, err), "unknown compiler family in flags")
		}

		table := make(domain.FlagTable, len(perConfig))
		for configName, flags := range perConfig {
			config, err := domain.ParseBuildConfiguration(configName)
			if err != nil {
				return nil, zerr.Wrap(errors.Join(domain.ErrInvalidPipeline, err), "unknown build configuration in flags")
			}
			table[config] = slices.Clone(flags)
		}
		overrides[family] = table
	}
	return overrides, nil
}

// canonicalizeStrings sorts and deduplicates a list, keeping an empty list non-nil.
func canonicalizeStrings(strs []string) []string {
	sorted := make([]string, len(strs))
	copy(sorted, strs)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
