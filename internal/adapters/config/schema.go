package config

// PipelineFile represents the structure of a pipeline YAML file.
type PipelineFile struct {
	Version      string                         `yaml:"version"`
	TargetEnv    string                         `yaml:"targetEnv"`
	OutputSuffix string                         `yaml:"outputSuffix"`
	Extensions   ExtensionsDTO                  `yaml:"extensions"`
	Flags        map[string]map[string][]string `yaml:"flags"`
	BuildRecords *bool                          `yaml:"buildRecords"`
}

// ExtensionsDTO lists the extensions of each non-plain handling class.
// A nil list keeps the default set; an empty list disables the class.
type ExtensionsDTO struct {
	Shader  []string `yaml:"shader"`
	Include []string `yaml:"include"`
}
