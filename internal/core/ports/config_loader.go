package ports

import "go.trai.ch/assetsync/internal/core/domain"

// PipelineLoader defines the interface for loading pipeline definitions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type PipelineLoader interface {
	// Load reads the pipeline file at path and merges it over the defaults.
	// An empty path returns domain.DefaultPipelineSpec().
	Load(path string) (domain.PipelineSpec, error)
}
