package ports

import "go.trai.ch/assetsync/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving shader build records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the record for a shader path relative to the source root.
	// Returns nil, nil if not found.
	Get(path string) (*domain.ShaderRecord, error)

	// Put stores the record.
	Put(record domain.ShaderRecord) error
}

// BuildInfoStoreFactory opens the record store of a build tree.
type BuildInfoStoreFactory interface {
	// Open loads the store backed by the file at path. A missing file yields an empty store.
	Open(path string) (BuildInfoStore, error)
}
