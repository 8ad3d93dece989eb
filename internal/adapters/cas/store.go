// Package cas implements the shader build record store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/assetsync/internal/core/domain"
	"go.trai.ch/assetsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.BuildInfoStore        = (*Store)(nil)
	_ ports.BuildInfoStoreFactory = (*Factory)(nil)
)

// Store implements ports.BuildInfoStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ShaderRecord
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ShaderRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read build info store"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal build info store"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build info store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for build info store"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write build info store"), "path", s.path)
	}

	return nil
}

// Get retrieves the record for a shader path.
func (s *Store) Get(path string) (*domain.ShaderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and persists the store.
func (s *Store) Put(record domain.ShaderRecord) error {
	if record.Path == "" {
		return zerr.New("shader record has no path")
	}

	s.mu.Lock()
	s.cache[record.Path] = record
	s.mu.Unlock()

	return s.save()
}

// Factory opens stores by path.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open loads the store backed by the file at path.
func (f *Factory) Open(path string) (ports.BuildInfoStore, error) {
	return NewStore(path)
}
