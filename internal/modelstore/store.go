// Package modelstore persists the trained classifier artifact. The daemon
// loads the artifact once at startup; the trainer writes it after an
// offline run.
package modelstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stresslens/stresslens/pkg/config"
)

// Store abstracts artifact storage for the stress model.
type Store interface {
	PutModel(ctx context.Context, data []byte) error
	GetModel(ctx context.Context) ([]byte, error)
}

// LocalStore implements Store using the local filesystem.
// Useful for development and single-host deployments.
type LocalStore struct {
	Path string
}

// NewLocalStore creates a LocalStore for the given artifact path.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{Path: path}
}

// PutModel writes the artifact, creating parent directories as needed.
func (s *LocalStore) PutModel(ctx context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(s.Path, data, 0o644)
}

// GetModel reads the artifact.
func (s *LocalStore) GetModel(ctx context.Context) ([]byte, error) {
	return os.ReadFile(s.Path)
}

// FromConfig builds the Store selected by the model configuration.
func FromConfig(ctx context.Context, cfg config.ModelConfig) (Store, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.Path), nil
	case "s3":
		return NewS3Store(ctx, cfg)
	case "gcs":
		return NewGCSStore(ctx, cfg.Bucket, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown model store backend %q", cfg.Backend)
	}
}
