package modelstore

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStore implements Store using Google Cloud Storage.
type GCSStore struct {
	client *gcs.Client
	bucket string
	key    string
}

// NewGCSStore creates a GCS-backed Store.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStore(ctx context.Context, bucket, key string) (*GCSStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, key: key}, nil
}

// PutModel uploads the artifact.
func (s *GCSStore) PutModel(ctx context.Context, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(s.key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", s.key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", s.key, err)
	}
	return nil
}

// GetModel downloads the artifact.
func (s *GCSStore) GetModel(ctx context.Context) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", s.key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}
