package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for file storage backends.
type Storage interface {
	// Put stores a file under key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes a file by its key. Returns nil if file doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file given its key.
	GetURL(key string) string
}

// Config selects and configures the backend
type Config struct {
	S3Bucket    string
	S3Region    string
	S3Endpoint  string // MinIO / R2 compatible endpoint
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string // CDN or bucket URL used in returned links

	LocalPath    string
	LocalBaseURL string
}

// New returns S3 storage when a bucket is configured, local disk otherwise.
func New(ctx context.Context, cfg Config) (Storage, error) {
	if cfg.S3Bucket != "" {
		return NewS3Storage(ctx, cfg)
	}
	return NewLocalStorage(cfg.LocalPath, cfg.LocalBaseURL)
}
