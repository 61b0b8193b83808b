package s3

import (
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"snapshare/pkg/logger"
)

// Store is the S3-compatible media-store adapter.
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
	timeout time.Duration
}

func New(cfg *Config) (*Store, error) {
	logger.Info("connecting to s3-compatible store", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

// objectURL returns the public URL of an object. S3 has no rendition
// pipeline, so display and thumbnail URLs are the same.
func (s *Store) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}
