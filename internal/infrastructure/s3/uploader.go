package s3

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"snapshare/internal/domain/repository/mediastore"
)

func (s *Store) Put(ctx context.Context, req *mediastore.PutRequest) (*mediastore.PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tags := make(map[string]string, len(req.Tags))
	for _, tag := range req.Tags {
		tags[tag] = "true"
	}

	_, err := s.client.PutObject(ctx, s.bucket, req.Key,
		bytes.NewReader(req.Data), int64(len(req.Data)),
		minio.PutObjectOptions{
			ContentType: req.ContentType,
			UserMetadata: map[string]string{
				"original-name": req.OriginalName,
				"uploaded-at":   req.UploadedAt.Format(time.RFC3339),
			},
			UserTags: tags,
		})
	if err != nil {
		return nil, err
	}

	// S3 does not report image dimensions; Width/Height stay zero.
	return &mediastore.PutResult{
		Key: req.Key,
		URL: s.objectURL(req.Key),
	}, nil
}
