package s3

import (
	"context"
	"sort"

	"github.com/minio/minio-go/v7"

	"snapshare/internal/domain/repository/mediastore"
)

// Search lists objects under the queried folder prefix, newest first.
// Tag queries are unsupported: S3 listing cannot filter by object tags
// server-side, so that cascade tier reports ErrUnsupportedQuery and the
// caller moves on.
func (s *Store) Search(ctx context.Context, q mediastore.Query) (*mediastore.SearchResult, error) {
	if q.Folder == "" {
		return nil, mediastore.ErrUnsupportedQuery
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var photos []mediastore.Photo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    q.Folder + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		photos = append(photos, mediastore.Photo{
			Key:          obj.Key,
			URL:          s.objectURL(obj.Key),
			ThumbnailURL: s.objectURL(obj.Key),
			UploadedAt:   obj.LastModified,
		})
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].UploadedAt.After(photos[j].UploadedAt)
	})

	total := len(photos)
	if q.Limit > 0 && len(photos) > q.Limit {
		photos = photos[:q.Limit]
	}

	return &mediastore.SearchResult{
		Photos: photos,
		Total:  total,
	}, nil
}
