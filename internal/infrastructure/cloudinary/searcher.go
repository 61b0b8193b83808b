package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"

	"snapshare/internal/domain/repository/mediastore"
)

func (s *Store) Search(ctx context.Context, q mediastore.Query) (*mediastore.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.cld.Admin.Search(ctx, searchQuery(q))
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}

	photos := make([]mediastore.Photo, 0, len(res.Assets))
	for i := range res.Assets {
		asset := &res.Assets[i]
		photos = append(photos, mediastore.Photo{
			Key:          asset.PublicID,
			URL:          s.deliveryURL(asset.PublicID, displayTransformation),
			ThumbnailURL: s.deliveryURL(asset.PublicID, thumbnailTransformation),
			UploadedAt:   asset.CreatedAt,
			Tags:         asset.Tags,
		})
	}

	return &mediastore.SearchResult{
		Photos: photos,
		Total:  res.TotalCount,
	}, nil
}

// searchQuery builds the Admin API query for one cascade tier, newest
// upload first.
func searchQuery(q mediastore.Query) search.Query {
	return search.Query{
		Expression: expression(q),
		SortBy:     []search.SortByField{{"uploaded_at": search.Descending}},
		MaxResults: q.Limit,
	}
}

func expression(q mediastore.Query) string {
	if q.Folder != "" {
		return fmt.Sprintf("folder:%s/*", q.Folder)
	}

	parts := make([]string, 0, len(q.Tags))
	for _, tag := range q.Tags {
		parts = append(parts, "tags:"+tag)
	}

	return strings.Join(parts, " OR ")
}
