package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"snapshare/internal/domain/repository/mediastore"
)

func (s *Store) Put(ctx context.Context, req *mediastore.PutRequest) (*mediastore.PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Cloudinary derives the delivery format itself; the public ID
	// carries no extension.
	publicID := strings.TrimSuffix(req.Key, path.Ext(req.Key))

	resp, err := s.cld.Upload.Upload(ctx, bytes.NewReader(req.Data), uploader.UploadParams{
		PublicID: publicID,
		Tags:     api.CldAPIArray(req.Tags),
		Context: api.CldAPIMap{
			"original_name": req.OriginalName,
			"uploaded_at":   req.UploadedAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}
	if resp.Error.Message != "" {
		return nil, errors.New(resp.Error.Message)
	}

	return &mediastore.PutResult{
		Key:    resp.PublicID,
		URL:    resp.SecureURL,
		Width:  resp.Width,
		Height: resp.Height,
	}, nil
}
