package cloudinary

import (
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/transformation"

	"snapshare/pkg/logger"
)

// Fixed delivery transformations: bounded fit, automatic quality and
// format negotiation. The store caches transformed renditions itself.
const (
	displayTransformation   = "c_limit,w_1200,h_1200,q_auto,f_auto"
	thumbnailTransformation = "c_limit,w_300,h_300,q_auto,f_auto"
)

// Store is the Cloudinary media-store adapter.
type Store struct {
	cld     *cloudinary.Cloudinary
	timeout time.Duration
}

func New(cfg *Config) (*Store, error) {
	logger.Info("connecting to cloudinary", "cloud", cfg.CloudName)

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}

	return &Store{
		cld:     cld,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}, nil
}

// deliveryURL builds the CDN URL of a stored asset with a fixed
// transformation applied. Deterministic given key and transformation.
func (s *Store) deliveryURL(publicID, chain string) string {
	img, err := s.cld.Image(publicID)
	if err != nil {
		logger.Error("failed to build asset url", "public_id", publicID, "err", err)

		return ""
	}
	img.Transformation = transformation.RawTransformation(chain)

	url, err := img.String()
	if err != nil {
		logger.Error("failed to render asset url", "public_id", publicID, "err", err)

		return ""
	}

	return url
}
