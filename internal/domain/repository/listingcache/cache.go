package listingcache

import (
	"context"

	"snapshare/internal/domain/dto"
)

// Cache is a best-effort read cache for listing pages. Both operations
// are allowed to fail silently; the cascade is the source of truth.
type Cache interface {
	Get(ctx context.Context, limit int) (*dto.ListingPage, bool)
	Set(ctx context.Context, limit int, page *dto.ListingPage)
}
