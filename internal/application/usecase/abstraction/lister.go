package abstraction

import (
	"context"

	"snapshare/internal/domain/dto"
)

type Lister interface {
	List(ctx context.Context, limit int) (*dto.ListingPage, error)
}
