package abstraction

import (
	"context"

	"snapshare/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, files []entity.IncomingFile) (*entity.BatchOutcome, error)
}
