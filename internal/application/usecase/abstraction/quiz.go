package abstraction

import (
	"context"

	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/model"
)

type Quiz interface {
	Submit(ctx context.Context, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
	Record(ctx context.Context, data map[string]any) error
	Submissions(ctx context.Context) ([]model.QuizSubmission, error)
}
