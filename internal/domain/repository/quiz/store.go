package quiz

import (
	"context"

	"snapshare/internal/domain/model"
)

// Store holds raw quiz submissions for the debug endpoint. Implemented
// volatile in-memory by default and by MongoDB when configured.
type Store interface {
	Append(ctx context.Context, sub *model.QuizSubmission) error
	List(ctx context.Context) ([]model.QuizSubmission, error)
}

// RowAppender appends one positional row to the answer spreadsheet.
type RowAppender interface {
	AppendRow(ctx context.Context, row []string) error
}
