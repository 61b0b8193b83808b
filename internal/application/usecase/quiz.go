package usecase

import (
	"context"
	"fmt"
	"time"

	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/model"
	"snapshare/internal/domain/repository/quiz"
	"snapshare/pkg/logger"
)

// quizRounds holds the number of answer slots per round. The row layout
// is positional: timestamp, then every slot of every round in order,
// blank when unanswered.
var quizRounds = []int{10, 8, 6}

// Quiz appends finished quizzes to the answer spreadsheet and records
// raw submissions in the debug store. A nil appender degrades submits
// to a simulated success.
type Quiz struct {
	appender quiz.RowAppender
	store    quiz.Store
}

func NewQuiz(appender quiz.RowAppender, store quiz.Store) *Quiz {
	return &Quiz{
		appender: appender,
		store:    store,
	}
}

func (q *Quiz) Submit(ctx context.Context, req *dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	if q.appender == nil {
		logger.Warn("spreadsheet not configured, skipping quiz append")

		return &dto.QuizSubmitResponse{
			Success: true,
			Message: "Quiz received - spreadsheet not configured",
		}, nil
	}

	row := formatAnswerRow(req.Answers, req.Timestamp)
	if err := q.appender.AppendRow(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to append quiz row: %w", err)
	}

	return &dto.QuizSubmitResponse{
		Success: true,
		Message: "Quiz submitted successfully!",
	}, nil
}

func (q *Quiz) Record(ctx context.Context, data map[string]any) error {
	return q.store.Append(ctx, &model.QuizSubmission{
		Data:        data,
		SubmittedAt: time.Now().UTC(),
	})
}

func (q *Quiz) Submissions(ctx context.Context) ([]model.QuizSubmission, error) {
	return q.store.List(ctx)
}

func formatAnswerRow(answers map[string]string, timestamp string) []string {
	row := []string{timestamp}
	for round, slots := range quizRounds {
		for i := 0; i < slots; i++ {
			row = append(row, answers[fmt.Sprintf("round_%d_q_%d", round, i)])
		}
	}

	return row
}
