package quizstore

import (
	"context"
	"sync"

	"snapshare/internal/domain/model"
)

// MemoryStore is the volatile default quiz store: process-local, reset
// on restart, for debugging only.
type MemoryStore struct {
	mu          sync.Mutex
	submissions []model.QuizSubmission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, sub *model.QuizSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submissions = append(s.submissions, *sub)

	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]model.QuizSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.QuizSubmission, len(s.submissions))
	copy(out, s.submissions)

	return out, nil
}
