package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"snapshare/internal/domain/model"
)

// listCap bounds the debug listing; the endpoint is for inspection, not
// export.
const listCap = 500

// SubmissionStore is the Mongo-backed quiz store.
type SubmissionStore struct {
	db *Database
}

func NewSubmissionStore(db *Database) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) Append(ctx context.Context, sub *model.QuizSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(SubmissionCollection)
	_, err := coll.InsertOne(ctx, sub)

	return err
}

func (s *SubmissionStore) List(ctx context.Context) ([]model.QuizSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(SubmissionCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(listCap)

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []model.QuizSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}
