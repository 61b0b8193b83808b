package model

import "time"

// QuizSubmission is one raw submission recorded by the debug store.
type QuizSubmission struct {
	Data        map[string]any `bson:"data"         json:"data"`
	SubmittedAt time.Time      `bson:"submitted_at" json:"submittedAt"`
}
