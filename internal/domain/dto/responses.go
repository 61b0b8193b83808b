package dto

import (
	"time"

	"snapshare/internal/domain/entity"
)

type UploadResponse struct {
	Message     string                `json:"message"`
	Successful  int                   `json:"successful"`
	Failed      int                   `json:"failed"`
	Results     []entity.UploadResult `json:"results"`
	Development bool                  `json:"development,omitempty"`
}

type Photo struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Tags         []string  `json:"tags"`
}

// ListingPage is the response of the photo listing endpoint. HasMore is
// a heuristic: true iff the page is exactly full.
type ListingPage struct {
	Photos  []Photo `json:"photos"`
	HasMore bool    `json:"hasMore"`
	Total   int     `json:"total"`
	Message string  `json:"message,omitempty"`
}

type QuizSubmitRequest struct {
	Answers   map[string]string `json:"answers"`
	Timestamp string            `json:"timestamp"`
}

type QuizSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
