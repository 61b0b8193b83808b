package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/domain/model"
	"snapshare/pkg/logger"
)

// QuizHandler serves the volatile debug store: POST records a raw
// submission, GET dumps everything recorded so far.
type QuizHandler struct {
	quiz abstraction.Quiz
}

func NewQuizHandler(quiz abstraction.Quiz) *QuizHandler {
	return &QuizHandler{
		quiz: quiz,
	}
}

func (h *QuizHandler) HandleRecord(c echo.Context) error {
	var data map[string]any
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid JSON body",
		})
	}

	if err := h.quiz.Record(c.Request().Context(), data); err != nil {
		logger.Error("failed to record quiz submission", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "failed to record submission",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *QuizHandler) HandleSubmissions(c echo.Context) error {
	submissions, err := h.quiz.Submissions(c.Request().Context())
	if err != nil {
		logger.Error("failed to list quiz submissions", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list submissions"})
	}
	if submissions == nil {
		submissions = []model.QuizSubmission{}
	}

	return c.JSON(http.StatusOK, map[string]any{"submissions": submissions})
}
