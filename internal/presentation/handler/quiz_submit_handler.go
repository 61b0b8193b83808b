package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/domain/dto"
	"snapshare/pkg/logger"
)

type QuizSubmitHandler struct {
	quiz abstraction.Quiz
}

func NewQuizSubmitHandler(quiz abstraction.Quiz) *QuizSubmitHandler {
	return &QuizSubmitHandler{
		quiz: quiz,
	}
}

// Handle handles POST /api/quiz-submit requests: one finished quiz
// becomes one spreadsheet row.
func (h *QuizSubmitHandler) Handle(c echo.Context) error {
	var req dto.QuizSubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.QuizSubmitResponse{
			Error: "invalid JSON body",
		})
	}

	resp, err := h.quiz.Submit(c.Request().Context(), &req)
	if err != nil {
		logger.Error("quiz submit failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.QuizSubmitResponse{
			Error: "Failed to submit quiz",
		})
	}

	return c.JSON(http.StatusOK, resp)
}
