package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase"
	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/entity"
	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

type UploadHandler struct {
	uploader    abstraction.Uploader
	maxFileSize int64
}

func NewUploadHandler(uploader abstraction.Uploader, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		uploader:    uploader,
		maxFileSize: maxFileSize,
	}
}

// Handle handles POST /api/upload requests. Partial failure is a 200
// with per-file accounting, never an HTTP error.
func (h *UploadHandler) Handle(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No files provided"})
	}

	headers := form.File[presentation.PhotosField]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No files provided"})
	}

	files := make([]entity.IncomingFile, 0, len(headers))
	for _, header := range headers {
		if h.maxFileSize > 0 && header.Size > h.maxFileSize {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("File %q exceeds the %d byte limit", header.Filename, h.maxFileSize),
			})
		}

		src, err := header.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Malformed upload body"})
		}
		data, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Malformed upload body"})
		}

		files = append(files, entity.IncomingFile{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	outcome, err := h.uploader.Upload(c.Request().Context(), files)
	if err != nil {
		if errors.Is(err, usecase.ErrNoFiles) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No files provided"})
		}
		logger.Error("upload failed", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	message := fmt.Sprintf("Uploaded %d photo(s) successfully", outcome.Successful)
	if outcome.DevelopmentMode {
		message = fmt.Sprintf("Simulated upload of %d photo(s) - storage not configured", len(outcome.Results))
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Message:     message,
		Successful:  outcome.Successful,
		Failed:      outcome.Failed,
		Results:     outcome.Results,
		Development: outcome.DevelopmentMode,
	})
}

// HandlePreflight answers OPTIONS /api/upload; the CORS middleware has
// already attached the access-control headers.
func (h *UploadHandler) HandlePreflight(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
