package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"snapshare/internal/application/usecase/abstraction"
	"snapshare/internal/presentation"
	"snapshare/pkg/logger"
)

const defaultListingLimit = 20

type PhotosHandler struct {
	lister abstraction.Lister
}

func NewPhotosHandler(lister abstraction.Lister) *PhotosHandler {
	return &PhotosHandler{
		lister: lister,
	}
}

// Handle handles GET /api/photos?limit=N requests.
func (h *PhotosHandler) Handle(c echo.Context) error {
	limit := defaultListingLimit
	if raw := c.QueryParam(presentation.LimitParam); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid 'limit' parameter"})
		}
		limit = parsed
	}

	page, err := h.lister.List(c.Request().Context(), limit)
	if err != nil {
		logger.Error("photo listing failed", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch photos"})
	}

	return c.JSON(http.StatusOK, page)
}
