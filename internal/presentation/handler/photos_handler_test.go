package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapshare/internal/application/usecase"
	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/repository/mediastore"
)

type fakeSearcher struct {
	byFolder map[string]*mediastore.SearchResult
	byTags   *mediastore.SearchResult
	err      error
}

func (f *fakeSearcher) Search(_ context.Context, q mediastore.Query) (*mediastore.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if q.Folder == "" {
		if f.byTags != nil {
			return f.byTags, nil
		}

		return &mediastore.SearchResult{Photos: []mediastore.Photo{}}, nil
	}
	if res, ok := f.byFolder[q.Folder]; ok {
		return res, nil
	}

	return &mediastore.SearchResult{Photos: []mediastore.Photo{}}, nil
}

func listingConfig() usecase.ListingConfig {
	return usecase.ListingConfig{
		Folder:        "wedding-photos",
		FallbackTags:  []string{"wedding", "guest-upload"},
		LegacyFolders: []string{"KellysWedding", "wedding", "photos"},
		DefaultLimit:  20,
		MaxLimit:      100,
	}
}

func newPhotosServer(store mediastore.Searcher) *echo.Echo {
	e := echo.New()
	h := NewPhotosHandler(usecase.NewLister(store, nil, listingConfig()))
	e.GET("/api/photos", h.Handle)

	return e
}

func TestPhotosHandler_Success(t *testing.T) {
	now := time.Now().UTC()
	store := &fakeSearcher{
		byFolder: map[string]*mediastore.SearchResult{
			"wedding-photos": {
				Photos: []mediastore.Photo{
					{Key: "a", URL: "https://cdn/a", ThumbnailURL: "https://cdn/a-t", UploadedAt: now},
					{Key: "b", URL: "https://cdn/b", ThumbnailURL: "https://cdn/b-t", UploadedAt: now.Add(-time.Hour)},
				},
				Total: 2,
			},
		},
	}
	e := newPhotosServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/photos?limit=10", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.ListingPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Photos, 2)
	assert.Equal(t, "a", page.Photos[0].ID, "newest first")
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMore)
}

func TestPhotosHandler_DefaultLimit(t *testing.T) {
	now := time.Now().UTC()
	photos := make([]mediastore.Photo, 20)
	for i := range photos {
		photos[i] = mediastore.Photo{Key: "k", UploadedAt: now.Add(-time.Duration(i) * time.Minute)}
	}
	store := &fakeSearcher{
		byFolder: map[string]*mediastore.SearchResult{
			"wedding-photos": {Photos: photos, Total: 40},
		},
	}
	e := newPhotosServer(store)

	req := httptest.NewRequest(http.MethodGet, "/api/photos", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.ListingPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Len(t, page.Photos, 20)
	assert.True(t, page.HasMore, "a full default page implies hasMore")
}

func TestPhotosHandler_InvalidLimit(t *testing.T) {
	e := newPhotosServer(&fakeSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/photos?limit=abc", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPhotosHandler_EmptyAlbum(t *testing.T) {
	e := newPhotosServer(&fakeSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/photos", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "an empty album is success, not failure")

	var page dto.ListingPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Photos)
	assert.False(t, page.HasMore)
	assert.Zero(t, page.Total)
}

func TestPhotosHandler_StoreNotConfigured(t *testing.T) {
	e := newPhotosServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/photos", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.ListingPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Photos)
	assert.NotEmpty(t, page.Message)
}

func TestPhotosHandler_StoreUnreachable(t *testing.T) {
	e := newPhotosServer(&fakeSearcher{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/photos", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch photos", body["error"])
	assert.NotContains(t, body["error"], "connection refused", "internal causes stay server-side")
}
