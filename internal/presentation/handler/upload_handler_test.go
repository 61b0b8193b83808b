package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapshare/internal/application/usecase"
	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/repository/mediastore"
	"snapshare/internal/presentation"
)

type fakeStore struct {
	mu      sync.Mutex
	calls   int
	failFor map[string]error
}

func (f *fakeStore) Put(_ context.Context, req *mediastore.PutRequest) (*mediastore.PutResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if err, ok := f.failFor[req.OriginalName]; ok {
		return nil, err
	}

	return &mediastore.PutResult{Key: req.Key, URL: "https://cdn.example.com/" + req.Key}, nil
}

func uploadConfig() usecase.UploadConfig {
	return usecase.UploadConfig{
		Folder:        "wedding-photos",
		Timeout:       5000,
		MaxConcurrent: 4,
	}
}

func newUploadServer(store mediastore.Uploader, maxFileSize int64) *echo.Echo {
	e := echo.New()
	h := NewUploadHandler(usecase.NewBatchUploader(store, uploadConfig()), maxFileSize)
	e.POST("/api/upload", h.Handle)
	e.OPTIONS("/api/upload", h.HandlePreflight)

	return e
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile(presentation.PhotosField, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes for " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler_Success(t *testing.T) {
	store := &fakeStore{}
	e := newUploadServer(store, 10<<20)

	body, contentType := multipartBody(t, "a.jpg", "b.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Successful)
	assert.Equal(t, 0, resp.Failed)
	assert.Len(t, resp.Results, 2)
	assert.Contains(t, resp.Message, "Uploaded 2 photo(s)")
	assert.False(t, resp.Development)
	assert.Equal(t, 2, store.calls)
}

func TestUploadHandler_PartialFailureIsStillOK(t *testing.T) {
	store := &fakeStore{failFor: map[string]error{"b.jpg": errors.New("store rejected")}}
	e := newUploadServer(store, 10<<20)

	body, contentType := multipartBody(t, "a.jpg", "b.jpg", "c.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "partial failure is not an HTTP error")

	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Successful)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 3)
	assert.False(t, resp.Results[1].Success)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestUploadHandler_NoFiles(t *testing.T) {
	store := &fakeStore{}
	e := newUploadServer(store, 10<<20)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls, "no store call may happen for an empty batch")
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	e := newUploadServer(&fakeStore{}, 10<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBufferString("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_FileTooLarge(t *testing.T) {
	store := &fakeStore{}
	e := newUploadServer(store, 8) // smaller than any test body

	body, contentType := multipartBody(t, "huge.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.calls)
}

func TestUploadHandler_DevelopmentMode(t *testing.T) {
	// nil store = credentials absent; every file simulates success.
	e := newUploadServer(nil, 10<<20)

	body, contentType := multipartBody(t, "a.jpg", "b.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Development)
	assert.Equal(t, 2, resp.Successful)
	assert.Equal(t, 0, resp.Failed)
	assert.Contains(t, resp.Message, "Simulated upload")
}

func TestUploadHandler_Preflight(t *testing.T) {
	e := newUploadServer(&fakeStore{}, 10<<20)

	req := httptest.NewRequest(http.MethodOptions, "/api/upload", http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
