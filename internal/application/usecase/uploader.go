package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"snapshare/internal/domain/entity"
	"snapshare/internal/domain/repository/mediastore"
	"snapshare/pkg/logger"
	"snapshare/pkg/utils"
)

// ErrNoFiles is returned when the batch is empty; no store call is made.
var ErrNoFiles = errors.New("no files provided")

// uploadTags is the fixed categorical tag set attached to every photo.
var uploadTags = []string{"wedding", "guest-upload"}

const defaultMaxConcurrent = 4

type UploadConfig struct {
	Folder        string `yaml:"folder"`
	Timeout       int64  `yaml:"timeout_in_ms"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

// BatchUploader uploads every file of a batch independently and in
// parallel, reporting a per-file outcome. A nil store puts the
// orchestrator into development mode: every result is a simulated
// success and no network call is made.
type BatchUploader struct {
	store         mediastore.Uploader
	folder        string
	timeout       time.Duration
	maxConcurrent int
}

func NewBatchUploader(store mediastore.Uploader, cfg UploadConfig) *BatchUploader {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		// errgroup.SetLimit(0) would block every Go call forever.
		maxConcurrent = defaultMaxConcurrent
	}

	return &BatchUploader{
		store:         store,
		folder:        cfg.Folder,
		timeout:       time.Duration(cfg.Timeout) * time.Millisecond,
		maxConcurrent: maxConcurrent,
	}
}

func (u *BatchUploader) Upload(ctx context.Context, files []entity.IncomingFile) (*entity.BatchOutcome, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	if u.store == nil {
		logger.Warn("media store not configured, simulating upload", "files", len(files))

		return u.simulate(files), nil
	}

	results := make([]entity.UploadResult, len(files))

	g := new(errgroup.Group)
	g.SetLimit(u.maxConcurrent)
	for i := range files {
		g.Go(func() error {
			results[i] = u.uploadOne(ctx, &files[i])

			return nil
		})
	}
	// uploadOne never returns an error: one failing file must not
	// cancel or abort its siblings.
	_ = g.Wait()

	outcome := &entity.BatchOutcome{Results: results}
	for i := range results {
		if results[i].Success {
			outcome.Successful++
		} else {
			outcome.Failed++
		}
	}

	return outcome, nil
}

func (u *BatchUploader) uploadOne(ctx context.Context, file *entity.IncomingFile) entity.UploadResult {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	// Browsers often send application/octet-stream for perfectly good
	// photos; sniff the bytes whenever the declared type is not media.
	contentType := file.MimeType
	if !utils.IsMediaMimeType(contentType) {
		contentType = mimetype.Detect(file.Data).String()
	}

	now := time.Now().UTC()
	key := u.storageKey(contentType, now)

	res, err := u.store.Put(ctx, &mediastore.PutRequest{
		Key:          key,
		Data:         file.Data,
		ContentType:  contentType,
		OriginalName: file.Name,
		UploadedAt:   now,
		Tags:         uploadTags,
	})
	if err != nil {
		logger.Error("photo upload failed", "file", file.Name, "key", key, "err", err)

		return entity.UploadResult{
			FileName: file.Name,
			Error:    "Failed to upload to cloud storage",
		}
	}

	return entity.UploadResult{
		FileName:   file.Name,
		Success:    true,
		StorageKey: res.Key,
		URL:        res.URL,
		Width:      res.Width,
		Height:     res.Height,
	}
}

// storageKey builds a collision-free object key:
// {folder}/{ISO-date}/{unix-millis}-{random-token}{ext}.
func (u *BatchUploader) storageKey(contentType string, now time.Time) string {
	ext := utils.GetExtensionFromMimeType(contentType)

	return fmt.Sprintf("%s/%s/%d-%s%s",
		u.folder, now.Format("2006-01-02"), now.UnixMilli(), uuid.New().String(), ext)
}

func (u *BatchUploader) simulate(files []entity.IncomingFile) *entity.BatchOutcome {
	now := time.Now().UnixMilli()
	results := make([]entity.UploadResult, len(files))
	for i := range files {
		results[i] = entity.UploadResult{
			FileName:   files[i].Name,
			Success:    true,
			StorageKey: fmt.Sprintf("simulated-upload-%d", now),
		}
	}

	return &entity.BatchOutcome{
		Results:         results,
		Successful:      len(files),
		DevelopmentMode: true,
	}
}
