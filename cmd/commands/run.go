package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"snapshare"
	"snapshare/config"
	"snapshare/internal/application/usecase"
	"snapshare/internal/domain/repository/listingcache"
	"snapshare/internal/domain/repository/mediastore"
	quizrepo "snapshare/internal/domain/repository/quiz"
	"snapshare/internal/infrastructure/cache"
	"snapshare/internal/infrastructure/cloudinary"
	"snapshare/internal/infrastructure/database"
	"snapshare/internal/infrastructure/quizstore"
	"snapshare/internal/infrastructure/s3"
	"snapshare/internal/infrastructure/sheets"
	"snapshare/internal/presentation/handler"
	"snapshare/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running snapshare", "version", snapshare.StringVersion())

	var uploadStore mediastore.Uploader
	var searchStore mediastore.Searcher

	switch cfg.MediaStore.Provider {
	case config.ProviderCloudinary:
		if !cfg.Cloudinary.Configured() {
			ExitOnError(errors.New("cloudinary provider selected but credentials are missing"))
		}

		store, err := cloudinary.New(&cfg.Cloudinary)
		if err != nil {
			ExitOnError(err)
		}
		uploadStore, searchStore = store, store

		logger.Info("media store ready", "provider", "cloudinary")

	case config.ProviderS3:
		if !cfg.S3.Configured() {
			ExitOnError(errors.New("s3 provider selected but configuration is missing"))
		}

		store, err := s3.New(&cfg.S3)
		if err != nil {
			ExitOnError(err)
		}
		uploadStore, searchStore = store, store

		logger.Info("media store ready", "provider", "s3", "bucket", cfg.S3.Bucket)

	default:
		logger.Warn("no media store configured, uploads run in development mode")
	}

	var quizStore quizrepo.Store
	var db *database.Database
	if cfg.DBConfig.URI != "" {
		db, err = database.Connect(cfg.DBConfig)
		if err != nil {
			ExitOnError(err)
		}
		quizStore = database.NewSubmissionStore(db)

		logger.Info("quiz submissions persisted", "db", cfg.DBConfig.DBName)
	} else {
		quizStore = quizstore.NewMemoryStore()

		logger.Warn("DATABASE_URI not set, quiz submissions held in memory")
	}

	var rowAppender quizrepo.RowAppender
	if cfg.Sheets.Configured() {
		appender, err := sheets.NewAppender(context.Background(), &cfg.Sheets)
		if err != nil {
			ExitOnError(err)
		}
		rowAppender = appender

		logger.Info("sheets appender ready", "range", cfg.Sheets.Range)
	} else {
		logger.Warn("google sheets not configured, quiz submissions are acknowledged only")
	}

	var pageCache listingcache.Cache
	var listingCache *cache.ListingCache
	if cfg.Cache.URI != "" {
		listingCache, err = cache.New(&cfg.Cache)
		if err != nil {
			ExitOnError(err)
		}
		pageCache = listingCache

		logger.Info("listing cache ready", "ttl_ms", cfg.Cache.TTL)
	}

	uploader := usecase.NewBatchUploader(uploadStore, cfg.Upload)
	lister := usecase.NewLister(searchStore, pageCache, cfg.Listing)
	quiz := usecase.NewQuiz(rowAppender, quizStore)

	uploadHandler := handler.NewUploadHandler(uploader, cfg.Server.MaxFileSize)
	photosHandler := handler.NewPhotosHandler(lister)
	quizHandler := handler.NewQuizHandler(quiz)
	quizSubmitHandler := handler.NewQuizSubmitHandler(quiz)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(
		rate.Limit(cfg.Server.RateLimit))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/api/upload", uploadHandler.Handle)
	e.OPTIONS("/api/upload", uploadHandler.HandlePreflight)
	e.GET("/api/photos", photosHandler.Handle)
	e.GET("/api/quiz", quizHandler.HandleSubmissions)
	e.POST("/api/quiz", quizHandler.HandleRecord)
	e.POST("/api/quiz-submit", quizSubmitHandler.Handle)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}

	if listingCache != nil {
		if err := listingCache.Close(); err != nil {
			logger.Error("closing listing cache", "err", err.Error())
		}
	}
	if db != nil {
		if err := db.Stop(); err != nil {
			logger.Error("closing database", "err", err.Error())
		}
	}
}
