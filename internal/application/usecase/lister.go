package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"snapshare/internal/domain/dto"
	"snapshare/internal/domain/repository/listingcache"
	"snapshare/internal/domain/repository/mediastore"
	"snapshare/pkg/logger"
)

type ListingConfig struct {
	Folder        string   `yaml:"folder"`
	FallbackTags  []string `yaml:"fallback_tags"`
	LegacyFolders []string `yaml:"legacy_folders"`
	DefaultLimit  int      `yaml:"default_limit"`
	MaxLimit      int      `yaml:"max_limit"`
}

// queryStrategy is one tier of the listing cascade. Strategies are
// plain data so each tier can be exercised on its own in tests.
type queryStrategy struct {
	name  string
	query mediastore.Query
}

// Lister resolves the photo listing through an ordered cascade of query
// strategies, stopping at the first tier that yields at least one item.
type Lister struct {
	store        mediastore.Searcher
	cache        listingcache.Cache
	strategies   []queryStrategy
	defaultLimit int
	maxLimit     int
}

// NewLister creates a Lister. store may be nil (unconfigured: every
// listing degrades to an empty page) and cache may be nil (no caching).
func NewLister(store mediastore.Searcher, cache listingcache.Cache, cfg ListingConfig) *Lister {
	return &Lister{
		store:        store,
		cache:        cache,
		strategies:   buildStrategies(cfg),
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

func buildStrategies(cfg ListingConfig) []queryStrategy {
	strategies := []queryStrategy{
		{name: "configured-folder", query: mediastore.Query{Folder: cfg.Folder}},
		{name: "fallback-tags", query: mediastore.Query{Tags: cfg.FallbackTags}},
	}
	for _, folder := range cfg.LegacyFolders {
		if folder == cfg.Folder {
			continue
		}
		strategies = append(strategies, queryStrategy{
			name:  "legacy-folder:" + folder,
			query: mediastore.Query{Folder: folder},
		})
	}

	return strategies
}

func (l *Lister) List(ctx context.Context, limit int) (*dto.ListingPage, error) {
	if limit <= 0 {
		limit = l.defaultLimit
	}
	if limit > l.maxLimit {
		limit = l.maxLimit
	}

	if l.store == nil {
		return &dto.ListingPage{
			Photos:  []dto.Photo{},
			Message: "media store not configured",
		}, nil
	}

	if l.cache != nil {
		if page, ok := l.cache.Get(ctx, limit); ok {
			return page, nil
		}
	}

	result, err := l.runCascade(ctx, limit)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// An exhausted cascade with no transport failure is success,
		// not an error: the album may simply be empty.
		return &dto.ListingPage{Photos: []dto.Photo{}}, nil
	}

	page := buildPage(result, limit)
	if l.cache != nil {
		l.cache.Set(ctx, limit, page)
	}

	return page, nil
}

// runCascade tries each strategy in order and returns the first
// non-empty result. Per-tier errors are logged and swallowed; only a
// failure of the first tier's query surfaces, and only when every later
// tier came up empty as well.
func (l *Lister) runCascade(ctx context.Context, limit int) (*mediastore.SearchResult, error) {
	var firstErr error
	for i := range l.strategies {
		s := &l.strategies[i]
		query := s.query
		query.Limit = limit

		result, err := l.store.Search(ctx, query)
		if err != nil {
			if i == 0 && !errors.Is(err, mediastore.ErrUnsupportedQuery) {
				firstErr = err
			}
			logger.Warn("photo search attempt failed", "strategy", s.name, "err", err)

			continue
		}
		if len(result.Photos) > 0 {
			logger.Debug("photo search strategy matched", "strategy", s.name, "count", len(result.Photos))

			return result, nil
		}
	}

	if firstErr != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", firstErr)
	}

	return nil, nil
}

func buildPage(result *mediastore.SearchResult, limit int) *dto.ListingPage {
	photos := make([]dto.Photo, 0, len(result.Photos))
	for i := range result.Photos {
		p := &result.Photos[i]
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		photos = append(photos, dto.Photo{
			ID:           p.Key,
			URL:          p.URL,
			ThumbnailURL: p.ThumbnailURL,
			UploadedAt:   p.UploadedAt,
			Tags:         tags,
		})
	}

	sort.Slice(photos, func(i, j int) bool {
		return photos[i].UploadedAt.After(photos[j].UploadedAt)
	})

	return &dto.ListingPage{
		Photos: photos,
		// Heuristic, not a cursor: wrong when the store holds exactly
		// limit items in total.
		HasMore: len(photos) == limit,
		Total:   result.Total,
	}
}
