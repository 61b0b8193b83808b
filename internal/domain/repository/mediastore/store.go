package mediastore

import (
	"context"
	"errors"
	"time"
)

// ErrUnsupportedQuery is returned by a provider that cannot serve a
// given query shape. The listing cascade treats it as an empty tier.
var ErrUnsupportedQuery = errors.New("query not supported by this media store")

// PutRequest describes one object to create in the media store.
type PutRequest struct {
	Key          string
	Data         []byte
	ContentType  string
	OriginalName string
	UploadedAt   time.Time
	Tags         []string
}

// PutResult carries what the store reported back. Width and Height are
// zero when the provider does not return dimensions.
type PutResult struct {
	Key    string
	URL    string
	Width  int
	Height int
}

// Query is a single tier of the listing cascade: a folder query when
// Folder is set, otherwise a tag query over Tags.
type Query struct {
	Folder string
	Tags   []string
	Limit  int
}

type Photo struct {
	Key          string
	URL          string
	ThumbnailURL string
	UploadedAt   time.Time
	Tags         []string
}

type SearchResult struct {
	Photos []Photo
	Total  int
}

type Uploader interface {
	Put(ctx context.Context, req *PutRequest) (*PutResult, error)
}

type Searcher interface {
	Search(ctx context.Context, q Query) (*SearchResult, error)
}

// Store is the single media-store abstraction; provider adapters
// (Cloudinary, S3-compatible) implement it.
type Store interface {
	Uploader
	Searcher
}
