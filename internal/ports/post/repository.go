package post

import (
	"context"
	"errors"

	"blogpost/internal/core/post"
)

var (
	// ErrStoreMissing is returned by Load when the backing resource does not exist yet.
	ErrStoreMissing = errors.New("post store: not found")
	// ErrStoreCorrupt is returned by Load when the stored collection cannot be decoded.
	ErrStoreCorrupt = errors.New("post store: malformed content")
	// ErrPostNotFound is returned by lookups and updates for an unknown id.
	ErrPostNotFound = errors.New("post not found")
)

// PostStore is the port for persisting the whole collection of posts.
// Every call works on the complete collection; there is no incremental write.
type PostStore interface {
	Load(ctx context.Context) ([]*post.Post, error)
	Save(ctx context.Context, posts []*post.Post) error
}

// LoadStatus classifies the outcome of a store read.
type LoadStatus string

const (
	LoadOK      LoadStatus = "ok"
	LoadMissing LoadStatus = "missing"
	LoadCorrupt LoadStatus = "corrupt"
	LoadFailed  LoadStatus = "failed"
)

// ClassifyLoadError maps a Load error to its status.
func ClassifyLoadError(err error) LoadStatus {
	switch {
	case err == nil:
		return LoadOK
	case errors.Is(err, ErrStoreMissing):
		return LoadMissing
	case errors.Is(err, ErrStoreCorrupt):
		return LoadCorrupt
	default:
		return LoadFailed
	}
}

// DTOs for the use cases
type PostDTO struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type StoreHealthDTO struct {
	Store LoadStatus `json:"store"`
	Posts int        `json:"posts"`
	Error string     `json:"error,omitempty"`
}

// ToDTO converts an entity to its transport shape.
func ToDTO(p *post.Post) *PostDTO {
	return &PostDTO{
		ID:      p.ID,
		Author:  p.Author,
		Title:   p.Title,
		Content: p.Content,
	}
}
