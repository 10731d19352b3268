package postapp

import (
	"context"
	"fmt"

	postEntity "blogpost/internal/core/post"
	postPort "blogpost/internal/ports/post"

	"go.uber.org/zap"
)

// PostService runs one load-mutate-save cycle per operation.
// Nothing is cached between calls; the store is the only source of truth.
type PostService struct {
	PostStore postPort.PostStore
	Logger    *zap.Logger
}

func NewPostService(store postPort.PostStore, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostService{
		PostStore: store,
		Logger:    logger,
	}
}

// loadPosts reads the collection and falls back to an empty one on any failure.
func (s *PostService) loadPosts(ctx context.Context) ([]*postEntity.Post, postPort.LoadStatus) {
	posts, err := s.PostStore.Load(ctx)
	status := postPort.ClassifyLoadError(err)
	if status != postPort.LoadOK {
		s.Logger.Warn("post store unreadable, using empty collection",
			zap.String("status", string(status)), zap.Error(err))
		return []*postEntity.Post{}, status
	}
	if posts == nil {
		posts = []*postEntity.Post{}
	}
	return posts, status
}

func (s *PostService) savePosts(ctx context.Context, posts []*postEntity.Post) error {
	if err := s.PostStore.Save(ctx, posts); err != nil {
		s.Logger.Error("failed to save posts", zap.Int("count", len(posts)), zap.Error(err))
		return fmt.Errorf("failed to save posts: %w", err)
	}
	return nil
}

// ListPosts returns every post in stored order.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, _ := s.loadPosts(ctx)
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.ToDTO(p))
	}
	return dtos, nil
}

// CreatePost appends a new post with the next free id and rewrites the store.
func (s *PostService) CreatePost(ctx context.Context, author, title, content string) (*postPort.PostDTO, error) {
	posts, _ := s.loadPosts(ctx)

	p := &postEntity.Post{
		ID:      nextID(posts),
		Author:  author,
		Title:   title,
		Content: content,
	}
	posts = append(posts, p)

	if err := s.savePosts(ctx, posts); err != nil {
		return nil, err
	}
	s.Logger.Info("created post", zap.Int("postID", p.ID), zap.Int("total", len(posts)))
	return postPort.ToDTO(p), nil
}

// FindPostByID returns the first post with the given id.
func (s *PostService) FindPostByID(ctx context.Context, id int) (*postPort.PostDTO, error) {
	posts, _ := s.loadPosts(ctx)
	p := findByID(posts, id)
	if p == nil {
		return nil, postPort.ErrPostNotFound
	}
	return postPort.ToDTO(p), nil
}

// UpdatePost overwrites author, title and content of the first match.
// The store is not touched when the id is unknown.
func (s *PostService) UpdatePost(ctx context.Context, id int, author, title, content string) (*postPort.PostDTO, error) {
	posts, _ := s.loadPosts(ctx)
	p := findByID(posts, id)
	if p == nil {
		return nil, postPort.ErrPostNotFound
	}

	p.Author = author
	p.Title = title
	p.Content = content

	if err := s.savePosts(ctx, posts); err != nil {
		return nil, err
	}
	s.Logger.Info("updated post", zap.Int("postID", id))
	return postPort.ToDTO(p), nil
}

// DeletePost drops every post with the given id and always rewrites the store.
func (s *PostService) DeletePost(ctx context.Context, id int) error {
	posts, _ := s.loadPosts(ctx)

	kept := make([]*postEntity.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if err := s.savePosts(ctx, kept); err != nil {
		return err
	}
	s.Logger.Info("deleted post", zap.Int("postID", id), zap.Int("removed", len(posts)-len(kept)))
	return nil
}

// Inspect reports how the store currently reads, without falling back.
func (s *PostService) Inspect(ctx context.Context) *postPort.StoreHealthDTO {
	posts, err := s.PostStore.Load(ctx)
	health := &postPort.StoreHealthDTO{
		Store: postPort.ClassifyLoadError(err),
		Posts: len(posts),
	}
	if err != nil {
		health.Posts = 0
		health.Error = err.Error()
	}
	return health
}

func findByID(posts []*postEntity.Post, id int) *postEntity.Post {
	for _, p := range posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// nextID is one past the highest id in the collection.
func nextID(posts []*postEntity.Post) int {
	highest := 0
	for _, p := range posts {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}
