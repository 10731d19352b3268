// Package file persists the post collection as a pretty-printed JSON array.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	postEntity "blogpost/internal/core/post"
	postPort "blogpost/internal/ports/post"
)

const indent = "    "

// PostStoreFile manages the posts collection in a single JSON file.
type PostStoreFile struct {
	path string
}

// NewPostStoreFile creates a store backed by the file at path.
func NewPostStoreFile(path string) *PostStoreFile {
	return &PostStoreFile{path: path}
}

// Path returns the backing file path.
func (s *PostStoreFile) Path() string {
	return s.path
}

// Load reads the whole collection from disk.
func (s *PostStoreFile) Load(ctx context.Context) ([]*postEntity.Post, error) {
	// #nosec G304 -- path comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", postPort.ErrStoreMissing, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	return Decode(data)
}

// Save overwrites the file with the given collection. The write is not atomic.
func (s *PostStoreFile) Save(ctx context.Context, posts []*postEntity.Post) error {
	data, err := Encode(posts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Decode parses a JSON array of posts. Null entries are skipped.
func Decode(data []byte) ([]*postEntity.Post, error) {
	var raw []*postEntity.Post
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", postPort.ErrStoreCorrupt, err)
	}

	posts := make([]*postEntity.Post, 0, len(raw))
	for _, p := range raw {
		if p != nil {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

// Encode renders posts with a stable four-space indent; nil encodes as [].
func Encode(posts []*postEntity.Post) ([]byte, error) {
	if posts == nil {
		posts = []*postEntity.Post{}
	}
	data, err := json.MarshalIndent(posts, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode posts: %w", err)
	}
	return data, nil
}
