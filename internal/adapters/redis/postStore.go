package redis

import (
	"context"
	"errors"
	"fmt"

	"blogpost/internal/adapters/file"
	postEntity "blogpost/internal/core/post"
	postPort "blogpost/internal/ports/post"

	"github.com/go-redis/redis/v8"
)

const DefaultKey = "blog:posts"

// PostStoreRedis keeps the whole collection as one JSON value under Key,
// in the same layout as the file backend.
type PostStoreRedis struct {
	Client *redis.Client
	Key    string
}

func NewPostStoreRedis(client *redis.Client, key string) *PostStoreRedis {
	if key == "" {
		key = DefaultKey
	}
	return &PostStoreRedis{
		Client: client,
		Key:    key,
	}
}

func (r *PostStoreRedis) Load(ctx context.Context) ([]*postEntity.Post, error) {
	data, err := r.Client.Get(ctx, r.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: key %s", postPort.ErrStoreMissing, r.Key)
		}
		return nil, fmt.Errorf("redis get %s: %w", r.Key, err)
	}
	return file.Decode(data)
}

func (r *PostStoreRedis) Save(ctx context.Context, posts []*postEntity.Post) error {
	data, err := file.Encode(posts)
	if err != nil {
		return err
	}
	if err := r.Client.Set(ctx, r.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.Key, err)
	}
	return nil
}
