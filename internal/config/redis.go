package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is set once the redis backend is opened.
var RedisClient *redis.Client

// InitRedis connects to Redis and checks the connection with a PING.
func InitRedis(ctx context.Context, rc RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	s, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	RedisClient = client
	Logger.Info("Connected to Redis", zap.String("addr", rc.Addr), zap.String("ping", s))
	return client, nil
}

// CloseRedis closes the client if one was opened.
func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		Logger.Error("Error closing Redis connection", zap.Error(err))
	}
}
