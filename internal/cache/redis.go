package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(host string, port int, password string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", zap.String("addr", fmt.Sprintf("%s:%d", host, port)))

	return &RedisCache{client: client, ttl: ttl}, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Get(ctx context.Context, key string) (*engine.ChatResult, bool) {
	data, err := c.client.Get(ctx, "chat:"+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("Failed to read query cache", zap.Error(err))
		return nil, false
	}

	var result engine.ChatResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.Warn("Failed to decode cached result", zap.Error(err))
		return nil, false
	}

	logger.Debug("Query cache hit", zap.String("key", key))
	return &result, true
}

func (c *RedisCache) Set(ctx context.Context, key string, result *engine.ChatResult) {
	data, err := json.Marshal(result)
	if err != nil {
		logger.Warn("Failed to encode result for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, "chat:"+key, data, c.ttl).Err(); err != nil {
		logger.Warn("Failed to write query cache", zap.Error(err))
	}
}
