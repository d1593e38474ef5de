package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
)

// MemoryCache is the in-process fallback used when Redis is not configured.
type MemoryCache struct {
	store *gocache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*engine.ChatResult, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	result, ok := v.(*engine.ChatResult)
	return result, ok
}

func (c *MemoryCache) Set(_ context.Context, key string, result *engine.ChatResult) {
	c.store.Set(key, result, gocache.DefaultExpiration)
}
