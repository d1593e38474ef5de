package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	want := &engine.ChatResult{Response: "hi", ConfidenceScore: 0.42}
	c.Set(ctx, "key", want)

	got, ok := c.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "key", &engine.ChatResult{Response: "hi"})
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}
