package cache

import (
	"context"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
)

// ResultCache is the read-through cache for chat results, keyed by a hash of
// the query and result limit. The engine stays unaware of it.
type ResultCache interface {
	Get(ctx context.Context, key string) (*engine.ChatResult, bool)
	Set(ctx context.Context, key string, result *engine.ChatResult)
}
