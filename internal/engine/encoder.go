package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

// Encoder maps employee texts and queries into one shared vector space.
// FitTransform runs once at index build; EncodeQuery must project into the
// space fixed by that fit.
type Encoder interface {
	Name() string
	FitTransform(ctx context.Context, texts []string) ([][]float64, error)
	EncodeQuery(ctx context.Context, text string) ([]float64, error)
	// RelaxesConstraints reports whether the constraint filter should fall
	// back to raw similarity ranking when filtering removes every candidate.
	RelaxesConstraints() bool
}

// Embedder is the external sentence-embedding capability backing the
// semantic strategy. internal/llm.Client satisfies it.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateBatchEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// ChooseEncoder performs the one-time strategy selection: semantic when an
// embedder is configured and a probe embedding succeeds, TF-IDF otherwise.
// The choice is fixed for the process lifetime.
func ChooseEncoder(ctx context.Context, embedder Embedder, maxFeatures int) Encoder {
	if embedder != nil {
		if _, err := embedder.GenerateEmbedding(ctx, "embedding probe"); err == nil {
			logger.Info("Using semantic embedding strategy")
			return NewSemanticEncoder(embedder)
		} else {
			logger.Warn("Semantic embeddings unavailable, falling back to TF-IDF", zap.Error(err))
		}
	}

	logger.Info("Using TF-IDF embedding strategy", zap.Int("max_features", maxFeatures))
	return NewTFIDFEncoder(maxFeatures)
}
