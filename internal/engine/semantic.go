package engine

import (
	"context"
	"fmt"
)

// SemanticEncoder is the dense strategy backed by a pretrained sentence
// embedding model reached through an Embedder.
type SemanticEncoder struct {
	embedder Embedder
}

func NewSemanticEncoder(embedder Embedder) *SemanticEncoder {
	return &SemanticEncoder{embedder: embedder}
}

func (e *SemanticEncoder) Name() string { return "semantic" }

// RelaxesConstraints is false for the semantic path: zero candidates after
// filtering stays an empty result.
func (e *SemanticEncoder) RelaxesConstraints() bool { return false }

func (e *SemanticEncoder) FitTransform(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	embeddings, err := e.embedder.GenerateBatchEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed corpus: %w", err)
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, expected %d", len(embeddings), len(texts))
	}

	vectors := make([][]float64, len(embeddings))
	for i, emb := range embeddings {
		vectors[i] = toFloat64(emb)
	}
	return vectors, nil
}

func (e *SemanticEncoder) EncodeQuery(ctx context.Context, text string) ([]float64, error) {
	embedding, err := e.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return toFloat64(embedding), nil
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
