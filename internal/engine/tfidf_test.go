package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFFitTransform(t *testing.T) {
	ctx := context.Background()

	t.Run("index aligns with corpus", func(t *testing.T) {
		enc := NewTFIDFEncoder(1000)
		texts := []string{
			"python aws backend services",
			"java spring payment systems",
			"python machine learning models",
		}

		vectors, err := enc.FitTransform(ctx, texts)
		require.NoError(t, err)
		assert.Len(t, vectors, len(texts))
	})

	t.Run("empty corpus", func(t *testing.T) {
		enc := NewTFIDFEncoder(1000)
		_, err := enc.FitTransform(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptyCorpus)
	})

	t.Run("stop word only corpus", func(t *testing.T) {
		enc := NewTFIDFEncoder(1000)
		_, err := enc.FitTransform(ctx, []string{"the of and", "a an the"})
		assert.ErrorIs(t, err, ErrVocabulary)
	})

	t.Run("vocabulary is capped", func(t *testing.T) {
		enc := NewTFIDFEncoder(3)
		vectors, err := enc.FitTransform(ctx, []string{
			"python aws docker kubernetes react angular",
		})
		require.NoError(t, err)
		assert.Len(t, vectors[0], 3)
	})

	t.Run("vectors are normalized", func(t *testing.T) {
		enc := NewTFIDFEncoder(1000)
		vectors, err := enc.FitTransform(ctx, []string{
			"python backend python services",
			"java frontend react",
		})
		require.NoError(t, err)

		for _, vec := range vectors {
			var norm float64
			for _, v := range vec {
				norm += v * v
			}
			assert.InDelta(t, 1.0, norm, 1e-9)
		}
	})
}

func TestTFIDFEncodeQuery(t *testing.T) {
	ctx := context.Background()
	enc := NewTFIDFEncoder(1000)

	_, err := enc.FitTransform(ctx, []string{
		"python aws backend",
		"java spring payments",
	})
	require.NoError(t, err)

	t.Run("projects into fitted space", func(t *testing.T) {
		vec, err := enc.EncodeQuery(ctx, "python backend")
		require.NoError(t, err)

		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		assert.InDelta(t, 1.0, norm, 1e-9)
	})

	t.Run("out of vocabulary terms contribute nothing", func(t *testing.T) {
		vec, err := enc.EncodeQuery(ctx, "haskell prolog")
		require.NoError(t, err)

		for _, v := range vec {
			assert.Zero(t, v)
		}
	})

	t.Run("unfitted encoder", func(t *testing.T) {
		fresh := NewTFIDFEncoder(1000)
		_, err := fresh.EncodeQuery(ctx, "python")
		assert.ErrorIs(t, err, ErrNotFitted)
	})
}

func TestTFIDFDeterminism(t *testing.T) {
	ctx := context.Background()
	texts := []string{
		"python aws machine learning",
		"java kubernetes docker",
		"react typescript frontend",
	}

	encA := NewTFIDFEncoder(1000)
	vecsA, err := encA.FitTransform(ctx, texts)
	require.NoError(t, err)

	encB := NewTFIDFEncoder(1000)
	vecsB, err := encB.FitTransform(ctx, texts)
	require.NoError(t, err)

	assert.Equal(t, vecsA, vecsB)

	qA, err := encA.EncodeQuery(ctx, "python docker")
	require.NoError(t, err)
	qB, err := encB.EncodeQuery(ctx, "python docker")
	require.NoError(t, err)
	assert.Equal(t, qA, qB)
}

func TestTokenize(t *testing.T) {
	t.Run("lowercases and drops stop words", func(t *testing.T) {
		tokens := tokenize("The Python developer AND the AWS expert")
		assert.Equal(t, []string{"python", "developer", "aws", "expert"}, tokens)
	})

	t.Run("drops punctuation only tokens", func(t *testing.T) {
		tokens := tokenize("python, aws; docker!")
		assert.Equal(t, []string{"python", "aws", "docker"}, tokens)
	})
}

func TestExtractTermsIncludesBigrams(t *testing.T) {
	terms := extractTerms("machine learning models")
	assert.Contains(t, terms, "machine")
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "learning models")
}
