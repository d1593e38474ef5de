package engine

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	prose "github.com/jdkato/prose/v2"
)

// TFIDFEncoder is the lexical strategy: a term-frequency/inverse-document-
// frequency space over unigrams and bigrams, capped at maxFeatures terms,
// with English stop words removed. It has no external model dependency and
// is always available.
type TFIDFEncoder struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
}

func NewTFIDFEncoder(maxFeatures int) *TFIDFEncoder {
	if maxFeatures <= 0 {
		maxFeatures = 1000
	}
	return &TFIDFEncoder{maxFeatures: maxFeatures}
}

func (e *TFIDFEncoder) Name() string { return "tfidf" }

// RelaxesConstraints preserves the original lexical behavior: when
// filtering leaves nothing, fall back to raw similarity ranking.
func (e *TFIDFEncoder) RelaxesConstraints() bool { return true }

// FitTransform builds the vocabulary and idf weights from the corpus and
// returns the L2-normalized document vectors. Terms are ranked by total
// corpus frequency; ties break alphabetically.
func (e *TFIDFEncoder) FitTransform(_ context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyCorpus
	}

	docTerms := make([][]string, len(texts))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range texts {
		terms := extractTerms(text)
		docTerms[i] = terms

		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			corpusFreq[term]++
			if _, ok := seen[term]; !ok {
				docFreq[term]++
				seen[term] = struct{}{}
			}
		}
	}

	if len(corpusFreq) == 0 {
		return nil, ErrVocabulary
	}

	ordered := make([]string, 0, len(corpusFreq))
	for term := range corpusFreq {
		ordered = append(ordered, term)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if corpusFreq[ordered[i]] != corpusFreq[ordered[j]] {
			return corpusFreq[ordered[i]] > corpusFreq[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	if len(ordered) > e.maxFeatures {
		ordered = ordered[:e.maxFeatures]
	}

	e.vocabulary = make(map[string]int, len(ordered))
	for col, term := range ordered {
		e.vocabulary[term] = col
	}

	// Smoothed idf: ln((1+n)/(1+df)) + 1.
	n := float64(len(texts))
	e.idf = make([]float64, len(ordered))
	for term, col := range e.vocabulary {
		e.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(texts))
	for i, terms := range docTerms {
		vectors[i] = e.vectorize(terms)
	}

	return vectors, nil
}

// EncodeQuery projects a query into the fitted vocabulary space.
// Out-of-vocabulary terms contribute zero weight.
func (e *TFIDFEncoder) EncodeQuery(_ context.Context, text string) ([]float64, error) {
	if e.vocabulary == nil {
		return nil, ErrNotFitted
	}
	return e.vectorize(extractTerms(text)), nil
}

func (e *TFIDFEncoder) vectorize(terms []string) []float64 {
	vec := make([]float64, len(e.vocabulary))
	for _, term := range terms {
		if col, ok := e.vocabulary[term]; ok {
			vec[col] += e.idf[col]
		}
	}
	l2Normalize(vec)
	return vec
}

func l2Normalize(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
}

// extractTerms tokenizes, lowercases, drops stop words and punctuation-only
// tokens, and emits unigrams plus adjacent bigrams.
func extractTerms(text string) []string {
	tokens := tokenize(text)

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

func tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var raw []string
	doc, err := prose.NewDocument(lowered,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err == nil {
		for _, tok := range doc.Tokens() {
			raw = append(raw, tok.Text)
		}
	} else {
		// Tokenizer failures degrade to whitespace splitting.
		raw = strings.Fields(lowered)
	}

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !hasAlnum(tok) || isStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
