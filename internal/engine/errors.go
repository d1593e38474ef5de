package engine

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCorpus       = errors.New("employee corpus is empty")
	ErrVocabulary        = errors.New("could not build a vocabulary from the corpus")
	ErrNotFitted         = errors.New("encoder has not been fitted")
	ErrInvalidMaxResults = errors.New("max results must be at least 1")
)

// InitializationError is fatal: the index could not be built. It is surfaced
// to the caller at startup and never retried automatically.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("engine initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// QueryError covers malformed per-request input. It does not affect other
// queries or the shared index. Zero matches is never a QueryError.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
