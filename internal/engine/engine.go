package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

// ChatResult is the outcome of one query: the synthesized summary, the
// matched employees in rank order, and the mean-similarity confidence.
type ChatResult struct {
	Response         string              `json:"response"`
	MatchedEmployees []employee.Employee `json:"matched_employees"`
	ConfidenceScore  float64             `json:"confidence_score"`
}

// Engine holds the immutable employee index. It is built once at startup;
// after that every query is a pure function over shared read-only state, so
// concurrent queries need no locking.
type Engine struct {
	employees []employee.Employee
	index     [][]float64
	encoder   Encoder
	extractor *Extractor
}

// NewEngine pre-encodes the full employee set. It fails with an
// InitializationError when the list is empty or the encoder cannot be
// fitted, and is idempotent given identical input.
func NewEngine(ctx context.Context, employees []employee.Employee, encoder Encoder, skillVocabulary []string) (*Engine, error) {
	if len(employees) == 0 {
		return nil, &InitializationError{Err: ErrEmptyCorpus}
	}

	texts := make([]string, len(employees))
	for i, emp := range employees {
		texts[i] = canonicalText(emp)
	}

	index, err := encoder.FitTransform(ctx, texts)
	if err != nil {
		return nil, &InitializationError{Err: err}
	}
	if len(index) != len(employees) {
		return nil, &InitializationError{Err: fmt.Errorf("index length %d does not match employee count %d", len(index), len(employees))}
	}

	logger.Info("Employee index built",
		zap.Int("employees", len(employees)),
		zap.String("strategy", encoder.Name()),
	)

	return &Engine{
		employees: employees,
		index:     index,
		encoder:   encoder,
		extractor: NewExtractor(skillVocabulary),
	}, nil
}

// AnswerQuery runs the full pipeline: encode, rank, extract constraints,
// filter, synthesize. Zero matches is a valid result, never an error;
// QueryError covers only malformed input.
func (e *Engine) AnswerQuery(ctx context.Context, query string, maxResults int) (*ChatResult, error) {
	if maxResults < 1 {
		return nil, &QueryError{Err: ErrInvalidMaxResults}
	}

	if strings.TrimSpace(query) == "" {
		return &ChatResult{
			Response:         noMatchResponse,
			MatchedEmployees: []employee.Employee{},
			ConfidenceScore:  0,
		}, nil
	}

	queryVec, err := e.encoder.EncodeQuery(ctx, query)
	if err != nil {
		return nil, &QueryError{Err: fmt.Errorf("failed to encode query: %w", err)}
	}

	ranked := RankAll(queryVec, e.index)
	constraints := e.extractor.Extract(query)
	matches, scores := FilterRanked(e.employees, ranked, constraints, maxResults, e.encoder.RelaxesConstraints())
	response, confidence := Synthesize(matches, scores)

	logger.Debug("Query answered",
		zap.Int("ranked", len(ranked)),
		zap.Int("matches", len(matches)),
		zap.Float64("confidence", confidence),
	)

	return &ChatResult{
		Response:         response,
		MatchedEmployees: matches,
		ConfidenceScore:  confidence,
	}, nil
}

// Employees returns the loaded directory in original order.
func (e *Engine) Employees() []employee.Employee {
	return e.employees
}

// Strategy names the embedding strategy fixed at startup.
func (e *Engine) Strategy() string {
	return e.encoder.Name()
}

// canonicalText builds the searchable representation of one employee:
// skills, projects, name, department, specializations, availability,
// location and an experience phrase, normalized to lower case.
func canonicalText(emp employee.Employee) string {
	parts := make([]string, 0, len(emp.Skills)+len(emp.Projects)+len(emp.Specializations)+5)
	parts = append(parts, emp.Skills...)
	parts = append(parts, emp.Projects...)
	parts = append(parts, emp.Name)
	if emp.Department != "" {
		parts = append(parts, emp.Department)
	}
	parts = append(parts, emp.Specializations...)
	parts = append(parts, string(emp.Availability))
	if emp.Location != "" {
		parts = append(parts, emp.Location)
	}
	parts = append(parts, fmt.Sprintf("%d years experience", emp.ExperienceYears))

	return strings.ToLower(strings.Join(parts, " "))
}
