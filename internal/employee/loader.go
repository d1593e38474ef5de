package employee

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

// Store is implemented by the SQLite directory client.
type Store interface {
	InitSchema() error
	Count() (int, error)
	ReplaceAll(employees []Employee) error
	ListEmployees() ([]Employee, error)
}

// LoadFromStore reads the directory out of a SQLite store, seeding it with
// the sample dataset when empty.
func LoadFromStore(store Store) ([]Employee, error) {
	if err := store.InitSchema(); err != nil {
		return nil, err
	}

	count, err := store.Count()
	if err != nil {
		return nil, err
	}

	if count == 0 {
		logger.Info("Employee store empty, seeding sample dataset", zap.Int("count", len(SampleEmployees)))
		if err := store.ReplaceAll(SampleEmployees); err != nil {
			return nil, err
		}
	}

	employees, err := store.ListEmployees()
	if err != nil {
		return nil, err
	}

	if err := ValidateAll(employees); err != nil {
		return nil, fmt.Errorf("invalid employee data in store: %w", err)
	}

	logger.Info("Employees loaded from SQLite store", zap.Int("count", len(employees)))
	return employees, nil
}

// LoadFromFile parses an employees JSON file, accepting either a bare array
// or an object with an "employees" key.
func LoadFromFile(path string) ([]Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var employees []Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		var wrapper struct {
			Employees []Employee `json:"employees"`
		}
		if wrapErr := json.Unmarshal(data, &wrapper); wrapErr != nil {
			return nil, fmt.Errorf("failed to parse data file: %w", err)
		}
		employees = wrapper.Employees
	}

	if err := ValidateAll(employees); err != nil {
		return nil, fmt.Errorf("invalid employee data in %s: %w", path, err)
	}

	logger.Info("Employees loaded from file", zap.String("path", path), zap.Int("count", len(employees)))
	return employees, nil
}

// LoadSample returns the embedded fallback dataset.
func LoadSample() []Employee {
	logger.Info("Using embedded sample dataset", zap.Int("count", len(SampleEmployees)))
	return SampleEmployees
}
