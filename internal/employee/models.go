package employee

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	OnLeave   Availability = "on_leave"
)

// Employee is immutable after load. The retrieval engine owns the list for
// the process lifetime.
type Employee struct {
	ID              int          `json:"id" validate:"required"`
	Name            string       `json:"name" validate:"required"`
	Skills          []string     `json:"skills" validate:"required,min=1,dive,required"`
	ExperienceYears int          `json:"experience_years" validate:"min=0"`
	Projects        []string     `json:"projects"`
	Availability    Availability `json:"availability" validate:"required,oneof=available busy on_leave"`
	Department      string       `json:"department,omitempty"`
	Location        string       `json:"location,omitempty"`
	Specializations []string     `json:"specializations,omitempty"`
}

var validate = validator.New()

// ValidateAll checks the loaded dataset against the schema the engine
// expects: unique ids, experience >= 0, availability one of the three
// enumerated values.
func ValidateAll(employees []Employee) error {
	seen := make(map[int]struct{}, len(employees))
	for i, emp := range employees {
		if err := validate.Struct(emp); err != nil {
			return fmt.Errorf("employee %d (%q): %w", i, emp.Name, err)
		}
		if _, dup := seen[emp.ID]; dup {
			return fmt.Errorf("duplicate employee id %d", emp.ID)
		}
		seen[emp.ID] = struct{}{}
	}
	return nil
}
