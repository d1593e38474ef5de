package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

// Client is the optional SQLite-backed employee directory store. List-valued
// columns (skills, projects, specializations) are stored as JSON text.
type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec("PRAGMA journal_mode = WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		skills TEXT NOT NULL,
		experience_years INTEGER NOT NULL CHECK (experience_years >= 0),
		projects TEXT NOT NULL,
		availability TEXT NOT NULL CHECK (availability IN ('available', 'busy', 'on_leave')),
		department TEXT,
		location TEXT,
		specializations TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_employees_availability ON employees(availability);
	CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department);
	`

	_, err := c.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

func (c *Client) Count() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// ReplaceAll seeds the store with the given employee set inside one
// transaction, replacing whatever was there.
func (c *Client) ReplaceAll(employees []employee.Employee) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM employees"); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO employees (id, name, skills, experience_years, projects, availability, department, location, specializations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, emp := range employees {
		skills, _ := json.Marshal(emp.Skills)
		projects, _ := json.Marshal(emp.Projects)
		specializations, _ := json.Marshal(emp.Specializations)

		_, err := stmt.Exec(
			emp.ID,
			emp.Name,
			string(skills),
			emp.ExperienceYears,
			string(projects),
			string(emp.Availability),
			emp.Department,
			emp.Location,
			string(specializations),
		)
		if err != nil {
			return fmt.Errorf("failed to insert employee %d: %w", emp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	logger.Debug("Employee store seeded", zap.Int("count", len(employees)))
	return nil
}

func (c *Client) ListEmployees() ([]employee.Employee, error) {
	rows, err := c.db.Query(`
		SELECT id, name, skills, experience_years, projects, availability, department, location, specializations
		FROM employees ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var skills, projects, specializations string
		var availability string

		err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&skills,
			&emp.ExperienceYears,
			&projects,
			&availability,
			&emp.Department,
			&emp.Location,
			&specializations,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		if err := json.Unmarshal([]byte(skills), &emp.Skills); err != nil {
			return nil, fmt.Errorf("failed to decode skills for employee %d: %w", emp.ID, err)
		}
		if err := json.Unmarshal([]byte(projects), &emp.Projects); err != nil {
			return nil, fmt.Errorf("failed to decode projects for employee %d: %w", emp.ID, err)
		}
		if specializations != "" && specializations != "null" {
			if err := json.Unmarshal([]byte(specializations), &emp.Specializations); err != nil {
				return nil, fmt.Errorf("failed to decode specializations for employee %d: %w", emp.ID, err)
			}
		}
		emp.Availability = employee.Availability(availability)

		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
