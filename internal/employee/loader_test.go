package employee

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validEmployeeJSON = `{
	"id": 1,
	"name": "Alice Johnson",
	"skills": ["Python", "AWS"],
	"experience_years": 5,
	"projects": ["Payment Gateway"],
	"availability": "available",
	"department": "Engineering",
	"location": "Austin"
}`

func TestLoadFromFileBareArray(t *testing.T) {
	path := writeDataFile(t, "["+validEmployeeJSON+"]")

	employees, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, employees, 1)
	assert.Equal(t, "Alice Johnson", employees[0].Name)
	assert.Equal(t, 5, employees[0].ExperienceYears)
	assert.Equal(t, Available, employees[0].Availability)
}

func TestLoadFromFileWrapperObject(t *testing.T) {
	path := writeDataFile(t, `{"employees": [`+validEmployeeJSON+`]}`)

	employees, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, 1, employees[0].ID)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeDataFile(t, "{not json")
		_, err := LoadFromFile(path)
		assert.ErrorContains(t, err, "failed to parse data file")
	})

	t.Run("invalid availability", func(t *testing.T) {
		path := writeDataFile(t, `[{"id":1,"name":"X","skills":["Go"],"experience_years":1,"projects":["P"],"availability":"vacationing","department":"Eng","location":"Remote"}]`)
		_, err := LoadFromFile(path)
		assert.ErrorContains(t, err, "invalid employee data")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		path := writeDataFile(t, "["+validEmployeeJSON+","+validEmployeeJSON+"]")
		_, err := LoadFromFile(path)
		assert.ErrorContains(t, err, "invalid employee data")
	})
}

func TestLoadSample(t *testing.T) {
	employees := LoadSample()

	assert.NotEmpty(t, employees)
	assert.NoError(t, ValidateAll(employees))
}

// memStore is an in-memory Store for exercising the seed-on-empty path.
type memStore struct {
	employees []Employee
}

func (s *memStore) InitSchema() error { return nil }

func (s *memStore) Count() (int, error) { return len(s.employees), nil }

func (s *memStore) ReplaceAll(employees []Employee) error {
	s.employees = employees
	return nil
}

func (s *memStore) ListEmployees() ([]Employee, error) { return s.employees, nil }

func TestLoadFromStoreSeedsWhenEmpty(t *testing.T) {
	store := &memStore{}

	employees, err := LoadFromStore(store)
	require.NoError(t, err)

	assert.Len(t, employees, len(SampleEmployees))
	assert.Len(t, store.employees, len(SampleEmployees))
}

func TestLoadFromStoreKeepsExisting(t *testing.T) {
	seeded := []Employee{{
		ID: 42, Name: "Solo Dev", Skills: []string{"Go"}, ExperienceYears: 3,
		Projects: []string{"API"}, Availability: Busy, Department: "Platform", Location: "Remote",
	}}
	store := &memStore{employees: seeded}

	employees, err := LoadFromStore(store)
	require.NoError(t, err)

	require.Len(t, employees, 1)
	assert.Equal(t, 42, employees[0].ID)
}
