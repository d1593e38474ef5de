package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture() []Employee {
	return []Employee{
		{ID: 1, Name: "Alice Johnson", Skills: []string{"Python", "AWS"}, ExperienceYears: 5, Availability: Available, Department: "Engineering", Location: "Austin"},
		{ID: 2, Name: "Bob Smith", Skills: []string{"Python", "Go"}, ExperienceYears: 2, Availability: Busy, Department: "Engineering", Location: "Remote"},
		{ID: 3, Name: "Carol White", Skills: []string{"Python", "Kubernetes"}, ExperienceYears: 8, Availability: Available, Department: "Data", Location: "Denver"},
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(statsFixture())

	assert.Equal(t, 3, stats.TotalEmployees)
	assert.Equal(t, 2, stats.AvailableEmployees)
	assert.InDelta(t, 5.0, stats.AverageExperience, 1e-9)
	assert.Equal(t, map[string]int{"Engineering": 2, "Data": 1}, stats.DepartmentDistribution)

	require.NotEmpty(t, stats.TopSkills)
	assert.Equal(t, SkillCount{Skill: "Python", Count: 3}, stats.TopSkills[0])
	// Singleton skills tie on count and fall back to name order.
	assert.Equal(t, "AWS", stats.TopSkills[1].Skill)
	assert.Equal(t, "Go", stats.TopSkills[2].Skill)
	assert.Equal(t, "Kubernetes", stats.TopSkills[3].Skill)
}

func TestComputeStatsRounding(t *testing.T) {
	stats := ComputeStats([]Employee{
		{ID: 1, Name: "A", Skills: []string{"Go"}, ExperienceYears: 1, Availability: Busy},
		{ID: 2, Name: "B", Skills: []string{"Go"}, ExperienceYears: 2, Availability: Busy},
		{ID: 3, Name: "C", Skills: []string{"Go"}, ExperienceYears: 2, Availability: Busy},
	})

	assert.InDelta(t, 1.7, stats.AverageExperience, 1e-9)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Zero(t, stats.TotalEmployees)
	assert.Zero(t, stats.AvailableEmployees)
	assert.Zero(t, stats.AverageExperience)
	assert.Empty(t, stats.TopSkills)
	assert.Empty(t, stats.DepartmentDistribution)
}

func TestComputeStatsTopSkillsCap(t *testing.T) {
	emp := Employee{ID: 1, Name: "Poly Glot", Availability: Available}
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		emp.Skills = append(emp.Skills, s)
	}

	stats := ComputeStats([]Employee{emp})
	assert.Len(t, stats.TopSkills, 10)
}

func TestApplyFilters(t *testing.T) {
	employees := statsFixture()

	t.Run("skills case-insensitive", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{Skills: []string{"go"}})
		require.Len(t, got, 1)
		assert.Equal(t, "Bob Smith", got[0].Name)
	})

	t.Run("experience range", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{MinExperience: 3, MaxExperience: 6})
		require.Len(t, got, 1)
		assert.Equal(t, "Alice Johnson", got[0].Name)
	})

	t.Run("availability", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{Availability: Available})
		assert.Len(t, got, 2)
	})

	t.Run("department substring", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{Department: "engineer"})
		assert.Len(t, got, 2)
	})

	t.Run("max results preserves order", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{MaxResults: 2})
		require.Len(t, got, 2)
		assert.Equal(t, "Alice Johnson", got[0].Name)
		assert.Equal(t, "Bob Smith", got[1].Name)
	})

	t.Run("no filters returns all", func(t *testing.T) {
		got := ApplyFilters(employees, Filters{})
		assert.Len(t, got, 3)
	})
}
