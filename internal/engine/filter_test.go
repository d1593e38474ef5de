package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
)

func filterFixture() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Alice Johnson", Skills: []string{"Python", "AWS"}, ExperienceYears: 5, Projects: []string{"Payment Gateway"}, Availability: employee.Available, Location: "Austin"},
		{ID: 2, Name: "Bob Smith", Skills: []string{"Python"}, ExperienceYears: 2, Projects: []string{"Internal CRM"}, Availability: employee.Busy, Location: "Remote"},
		{ID: 3, Name: "Carol White", Skills: []string{"Java", "Kubernetes"}, ExperienceYears: 8, Projects: []string{"Order Service"}, Availability: employee.Available, Location: "Denver"},
		{ID: 4, Name: "Dan Brown", Skills: []string{"React"}, ExperienceYears: 1, Projects: []string{"Marketing Site"}, Availability: employee.OnLeave, Location: "Boston"},
	}
}

func rankedInOrder(n int) []RankedCandidate {
	ranked := make([]RankedCandidate, n)
	for i := range ranked {
		ranked[i] = RankedCandidate{Index: i, Score: float64(n-i) / float64(n)}
	}
	return ranked
}

func TestFilterRankedConstraints(t *testing.T) {
	employees := filterFixture()
	ranked := rankedInOrder(len(employees))

	t.Run("min experience", func(t *testing.T) {
		matched, scores := FilterRanked(employees, ranked, Constraints{MinExperience: 4, HasMinExperience: true}, 10, false)

		assert.Len(t, matched, 2)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
		assert.Equal(t, "Carol White", matched[1].Name)
		assert.Len(t, scores, 2)
	})

	t.Run("availability", func(t *testing.T) {
		matched, _ := FilterRanked(employees, ranked, Constraints{Availability: employee.Available}, 10, false)

		assert.Len(t, matched, 2)
		for _, emp := range matched {
			assert.Equal(t, employee.Available, emp.Availability)
		}
	})

	t.Run("skill match against skill list", func(t *testing.T) {
		matched, _ := FilterRanked(employees, ranked, Constraints{Skills: []string{"python"}}, 10, false)

		assert.Len(t, matched, 2)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
		assert.Equal(t, "Bob Smith", matched[1].Name)
	})

	t.Run("skill match against projects", func(t *testing.T) {
		matched, _ := FilterRanked(employees, ranked, Constraints{Skills: []string{"payment"}}, 10, false)

		assert.Len(t, matched, 1)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
	})

	t.Run("combined constraints", func(t *testing.T) {
		matched, _ := FilterRanked(employees, ranked, Constraints{
			Skills:           []string{"python"},
			MinExperience:    3,
			HasMinExperience: true,
			Availability:     employee.Available,
		}, 10, false)

		assert.Len(t, matched, 1)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
	})
}

func TestFilterRankedHeadroom(t *testing.T) {
	// Build 10 employees where only the last two satisfy the constraint:
	// with maxResults=2 the scan window is 4 candidates, so neither
	// qualifying employee is reached and the result is empty.
	employees := make([]employee.Employee, 10)
	for i := range employees {
		avail := employee.Busy
		if i >= 8 {
			avail = employee.Available
		}
		employees[i] = employee.Employee{ID: i + 1, Name: "Person", Availability: avail}
	}
	ranked := rankedInOrder(len(employees))

	matched, _ := FilterRanked(employees, ranked, Constraints{Availability: employee.Available}, 2, false)
	assert.Empty(t, matched)

	// A wider request reaches them.
	matched, _ = FilterRanked(employees, ranked, Constraints{Availability: employee.Available}, 5, false)
	assert.Len(t, matched, 2)
}

func TestFilterRankedTruncation(t *testing.T) {
	employees := filterFixture()
	ranked := rankedInOrder(len(employees))

	matched, scores := FilterRanked(employees, ranked, Constraints{}, 2, false)

	assert.Len(t, matched, 2)
	assert.Equal(t, "Alice Johnson", matched[0].Name)
	assert.Equal(t, "Bob Smith", matched[1].Name)
	assert.Len(t, scores, 2)
}

func TestFilterRankedHugeMaxResults(t *testing.T) {
	// maxResults far beyond the candidate count must neither overflow the
	// headroom window nor over-allocate.
	employees := filterFixture()
	ranked := rankedInOrder(len(employees))

	for _, n := range []int{len(employees) + 1, math.MaxInt / 2, math.MaxInt} {
		matched, scores := FilterRanked(employees, ranked, Constraints{}, n, false)
		assert.Len(t, matched, len(employees))
		assert.Len(t, scores, len(employees))
	}
}

func TestFilterRankedRelaxOnEmpty(t *testing.T) {
	employees := filterFixture()
	ranked := rankedInOrder(len(employees))
	cons := Constraints{MinExperience: 50, HasMinExperience: true}

	t.Run("relaxed", func(t *testing.T) {
		matched, scores := FilterRanked(employees, ranked, cons, 2, true)

		assert.Len(t, matched, 2)
		assert.Equal(t, "Alice Johnson", matched[0].Name)
		assert.Equal(t, "Bob Smith", matched[1].Name)
		assert.Len(t, scores, 2)
	})

	t.Run("strict", func(t *testing.T) {
		matched, _ := FilterRanked(employees, ranked, cons, 2, false)
		assert.Empty(t, matched)
	})
}
