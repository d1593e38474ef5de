package employee

import (
	"math"
	"sort"
)

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalEmployees         int            `json:"total_employees"`
	AvailableEmployees     int            `json:"available_employees"`
	AverageExperience      float64        `json:"average_experience"`
	TopSkills              []SkillCount   `json:"top_skills"`
	DepartmentDistribution map[string]int `json:"department_distribution"`
}

// ComputeStats derives the display aggregates for the dashboard: counts,
// average experience (rounded to one decimal), top 10 skills, and the
// department distribution.
func ComputeStats(employees []Employee) Stats {
	stats := Stats{
		TotalEmployees:         len(employees),
		DepartmentDistribution: make(map[string]int),
	}

	if len(employees) == 0 {
		return stats
	}

	skillCounts := make(map[string]int)
	totalExperience := 0

	for _, emp := range employees {
		if emp.Availability == Available {
			stats.AvailableEmployees++
		}
		totalExperience += emp.ExperienceYears

		for _, skill := range emp.Skills {
			skillCounts[skill]++
		}

		if emp.Department != "" {
			stats.DepartmentDistribution[emp.Department]++
		}
	}

	avg := float64(totalExperience) / float64(len(employees))
	stats.AverageExperience = math.Round(avg*10) / 10

	skills := make([]SkillCount, 0, len(skillCounts))
	for skill, count := range skillCounts {
		skills = append(skills, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Count != skills[j].Count {
			return skills[i].Count > skills[j].Count
		}
		return skills[i].Skill < skills[j].Skill
	})
	if len(skills) > 10 {
		skills = skills[:10]
	}
	stats.TopSkills = skills

	return stats
}

// Filters are the structured search parameters for /employees/search.
type Filters struct {
	Skills        []string
	MinExperience int
	MaxExperience int
	Availability  Availability
	Department    string
	MaxResults    int
}

// ApplyFilters returns the employees matching every active filter, in the
// original list order, truncated to MaxResults when positive.
func ApplyFilters(employees []Employee, f Filters) []Employee {
	matched := make([]Employee, 0)

	for _, emp := range employees {
		if len(f.Skills) > 0 && !hasAnySkill(emp, f.Skills) {
			continue
		}
		if f.MinExperience > 0 && emp.ExperienceYears < f.MinExperience {
			continue
		}
		if f.MaxExperience > 0 && emp.ExperienceYears > f.MaxExperience {
			continue
		}
		if f.Availability != "" && emp.Availability != f.Availability {
			continue
		}
		if f.Department != "" && !containsFold(emp.Department, f.Department) {
			continue
		}
		matched = append(matched, emp)
	}

	if f.MaxResults > 0 && len(matched) > f.MaxResults {
		matched = matched[:f.MaxResults]
	}
	return matched
}

func hasAnySkill(emp Employee, skills []string) bool {
	for _, want := range skills {
		for _, have := range emp.Skills {
			if equalFold(have, want) {
				return true
			}
		}
	}
	return false
}
