package engine

import (
	"strings"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
)

// FilterRanked walks the ranked candidates in order, keeping those that
// satisfy every active constraint, until maxResults are collected. It
// examines twice the requested count (or the whole list when smaller) to
// give the constraints headroom before truncating. When filtering removes
// every candidate and relaxOnEmpty is set, the top candidates by raw
// similarity are returned instead, ignoring constraints.
func FilterRanked(employees []employee.Employee, ranked []RankedCandidate, cons Constraints, maxResults int, relaxOnEmpty bool) ([]employee.Employee, []float64) {
	// Clamp before doubling so huge maxResults values cannot overflow.
	headroom := len(ranked)
	if maxResults <= len(ranked)/2 {
		headroom = maxResults * 2
	}
	pool := ranked[:headroom]

	capHint := maxResults
	if capHint > len(ranked) {
		capHint = len(ranked)
	}
	matched := make([]employee.Employee, 0, capHint)
	scores := make([]float64, 0, capHint)

	for _, cand := range pool {
		emp := employees[cand.Index]
		if !matchesConstraints(emp, cons) {
			continue
		}

		matched = append(matched, emp)
		scores = append(scores, cand.Score)

		if len(matched) >= maxResults {
			break
		}
	}

	if len(matched) == 0 && relaxOnEmpty {
		limit := maxResults
		if limit > len(pool) {
			limit = len(pool)
		}
		for _, cand := range pool[:limit] {
			matched = append(matched, employees[cand.Index])
			scores = append(scores, cand.Score)
		}
	}

	return matched, scores
}

func matchesConstraints(emp employee.Employee, cons Constraints) bool {
	if cons.HasMinExperience && emp.ExperienceYears < cons.MinExperience {
		return false
	}

	if cons.Availability != "" && emp.Availability != cons.Availability {
		return false
	}

	if len(cons.Skills) > 0 && !matchesAnySkill(emp, cons.Skills) {
		return false
	}

	return true
}

// matchesAnySkill favors recall: a requested skill counts when it matches a
// listed skill case-insensitively, or appears as a substring of the
// employee's combined skills, projects and name.
func matchesAnySkill(emp employee.Employee, requested []string) bool {
	skillsLower := make([]string, len(emp.Skills))
	for i, s := range emp.Skills {
		skillsLower[i] = strings.ToLower(s)
	}

	haystack := strings.ToLower(strings.Join(emp.Skills, " ") + " " + strings.Join(emp.Projects, " ") + " " + emp.Name)

	for _, want := range requested {
		for _, have := range skillsLower {
			if have == want || strings.Contains(have, want) {
				return true
			}
		}
		if strings.Contains(haystack, want) {
			return true
		}
	}

	return false
}
