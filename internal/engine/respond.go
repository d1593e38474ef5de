package engine

import (
	"fmt"
	"strings"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
)

const noMatchResponse = "I couldn't find any employees matching your specific requirements. Please try rephrasing your query or adjusting the criteria."

const followUpPrompt = "\n\nWould you like me to provide more details about any of these candidates or help you with additional search criteria?"

// Synthesize formats the final candidate list into a natural-language
// summary and computes the confidence as the mean of the returned scores.
// It never re-ranks or re-filters its input.
func Synthesize(matches []employee.Employee, scores []float64) (string, float64) {
	if len(matches) == 0 {
		return noMatchResponse, 0
	}

	var confidence float64
	for _, score := range scores {
		confidence += score
	}
	confidence /= float64(len(scores))

	if len(matches) == 1 {
		return formatSingle(matches[0]), confidence
	}
	return formatMultiple(matches), confidence
}

func formatSingle(emp employee.Employee) string {
	var b strings.Builder

	b.WriteString("I found an excellent candidate for your requirements:\n\n")
	fmt.Fprintf(&b, "**%s** would be perfect for this role. ", emp.Name)
	fmt.Fprintf(&b, "With %d years of experience, they have worked on projects like %s. ",
		emp.ExperienceYears, strings.Join(firstN(emp.Projects, 2), ", "))
	fmt.Fprintf(&b, "Their key skills include %s. ", strings.Join(firstN(emp.Skills, 5), ", "))
	fmt.Fprintf(&b, "They are currently %s and based in %s.", emp.Availability, emp.Location)

	if len(emp.Specializations) > 0 {
		fmt.Fprintf(&b, "\n\nTheir specializations include: %s.", strings.Join(emp.Specializations, ", "))
	}

	b.WriteString(followUpPrompt)
	return b.String()
}

func formatMultiple(matches []employee.Employee) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on your requirements, I found %d excellent candidates:\n\n", len(matches))

	for i, emp := range firstN(matches, 3) {
		fmt.Fprintf(&b, "**%d. %s** (%d years experience)\n", i+1, emp.Name, emp.ExperienceYears)
		fmt.Fprintf(&b, "   • Skills: %s\n", strings.Join(firstN(emp.Skills, 4), ", "))
		fmt.Fprintf(&b, "   • Recent projects: %s\n", strings.Join(firstN(emp.Projects, 2), ", "))
		fmt.Fprintf(&b, "   • Status: %s | Location: %s\n", emp.Availability, emp.Location)
		if len(emp.Specializations) > 0 {
			fmt.Fprintf(&b, "   • Specializations: %s\n", strings.Join(firstN(emp.Specializations, 3), ", "))
		}
		b.WriteString("\n")
	}

	if len(matches) > 3 {
		fmt.Fprintf(&b, "And %d more candidates available. ", len(matches)-3)
	}

	b.WriteString(followUpPrompt)
	return b.String()
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
