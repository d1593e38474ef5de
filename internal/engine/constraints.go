package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/employee"
)

// Constraints are the structured requirements inferred from one query.
// Derived purely from the query text; never persisted.
type Constraints struct {
	Skills           []string
	MinExperience    int
	HasMinExperience bool
	Availability     employee.Availability
}

// Experience phrasings tried in priority order; the first match wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:experience|exp)`),
	regexp.MustCompile(`with\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?\s*of\s*experience`),
}

// Extractor parses free-text queries for explicit constraints using
// deterministic pattern matching, independent of the embedding space.
type Extractor struct {
	skills        []string
	skillPatterns []*regexp.Regexp
}

// NewExtractor takes the known-skill vocabulary used for skill detection.
// Terms outside the vocabulary are never extracted, even when an employee
// lists them verbatim; that coverage gap is a documented simplification.
// Vocabulary terms match on word boundaries, so short terms like "ai" or
// "ml" do not fire inside unrelated words ("available", "html").
func NewExtractor(skillVocabulary []string) *Extractor {
	x := &Extractor{}
	for _, skill := range skillVocabulary {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		x.skills = append(x.skills, skill)
		x.skillPatterns = append(x.skillPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(skill)+`\b`))
	}
	return x
}

// Extract is pure and deterministic for identical input text.
func (x *Extractor) Extract(query string) Constraints {
	lowered := strings.ToLower(query)

	var cons Constraints

	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(lowered); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				cons.MinExperience = years
				cons.HasMinExperience = true
				break
			}
		}
	}

	// The literal token "available" implies a required availability of
	// available. There is no corresponding extraction for busy or on_leave.
	if strings.Contains(lowered, "available") {
		cons.Availability = employee.Available
	}

	for i, pattern := range x.skillPatterns {
		if pattern.MatchString(lowered) {
			cons.Skills = append(cons.Skills, x.skills[i])
		}
	}

	return cons
}
