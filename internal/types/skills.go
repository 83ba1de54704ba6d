// Package types provides type definitions for structured data used throughout the candidate-fit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// SkillMention represents a single skill found in a document, with evidence
type SkillMention struct {
	Skill      string  `json:"skill"`
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context,omitempty"` // Bounded snippet around the first mention
}

// ExtractedSkills maps a taxonomy category to the skills found in it
type ExtractedSkills map[string][]SkillMention

// Names returns the names of all skills across categories, sorted
func (e ExtractedSkills) Names() []string {
	names := make([]string, 0)
	for _, mentions := range e {
		for _, m := range mentions {
			names = append(names, m.Skill)
		}
	}
	sort.Strings(names)
	return names
}

// Total returns the number of distinct skill mentions across categories
func (e ExtractedSkills) Total() int {
	total := 0
	for _, mentions := range e {
		total += len(mentions)
	}
	return total
}

// Difficulty is a predicted learning difficulty label
type Difficulty string

// Difficulty labels in ascending order of effort
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank returns an ordering value for sorting gaps (hard > medium > easy).
// Unknown labels rank as medium.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyHard:
		return 3
	case DifficultyMedium:
		return 2
	case DifficultyEasy:
		return 1
	default:
		return 2
	}
}

// SkillGap represents a skill required by the job but absent from the resume
type SkillGap struct {
	Skill        string     `json:"skill"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	LearningDays int        `json:"learning_days"`
}
