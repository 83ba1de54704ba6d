package pipeline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/candidate-fit/internal/types"
)

// fullExperienceYears is the experience level that scores 100
const fullExperienceYears = 5.0

// neutralEducationScore is used when the resume has no education section
const neutralEducationScore = 50.0

// educationKeywords raise the education score by 10 points each, capped at 100
var educationKeywords = []string{
	"computer science", "engineering", "data science",
	"machine learning", "artificial intelligence", "statistics",
	"mathematics", "technology",
}

// learningPotentialByDifficulty inverts gap difficulty into a learnability score
var learningPotentialByDifficulty = map[types.Difficulty]float64{
	types.DifficultyEasy:   100,
	types.DifficultyMedium: 60,
	types.DifficultyHard:   30,
}

// Gap-difficulty features are fixed placeholders until per-pair features are
// derived from the knowledge graph
const (
	gapHasBase         = 0
	gapSkillSimilarity = 0.5
	gapDomainOverlap   = 0.6
)

// calculateSkillMatch compares the flattened, lowercased skill sets of the
// resume and the job posting. The percentage is the share of job skills the
// resume covers; no job skills means 0, not 100.
func calculateSkillMatch(resumeSkills, jobSkills types.ExtractedSkills) types.SkillMatchResult {
	resumeNames := lowerNameSet(resumeSkills)
	jobNames := lowerNameSet(jobSkills)

	matched := make([]string, 0)
	for name := range jobNames {
		if resumeNames[name] {
			matched = append(matched, name)
		}
	}
	sort.Strings(matched)

	percentage := 0.0
	if len(jobNames) > 0 {
		percentage = float64(len(matched)) / float64(len(jobNames)) * 100
	}

	return types.SkillMatchResult{
		MatchPercentage:   round2(percentage),
		MatchedSkills:     matched,
		TotalJobSkills:    len(jobNames),
		TotalResumeSkills: len(resumeNames),
	}
}

// identifyGaps finds job skills absent from the resume and predicts the
// learning difficulty of each. Gap order follows the job posting's category
// order (sorted) so repeated runs produce identical reports.
func (a *Analyzer) identifyGaps(resumeSkills, jobSkills types.ExtractedSkills) ([]types.SkillGap, error) {
	resumeNames := lowerNameSet(resumeSkills)

	categories := make([]string, 0, len(jobSkills))
	for category := range jobSkills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	gaps := make([]types.SkillGap, 0)
	for _, category := range categories {
		for _, mention := range jobSkills[category] {
			if resumeNames[strings.ToLower(mention.Skill)] {
				continue
			}
			prediction, err := a.classifier.PredictDifficulty(gapHasBase, gapSkillSimilarity, gapDomainOverlap)
			if err != nil {
				return nil, fmt.Errorf("predicting difficulty for %q: %w", mention.Skill, err)
			}
			gaps = append(gaps, types.SkillGap{
				Skill:        mention.Skill,
				Category:     category,
				Difficulty:   prediction.Difficulty,
				LearningDays: prediction.EstimatedLearningDays,
			})
		}
	}
	return gaps, nil
}

// scoreExperience maps years of experience linearly onto 0-100, with
// fullExperienceYears or more scoring 100.
func scoreExperience(profile types.ExperienceProfile) float64 {
	return round2(math.Min(profile.TotalYears/fullExperienceYears*100, 100))
}

// scoreEducation scores the education section by relevant keyword hits.
// A missing section is neutral rather than disqualifying.
func scoreEducation(sections map[string]string) float64 {
	educationText, ok := sections["education"]
	if !ok {
		return neutralEducationScore
	}

	lowered := strings.ToLower(educationText)
	matches := 0
	for _, keyword := range educationKeywords {
		if strings.Contains(lowered, keyword) {
			matches++
		}
	}
	return round2(math.Min(neutralEducationScore+float64(matches)*10, 100))
}

// scoreLearningPotential averages the inverted difficulty of the skill gaps.
// No gaps at all is a perfect score.
func scoreLearningPotential(gaps []types.SkillGap) float64 {
	if len(gaps) == 0 {
		return 100.0
	}

	total := 0.0
	for _, gap := range gaps {
		score, ok := learningPotentialByDifficulty[gap.Difficulty]
		if !ok {
			score = learningPotentialByDifficulty[types.DifficultyMedium]
		}
		total += score
	}
	return round2(total / float64(len(gaps)))
}

func lowerNameSet(skills types.ExtractedSkills) map[string]bool {
	names := make(map[string]bool)
	for _, mentions := range skills {
		for _, m := range mentions {
			names[strings.ToLower(m.Skill)] = true
		}
	}
	return names
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
