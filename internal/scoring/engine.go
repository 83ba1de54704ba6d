// Package scoring aggregates the component analyses into a single weighted
// candidate score with a hiring recommendation and a confidence level.
package scoring

import (
	"math"
	"sort"

	"github.com/jonathan/candidate-fit/internal/types"
)

// Component weights. They sum to 1.0 so the final score stays on the 0-100
// scale of its inputs.
const (
	weightSkillMatch         = 0.40
	weightExperience         = 0.25
	weightSemanticSimilarity = 0.20
	weightEducation          = 0.10
	weightLearningPotential  = 0.05
)

// Recommendation thresholds on the final score
const (
	strongMatchThreshold    = 75.0
	potentialMatchThreshold = 60.0
	weakMatchThreshold      = 45.0
)

// Confidence comes from the population variance of the normalized component
// scores. Components that agree produce a confident recommendation.
const (
	highConfidenceVariance   = 0.05
	mediumConfidenceVariance = 0.15
)

const (
	strengthThreshold = 70.0

	maxStrengths = 5
	maxGaps      = 3
)

// CalculateFinalScore combines the five component scores, each on a 0-100
// scale, into the weighted final score with its recommendation band.
func CalculateFinalScore(components types.ComponentScores) types.FinalScoreResult {
	normalized := []float64{
		components.SkillMatch / 100,
		components.Experience / 100,
		components.SemanticSimilarity / 100,
		components.Education / 100,
		components.LearningPotential / 100,
	}

	finalScore := (normalized[0]*weightSkillMatch +
		normalized[1]*weightExperience +
		normalized[2]*weightSemanticSimilarity +
		normalized[3]*weightEducation +
		normalized[4]*weightLearningPotential) * 100

	return types.FinalScoreResult{
		FinalScore:     round2(finalScore),
		Recommendation: recommendation(finalScore),
		Confidence:     confidence(normalized),
		ComponentScores: types.ComponentScores{
			SkillMatch:         round2(components.SkillMatch),
			Experience:         round2(components.Experience),
			SemanticSimilarity: round2(components.SemanticSimilarity),
			Education:          round2(components.Education),
			LearningPotential:  round2(components.LearningPotential),
		},
	}
}

func recommendation(score float64) string {
	switch {
	case score >= strongMatchThreshold:
		return "Strong Match - Highly Recommended"
	case score >= potentialMatchThreshold:
		return "Potential Match - Consider for Interview"
	case score >= weakMatchThreshold:
		return "Weak Match - Requires Significant Training"
	default:
		return "Not Recommended - Significant Skill Gaps"
	}
}

func confidence(normalized []float64) string {
	mean := 0.0
	for _, v := range normalized {
		mean += v
	}
	mean /= float64(len(normalized))

	variance := 0.0
	for _, v := range normalized {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(normalized))

	switch {
	case variance < highConfidenceVariance:
		return types.ConfidenceHigh
	case variance < mediumConfidenceVariance:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// GenerateStrengths lists the candidate strengths for every component that
// clears the strength threshold, at most maxStrengths of them.
func GenerateStrengths(components types.ComponentScores) []string {
	strengths := make([]string, 0, maxStrengths)

	if components.SkillMatch >= strengthThreshold {
		strengths = append(strengths, "Strong technical skill match with job requirements")
	}
	if components.Experience >= strengthThreshold {
		strengths = append(strengths, "Relevant work experience in similar roles")
	}
	if components.SemanticSimilarity >= strengthThreshold {
		strengths = append(strengths, "Resume content closely aligns with job description")
	}
	if components.Education >= strengthThreshold {
		strengths = append(strengths, "Strong educational background for the role")
	}
	if components.LearningPotential >= strengthThreshold {
		strengths = append(strengths, "High learning potential for missing skills")
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}

// GenerateGaps returns the hardest missing skills first, at most maxGaps.
// The input slice is not modified.
func GenerateGaps(missingSkills []types.SkillGap) []types.SkillGap {
	return TopGaps(missingSkills, maxGaps)
}

// TopGaps returns at most n missing skills sorted hardest first.
// The input slice is not modified.
func TopGaps(missingSkills []types.SkillGap, n int) []types.SkillGap {
	sorted := make([]types.SkillGap, len(missingSkills))
	copy(sorted, missingSkills)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Difficulty.Rank() > sorted[j].Difficulty.Rank()
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
