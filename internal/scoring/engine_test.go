package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-fit/internal/types"
)

func TestCalculateFinalScoreWeighted(t *testing.T) {
	result := CalculateFinalScore(types.ComponentScores{
		SkillMatch:         75,
		Experience:         60,
		SemanticSimilarity: 80,
		Education:          85,
		LearningPotential:  70,
	})

	// 0.75*0.40 + 0.60*0.25 + 0.80*0.20 + 0.85*0.10 + 0.70*0.05 = 0.73
	assert.InDelta(t, 73.0, result.FinalScore, 0.001)
	assert.Equal(t, "Potential Match - Consider for Interview", result.Recommendation)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.Equal(t, 75.0, result.ComponentScores.SkillMatch)
}

func TestCalculateFinalScoreAllPerfect(t *testing.T) {
	result := CalculateFinalScore(types.ComponentScores{
		SkillMatch:         100,
		Experience:         100,
		SemanticSimilarity: 100,
		Education:          100,
		LearningPotential:  100,
	})

	assert.Equal(t, 100.0, result.FinalScore)
	assert.Equal(t, "Strong Match - Highly Recommended", result.Recommendation)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
}

func TestCalculateFinalScoreAllZero(t *testing.T) {
	result := CalculateFinalScore(types.ComponentScores{})

	assert.Equal(t, 0.0, result.FinalScore)
	assert.Equal(t, "Not Recommended - Significant Skill Gaps", result.Recommendation)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
}

func TestRecommendationBands(t *testing.T) {
	assert.Equal(t, "Strong Match - Highly Recommended", recommendation(75))
	assert.Equal(t, "Potential Match - Consider for Interview", recommendation(60))
	assert.Equal(t, "Weak Match - Requires Significant Training", recommendation(45))
	assert.Equal(t, "Not Recommended - Significant Skill Gaps", recommendation(44.9))
}

func TestConfidenceDropsWithDisagreement(t *testing.T) {
	spread := CalculateFinalScore(types.ComponentScores{
		SkillMatch:         100,
		Experience:         0,
		SemanticSimilarity: 100,
		Education:          0,
		LearningPotential:  100,
	})
	assert.Equal(t, types.ConfidenceLow, spread.Confidence)

	moderate := CalculateFinalScore(types.ComponentScores{
		SkillMatch:         100,
		Experience:         20,
		SemanticSimilarity: 80,
		Education:          10,
		LearningPotential:  90,
	})
	assert.Equal(t, types.ConfidenceMedium, moderate.Confidence)
}

func TestGenerateStrengthsThreshold(t *testing.T) {
	strengths := GenerateStrengths(types.ComponentScores{
		SkillMatch:         85,
		Experience:         69.9,
		SemanticSimilarity: 70,
		Education:          10,
		LearningPotential:  90,
	})

	require.Len(t, strengths, 3)
	assert.Equal(t, "Strong technical skill match with job requirements", strengths[0])
	assert.Equal(t, "Resume content closely aligns with job description", strengths[1])
	assert.Equal(t, "High learning potential for missing skills", strengths[2])
}

func TestGenerateStrengthsEmpty(t *testing.T) {
	assert.Empty(t, GenerateStrengths(types.ComponentScores{SkillMatch: 50}))
}

func TestGenerateGapsHardestFirst(t *testing.T) {
	gaps := GenerateGaps([]types.SkillGap{
		{Skill: "Git", Difficulty: types.DifficultyEasy},
		{Skill: "Kubernetes", Difficulty: types.DifficultyHard},
		{Skill: "Docker", Difficulty: types.DifficultyMedium},
		{Skill: "System Design", Difficulty: types.DifficultyHard},
	})

	require.Len(t, gaps, 3)
	assert.Equal(t, "Kubernetes", gaps[0].Skill)
	assert.Equal(t, "System Design", gaps[1].Skill)
	assert.Equal(t, "Docker", gaps[2].Skill)
}

func TestGenerateGapsDoesNotMutateInput(t *testing.T) {
	input := []types.SkillGap{
		{Skill: "Git", Difficulty: types.DifficultyEasy},
		{Skill: "Kubernetes", Difficulty: types.DifficultyHard},
	}

	_ = GenerateGaps(input)
	assert.Equal(t, "Git", input[0].Skill)
}
