package retention

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-fit/internal/types"
)

func gaps(skills ...string) []types.SkillGap {
	out := make([]types.SkillGap, 0, len(skills))
	for _, s := range skills {
		out = append(out, types.SkillGap{Skill: s})
	}
	return out
}

func TestPredictRetentionRelatedFramework(t *testing.T) {
	profile := CandidateProfile{TotalYears: 4, SeniorityLevel: "mid", NumberOfSkills: 10}

	predictions := BatchPredictRetention(gaps("TensorFlow"), []string{"PyTorch"}, profile, "regular")
	require.Len(t, predictions, 1)

	p := predictions[0]
	assert.Equal(t, "TensorFlow", p.Skill)
	assert.InDelta(t, 50.0, p.RetentionProbability, 0.001)
	assert.Equal(t, types.RetentionModerate, p.RetentionCategory)
	assert.Equal(t, "Every 4-5 days", p.ReviewSchedule)
}

func TestPredictRetentionClampedToFloor(t *testing.T) {
	profile := CandidateProfile{TotalYears: 0, SeniorityLevel: "entry", NumberOfSkills: 0}

	predictions := BatchPredictRetention(gaps("System Design"), nil, profile, "minimal")
	require.Len(t, predictions, 1)

	assert.Equal(t, 25.0, predictions[0].RetentionProbability)
	assert.Equal(t, types.RetentionAtRisk, predictions[0].RetentionCategory)
	assert.Equal(t, "Every 2-3 days", predictions[0].ReviewSchedule)
}

func TestPredictRetentionClampedToCeiling(t *testing.T) {
	profile := CandidateProfile{TotalYears: 9, SeniorityLevel: "senior", NumberOfSkills: 40}

	// A low-complexity unknown skill far down the gap list pushes the raw
	// score above the ceiling.
	skills := gaps("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "COBOL")
	predictions := BatchPredictRetention(skills, nil, profile, "daily")
	require.Len(t, predictions, 11)

	assert.Equal(t, 95.0, predictions[0].RetentionProbability)
	assert.Equal(t, types.RetentionExcellent, predictions[0].RetentionCategory)
}

func TestPredictRetentionBoundsHold(t *testing.T) {
	profiles := []CandidateProfile{
		{TotalYears: 0, NumberOfSkills: 0},
		{TotalYears: 2, NumberOfSkills: 5},
		{TotalYears: 12, NumberOfSkills: 60},
	}

	for _, profile := range profiles {
		predictions := BatchPredictRetention(
			gaps("Kubernetes", "Machine Learning", "AWS", "Python", "Excel"),
			[]string{"Docker", "Java"}, profile, "regular")
		for _, p := range predictions {
			assert.GreaterOrEqual(t, p.RetentionProbability, 25.0)
			assert.LessOrEqual(t, p.RetentionProbability, 95.0)
		}
	}
}

func TestPredictRetentionSortedDescending(t *testing.T) {
	profile := CandidateProfile{TotalYears: 4, SeniorityLevel: "mid", NumberOfSkills: 10}

	predictions := BatchPredictRetention(
		gaps("Kubernetes", "SQL", "Deep Learning"), []string{"Docker"}, profile, "regular")
	require.Len(t, predictions, 3)

	for i := 1; i < len(predictions); i++ {
		assert.GreaterOrEqual(t, predictions[i-1].RetentionProbability, predictions[i].RetentionProbability)
	}
}

func TestPredictRetentionPositionalVariation(t *testing.T) {
	profile := CandidateProfile{TotalYears: 4, SeniorityLevel: "mid", NumberOfSkills: 10}

	// Identical skills at different gap positions must not collapse to one
	// value; the second position scores 3.5 higher than the first.
	predictions := BatchPredictRetention(gaps("COBOL", "Fortran"), nil, profile, "regular")
	require.Len(t, predictions, 2)

	assert.InDelta(t, 3.5,
		predictions[0].RetentionProbability-predictions[1].RetentionProbability, 0.001)
}

func TestComplexityTiers(t *testing.T) {
	assert.Equal(t, 5, complexity("Kubernetes Administration"))
	assert.Equal(t, 4, complexity("deep learning"))
	assert.Equal(t, 3, complexity("AWS Lambda"))
	assert.Equal(t, 2, complexity("Python"))
	assert.Equal(t, 1, complexity("Excel"))
}

func TestTransferBoostCapped(t *testing.T) {
	current := []string{"cloud", "gcp", "azure", "devops", "docker"}
	assert.Equal(t, maxFamilyBoost, transferBoost("AWS", current))
}

func TestTransferBoostUnknownFamily(t *testing.T) {
	assert.Equal(t, 0.0, transferBoost("Excel", []string{"Python", "SQL"}))
}

func TestRecommendationsVaryByBandAndSeniority(t *testing.T) {
	critical := recommendations(40, 0.5, "Kubernetes")
	require.Len(t, critical, 3)
	assert.Contains(t, critical[0], "Critical")
	assert.Contains(t, critical[2], "entry-level")

	senior := recommendations(80, 8, "Go")
	require.Len(t, senior, 3)
	assert.Contains(t, senior[2], "Teaching")

	mid := recommendations(50, 3, "Docker")
	assert.Len(t, mid, 2)
}
