package depth

import (
	"testing"

	"github.com/jonathan/candidate-fit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthFixture(skill string, score int) types.DepthAssessment {
	return types.DepthAssessment{
		Skill:          skill,
		DepthScore:     score,
		ContextQuality: types.ContextHandsOn,
		Explanation:    skill + " evidence",
	}
}

func TestCompareSkillDepth_StrongMatch(t *testing.T) {
	candidates := map[string]types.DepthAssessment{
		"Python": depthFixture("Python", 85),
	}

	comparisons := CompareSkillDepth(candidates, []string{"python"})

	require.Len(t, comparisons, 1)
	assert.Equal(t, "Python", comparisons[0].CandidateSkill)
	assert.Equal(t, "strong", comparisons[0].MatchQuality)
	assert.Equal(t, 85, comparisons[0].DepthScore)
}

func TestCompareSkillDepth_ModerateAndWeak(t *testing.T) {
	candidates := map[string]types.DepthAssessment{
		"Docker": depthFixture("Docker", 55),
		"SQL":    depthFixture("SQL", 20),
	}

	comparisons := CompareSkillDepth(candidates, []string{"Docker", "SQL"})

	require.Len(t, comparisons, 2)
	assert.Equal(t, "moderate", comparisons[0].MatchQuality)
	assert.Equal(t, "weak", comparisons[1].MatchQuality)
}

func TestCompareSkillDepth_MissingSkill(t *testing.T) {
	candidates := map[string]types.DepthAssessment{
		"Python": depthFixture("Python", 80),
	}

	comparisons := CompareSkillDepth(candidates, []string{"Rust"})

	require.Len(t, comparisons, 1)
	assert.Equal(t, "missing", comparisons[0].MatchQuality)
	assert.Empty(t, comparisons[0].CandidateSkill)
	assert.Equal(t, 0, comparisons[0].DepthScore)
	assert.Contains(t, comparisons[0].Explanation, "Rust")
}

func TestCompareSkillDepth_PicksBestScoringCandidate(t *testing.T) {
	candidates := map[string]types.DepthAssessment{
		"Java":       depthFixture("Java", 40),
		"JavaScript": depthFixture("JavaScript", 75),
	}

	// Loose containment lets both candidates match "java"; the higher
	// depth score must win.
	comparisons := CompareSkillDepth(candidates, []string{"java"})

	require.Len(t, comparisons, 1)
	assert.Equal(t, "JavaScript", comparisons[0].CandidateSkill)
}

func TestTopSkillsByDepth_SortedDescending(t *testing.T) {
	assessments := map[string]types.DepthAssessment{
		"Python": depthFixture("Python", 90),
		"SQL":    depthFixture("SQL", 45),
		"Git":    depthFixture("Git", 70),
	}

	top := TopSkillsByDepth(assessments, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Python", top[0].Skill)
	assert.Equal(t, "Git", top[1].Skill)
}

func TestTopSkillsByDepth_NSmallerThanMap(t *testing.T) {
	assessments := map[string]types.DepthAssessment{
		"Python": depthFixture("Python", 90),
	}

	top := TopSkillsByDepth(assessments, 5)

	assert.Len(t, top, 1)
}
