package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReadiness_DockerToKubernetes(t *testing.T) {
	g := NewGraph()
	known := []string{"Python", "SQL", "AWS", "Docker", "Git", "Linux"}

	result := g.CalculateReadiness(known, "Kubernetes")

	// Docker -> Kubernetes prerequisite edge is met, Docker Swarm similarity
	// matches via Docker, and Docker shares the containers category.
	assert.GreaterOrEqual(t, result.ReadinessScore, 60.0)
	assert.Equal(t, 100.0, result.Breakdown.PrerequisitesMet)
	assert.Equal(t, 75.0, result.Breakdown.SimilarSkills)
	assert.Equal(t, 60.0, result.Breakdown.CategoryFamiliarity)
	assert.Empty(t, result.MissingPrerequisites)
}

func TestCalculateReadiness_MonotonicInPrerequisites(t *testing.T) {
	g := NewGraph()

	// machine learning has four prerequisites; the added skills below do not
	// touch its similarity neighbors or category buckets, so only the
	// prerequisite sub-score moves.
	none := g.CalculateReadiness([]string{}, "machine learning")
	one := g.CalculateReadiness([]string{"python basics"}, "machine learning")
	two := g.CalculateReadiness([]string{"python basics", "statistics"}, "machine learning")

	assert.LessOrEqual(t, none.ReadinessScore, one.ReadinessScore)
	assert.LessOrEqual(t, one.ReadinessScore, two.ReadinessScore)
	assert.Equal(t, none.Breakdown.SimilarSkills, two.Breakdown.SimilarSkills)
	assert.Equal(t, none.Breakdown.CategoryFamiliarity, two.Breakdown.CategoryFamiliarity)
}

func TestCalculateReadiness_UnknownTargetUsesDefaults(t *testing.T) {
	g := NewGraph()

	result := g.CalculateReadiness([]string{"python"}, "quantum computing")

	assert.Equal(t, 50.0, result.Breakdown.PrerequisitesMet)
	assert.Equal(t, 30.0, result.Breakdown.SimilarSkills)
	assert.Equal(t, 20.0, result.Breakdown.CategoryFamiliarity)
	assert.InDelta(t, 38.5, result.ReadinessScore, 0.01)
}

func TestCalculateReadiness_NoPrerequisitesIsNeutral(t *testing.T) {
	g := NewGraph()

	// linux appears in the graph only as a prerequisite, so it has no
	// declared prerequisites of its own.
	result := g.CalculateReadiness([]string{}, "linux")

	assert.Equal(t, 50.0, result.Breakdown.PrerequisitesMet)
}

func TestCalculateReadiness_EmptyKnownSkills(t *testing.T) {
	g := NewGraph()

	result := g.CalculateReadiness(nil, "kubernetes")

	assert.Equal(t, 0.0, result.Breakdown.PrerequisitesMet)
	assert.Equal(t, 30.0, result.Breakdown.SimilarSkills)
	assert.ElementsMatch(t, []string{"docker"}, result.MissingPrerequisites)
}

func TestCalculateReadiness_AbbreviatedTarget(t *testing.T) {
	g := NewGraph()

	short := g.CalculateReadiness([]string{"docker"}, "k8s")
	full := g.CalculateReadiness([]string{"docker"}, "Kubernetes")

	assert.Equal(t, full.ReadinessScore, short.ReadinessScore)
	assert.Equal(t, "kubernetes", short.TargetSkill)
}

func TestCalculateReadiness_BandBoundaries(t *testing.T) {
	level, weeks := bandFor(80)
	assert.Contains(t, level, "Excellent")
	assert.Equal(t, 1, weeks)

	level, weeks = bandFor(59.9)
	assert.Contains(t, level, "Moderate")
	assert.Equal(t, 4, weeks)

	level, weeks = bandFor(5)
	assert.Contains(t, level, "Very Low")
	assert.Equal(t, 12, weeks)
}

func TestFindLearningPath_DirectEdge(t *testing.T) {
	g := NewGraph()

	path := g.FindLearningPath([]string{"Docker"}, "Kubernetes")

	require.True(t, path.PathExists)
	assert.Equal(t, []string{"docker", "kubernetes"}, path.LearningSequence)
	assert.Equal(t, 1, path.TotalSteps)
	assert.Equal(t, 2, path.EstimatedWeeks)
	assert.Equal(t, "kubernetes", path.NextSkillToLearn)
}

func TestFindLearningPath_MultiStep(t *testing.T) {
	g := NewGraph()

	path := g.FindLearningPath([]string{"python basics"}, "pytorch")

	require.True(t, path.PathExists)
	assert.Equal(t, "python basics", path.LearningSequence[0])
	assert.Equal(t, "pytorch", path.LearningSequence[len(path.LearningSequence)-1])
	assert.Equal(t, []string{"python basics", "numpy", "pandas", "scikit-learn", "pytorch"}, path.LearningSequence)
	assert.Equal(t, 4, path.TotalSteps)
	assert.Equal(t, 8, path.EstimatedWeeks)
	assert.Equal(t, "numpy", path.NextSkillToLearn)
}

func TestFindLearningPath_ShortestWins(t *testing.T) {
	g := NewGraph()

	// Both linux (via docker) and docker itself reach kubernetes; the
	// one-step path from docker must win.
	path := g.FindLearningPath([]string{"linux", "docker"}, "kubernetes")

	require.True(t, path.PathExists)
	assert.Equal(t, 1, path.TotalSteps)
	assert.Equal(t, "docker", path.LearningSequence[0])
}

func TestFindLearningPath_NoPathFallsBackToPrerequisites(t *testing.T) {
	g := NewGraph()

	path := g.FindLearningPath([]string{"flask"}, "kubernetes")

	assert.False(t, path.PathExists)
	assert.Equal(t, []string{"docker", "kubernetes"}, path.LearningSequence)
	assert.Equal(t, 2, path.TotalSteps)
	assert.Equal(t, 4, path.EstimatedWeeks)
	assert.Equal(t, "docker", path.NextSkillToLearn)
}

func TestFindLearningPath_TargetAlreadyKnown(t *testing.T) {
	g := NewGraph()

	path := g.FindLearningPath([]string{"docker"}, "docker")

	require.True(t, path.PathExists)
	assert.Equal(t, []string{"docker"}, path.LearningSequence)
	assert.Equal(t, 0, path.TotalSteps)
	assert.Equal(t, "docker", path.NextSkillToLearn)
}

func TestFindLearningPath_TargetAbsentFromGraph(t *testing.T) {
	g := NewGraph()

	path := g.FindLearningPath([]string{"docker"}, "cobol")

	assert.False(t, path.PathExists)
	assert.Equal(t, []string{"cobol"}, path.LearningSequence)
	assert.Equal(t, "cobol", path.NextSkillToLearn)
}

func TestGetTransferableSkills_SortedByReadiness(t *testing.T) {
	g := NewGraph()

	ranked := g.GetTransferableSkills([]string{"python"}, []string{"kubernetes", "machine learning"})

	require.Len(t, ranked, 2)
	assert.Equal(t, "machine learning", ranked[0].Opportunity)
	assert.Equal(t, "kubernetes", ranked[1].Opportunity)
	assert.GreaterOrEqual(t, ranked[0].ReadinessScore, ranked[1].ReadinessScore)
}
