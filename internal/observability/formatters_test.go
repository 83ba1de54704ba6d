package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/types"
)

func sampleReport() *types.AnalysisReport {
	return &types.AnalysisReport{
		RunID:          "run-1",
		OverallScore:   73.5,
		Recommendation: "Potential Match - Consider for Interview",
		Confidence:     types.ConfidenceHigh,
		ComponentScores: types.ComponentScores{
			SkillMatch:         66.67,
			Experience:         100,
			SemanticSimilarity: 42.1,
			Education:          60,
			LearningPotential:  60,
		},
		SkillAnalysis: types.SkillAnalysis{
			TotalSkillsFound: 4,
			MatchPercentage:  66.67,
			MatchedSkills:    []string{"python", "docker"},
			DepthAssessments: []types.DepthAssessment{
				{Skill: "python", DepthScore: 82, ContextQuality: types.ContextProduction, ExperienceLevel: types.LevelAdvanced},
			},
		},
		Strengths: []string{"Relevant work experience in similar roles"},
		TopGaps: []types.SkillGap{
			{Skill: "Kubernetes", Difficulty: types.DifficultyHard, LearningDays: 120},
		},
		Readiness: []types.ReadinessResult{
			{TargetSkill: "Kubernetes", ReadinessScore: 64.5, ReadinessLevel: "Good", EstimatedWeeks: 2, MissingPrerequisites: []string{"networking"}},
		},
		Retention: []types.RetentionPrediction{
			{Skill: "Kubernetes", RetentionProbability: 51.5, RetentionCategory: types.RetentionModerate, ReviewSchedule: "Every 4-5 days"},
		},
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE FIT REPORT")
	assert.Contains(t, output, "73.50/100")
	assert.Contains(t, output, "Potential Match")
	assert.Contains(t, output, "SKILL ANALYSIS")
	assert.Contains(t, output, "python, docker")
	assert.Contains(t, output, "TOP SKILL GAPS")
	assert.Contains(t, output, "Kubernetes (hard, ~120 days)")
	assert.Contains(t, output, "LEARNING READINESS")
	assert.Contains(t, output, "RETENTION FORECAST")
	assert.Contains(t, output, "Every 4-5 days")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreSummary_IncludesStrengths(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreSummary(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "Strengths:")
	assert.Contains(t, output, "Relevant work experience")
}

func TestPrintGaps_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps(nil)

	assert.Empty(t, buf.String())
}

func TestPrintGaps_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gaps := make([]types.SkillGap, 8)
	for i := range gaps {
		gaps[i] = types.SkillGap{Skill: "skill", Difficulty: types.DifficultyEasy, LearningDays: 30}
	}

	p.PrintGaps(gaps)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintLearningPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLearningPath("kubernetes", types.LearningPath{
		PathExists:       true,
		LearningSequence: []string{"docker", "kubernetes"},
		TotalSteps:       2,
		EstimatedWeeks:   4,
		NextSkillToLearn: "docker",
	})
	output := buf.String()

	assert.Contains(t, output, "LEARNING PATH: kubernetes")
	assert.Contains(t, output, "docker -> kubernetes")
	assert.Contains(t, output, "Start with: docker")
}

func TestPrintLearningPath_NoPath(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLearningPath("cobol", types.LearningPath{})

	assert.Contains(t, buf.String(), "No learning path found")
}

func TestPrintTrainReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTrainReport(&classifier.TrainReport{
		TrainAccuracy: 0.95,
		TestAccuracy:  0.88,
		NumSamples:    24,
		Classes:       []string{"easy", "hard", "medium"},
	})
	output := buf.String()

	assert.Contains(t, output, "CLASSIFIER TRAINING")
	assert.Contains(t, output, "24")
	assert.Contains(t, output, "0.95")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
