// Package pipeline orchestrates a complete candidate/job analysis: skill
// extraction, experience profiling, similarity, gap identification, depth,
// readiness, retention, and final scoring, assembled into one report.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/depth"
	"github.com/jonathan/candidate-fit/internal/experience"
	"github.com/jonathan/candidate-fit/internal/extraction"
	"github.com/jonathan/candidate-fit/internal/knowledge"
	"github.com/jonathan/candidate-fit/internal/retention"
	"github.com/jonathan/candidate-fit/internal/scoring"
	"github.com/jonathan/candidate-fit/internal/types"
)

const (
	// maxDepthAssessments bounds the depth section of the report
	maxDepthAssessments = 10
	// maxReportGaps bounds the top_gaps section of the report
	maxReportGaps = 5
)

// Analyzer runs the analysis pipeline. The extractor, graph, and classifier
// are loaded once and treated as read-only; a single Analyzer is safe for
// concurrent use once the classifier is trained or loaded.
type Analyzer struct {
	extractor  *extraction.Extractor
	graph      *knowledge.Graph
	classifier *classifier.Classifier
	log        *zap.Logger
}

// NewAnalyzer wires the analysis components together. A nil logger disables
// pipeline logging.
func NewAnalyzer(extractor *extraction.Extractor, graph *knowledge.Graph, clf *classifier.Classifier, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		extractor:  extractor,
		graph:      graph,
		classifier: clf,
		log:        log,
	}
}

// jobContext holds the job-side inputs, computed once and shared read-only
// across the resumes of a batch.
type jobContext struct {
	text         string
	skills       types.ExtractedSkills
	requirements types.JobRequirements
}

func (a *Analyzer) prepareJob(jobText string) *jobContext {
	skills := a.extractor.ExtractSkills(jobText)
	a.log.Debug("extracted job skills", zap.Int("count", skills.Total()))
	return &jobContext{
		text:         jobText,
		skills:       skills,
		requirements: experience.AnalyzeJobRequirements(jobText),
	}
}

// Analyze runs the full pipeline for one resume against one job posting.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.AnalysisReport, error) {
	return a.analyzeAgainst(ctx, resumeText, a.prepareJob(jobText))
}

func (a *Analyzer) analyzeAgainst(ctx context.Context, resumeText string, job *jobContext) (*types.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := a.log.With(zap.String("run_id", runID))
	log.Debug("starting analysis", zap.Int("resume_chars", len(resumeText)))

	sections := extraction.DetectSections(resumeText)
	contact := extraction.ExtractContactInfo(resumeText)

	resumeSkills := a.extractor.ExtractSkills(resumeText)
	log.Debug("extracted resume skills", zap.Int("count", resumeSkills.Total()))

	profile := experience.AnalyzeExperience(sections["experience"])
	log.Debug("profiled experience",
		zap.Float64("total_years", profile.TotalYears),
		zap.String("seniority", profile.SeniorityLevel))

	similarity := CalculateSimilarity(resumeText, job.text)
	skillMatch := calculateSkillMatch(resumeSkills, job.skills)

	gaps, err := a.identifyGaps(resumeSkills, job.skills)
	if err != nil {
		return nil, fmt.Errorf("identifying skill gaps: %w", err)
	}
	log.Debug("identified gaps", zap.Int("count", len(gaps)))

	assessments := depth.AnalyzeAllSkills(resumeSkills, resumeText)
	topDepth := depth.TopSkillsByDepth(assessments, maxDepthAssessments)

	knownSkills := resumeSkills.Names()
	readiness := make([]types.ReadinessResult, 0, len(gaps))
	for _, gap := range gaps {
		readiness = append(readiness, a.graph.CalculateReadiness(knownSkills, gap.Skill))
	}

	retentionPredictions := retention.BatchPredictRetention(gaps, knownSkills, retention.CandidateProfile{
		TotalYears:     profile.TotalYears,
		SeniorityLevel: profile.SeniorityLevel,
		NumberOfSkills: len(knownSkills),
	}, "")

	components := types.ComponentScores{
		SkillMatch:         skillMatch.MatchPercentage,
		Experience:         scoreExperience(profile),
		SemanticSimilarity: similarity.OverallSimilarity,
		Education:          scoreEducation(sections),
		LearningPotential:  scoreLearningPotential(gaps),
	}
	final := scoring.CalculateFinalScore(components)
	log.Info("analysis complete",
		zap.Float64("overall_score", final.FinalScore),
		zap.String("recommendation", final.Recommendation))

	byCategory := make(map[string]int, len(resumeSkills))
	for category, mentions := range resumeSkills {
		byCategory[category] = len(mentions)
	}

	return &types.AnalysisReport{
		RunID:           runID,
		CandidateInfo:   contact,
		OverallScore:    final.FinalScore,
		Recommendation:  final.Recommendation,
		Confidence:      final.Confidence,
		ComponentScores: final.ComponentScores,
		SkillAnalysis: types.SkillAnalysis{
			TotalSkillsFound: resumeSkills.Total(),
			MatchPercentage:  skillMatch.MatchPercentage,
			MatchedSkills:    skillMatch.MatchedSkills,
			MissingSkills:    gaps,
			ByCategory:       byCategory,
			DepthAssessments: topDepth,
		},
		Experience:         profile,
		JobRequirements:    job.requirements,
		Strengths:          scoring.GenerateStrengths(final.ComponentScores),
		TopGaps:            scoring.TopGaps(gaps, maxReportGaps),
		Readiness:          readiness,
		Retention:          retentionPredictions,
		SemanticSimilarity: similarity.OverallSimilarity,
	}, nil
}
