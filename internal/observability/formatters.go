// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs the full analysis report as a sequence of boxes.
func (p *Printer) PrintReport(report *types.AnalysisReport) {
	if report == nil {
		return
	}
	p.PrintScoreSummary(report)
	p.PrintSkillAnalysis(&report.SkillAnalysis)
	p.PrintGaps(report.TopGaps)
	p.PrintReadiness(report.Readiness)
	p.PrintRetention(report.Retention)
}

// PrintScoreSummary outputs the overall verdict and component scores.
func (p *Printer) PrintScoreSummary(report *types.AnalysisReport) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall Score:  %.2f/100\n", report.OverallScore))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", report.Recommendation))
	sb.WriteString(fmt.Sprintf("Confidence:     %s\n", report.Confidence))
	sb.WriteString("\n")
	sb.WriteString("Component Scores:\n")
	sb.WriteString(fmt.Sprintf("  Skill Match:         %.2f\n", report.ComponentScores.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience:          %.2f\n", report.ComponentScores.Experience))
	sb.WriteString(fmt.Sprintf("  Semantic Similarity: %.2f\n", report.ComponentScores.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("  Education:           %.2f\n", report.ComponentScores.Education))
	sb.WriteString(fmt.Sprintf("  Learning Potential:  %.2f\n", report.ComponentScores.LearningPotential))

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, strength := range report.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", strength))
		}
	}

	p.printBox("CANDIDATE FIT REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillAnalysis outputs the matched/missing skill breakdown.
func (p *Printer) PrintSkillAnalysis(analysis *types.SkillAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d, match: %.2f%%\n",
		analysis.TotalSkillsFound, analysis.MatchPercentage))

	if len(analysis.MatchedSkills) > 0 {
		matched := strings.Join(analysis.MatchedSkills, ", ")
		if len(matched) > 45 {
			matched = matched[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched: %s\n", matched))
	}

	if len(analysis.DepthAssessments) > 0 {
		sb.WriteString("\nDeepest skills:\n")
		count := min(len(analysis.DepthAssessments), maxItemsToShow)
		for i := 0; i < count; i++ {
			a := analysis.DepthAssessments[i]
			sb.WriteString(fmt.Sprintf("  %s: %d/100 (%s, %s)\n",
				a.Skill, a.DepthScore, a.ContextQuality, a.ExperienceLevel))
		}
	}

	p.printBox("SKILL ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the hardest skill gaps with learning estimates.
func (p *Printer) PrintGaps(gaps []types.SkillGap) {
	if len(gaps) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := gaps[i]
		sb.WriteString(fmt.Sprintf("⚠ %s (%s, ~%d days)", gap.Skill, gap.Difficulty, gap.LearningDays))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(gaps)-maxItemsToShow))
	}

	p.printBox("TOP SKILL GAPS", sb.String())
}

// PrintReadiness outputs per-gap learning readiness.
func (p *Printer) PrintReadiness(results []types.ReadinessResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("%s: %.1f (%s, ~%d weeks)",
			r.TargetSkill, r.ReadinessScore, r.ReadinessLevel, r.EstimatedWeeks))
		if len(r.MissingPrerequisites) > 0 {
			missing := strings.Join(r.MissingPrerequisites, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("\n  missing: %s", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING READINESS", sb.String())
}

// PrintLearningPath outputs the recommended skill sequence for one target.
func (p *Printer) PrintLearningPath(target string, path types.LearningPath) {
	var sb strings.Builder
	if !path.PathExists {
		sb.WriteString("No learning path found")
	} else {
		sb.WriteString(fmt.Sprintf("Sequence: %s\n", strings.Join(path.LearningSequence, " -> ")))
		sb.WriteString(fmt.Sprintf("Steps: %d, ~%d weeks\n", path.TotalSteps, path.EstimatedWeeks))
		sb.WriteString(fmt.Sprintf("Start with: %s", path.NextSkillToLearn))
	}

	p.printBox(fmt.Sprintf("LEARNING PATH: %s", target), sb.String())
}

// PrintRetention outputs retention forecasts for skills to be learned.
func (p *Printer) PrintRetention(predictions []types.RetentionPrediction) {
	if len(predictions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(predictions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pred := predictions[i]
		sb.WriteString(fmt.Sprintf("%s: %.1f%% (%s)\n",
			pred.Skill, pred.RetentionProbability, pred.RetentionCategory))
		sb.WriteString(fmt.Sprintf("  review %s", pred.ReviewSchedule))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RETENTION FORECAST", sb.String())
}

// PrintTrainReport outputs classifier training metrics.
func (p *Printer) PrintTrainReport(report *classifier.TrainReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Samples:        %d\n", report.NumSamples))
	sb.WriteString(fmt.Sprintf("Classes:        %s\n", strings.Join(report.Classes, ", ")))
	sb.WriteString(fmt.Sprintf("Train accuracy: %.2f\n", report.TrainAccuracy))
	sb.WriteString(fmt.Sprintf("Test accuracy:  %.2f", report.TestAccuracy))

	p.printBox("CLASSIFIER TRAINING", sb.String())
}
