// Package retention forecasts how likely a candidate is to retain newly
// learned skills long-term. The model is an explainable heuristic built from
// experience banding, breadth, skill complexity, and transfer from related
// skills; it makes no claim of statistical validation.
package retention

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/candidate-fit/internal/types"
)

// CandidateProfile carries the candidate attributes the predictor reads
type CandidateProfile struct {
	TotalYears     float64 `json:"total_years"`
	SeniorityLevel string  `json:"seniority_level"`
	NumberOfSkills int     `json:"number_of_skills"`
}

// Retention bounds and factor constants
const (
	minRetention = 25.0
	maxRetention = 95.0

	perSkillBoost   = 0.7
	maxSkillBoost   = 15.0
	perTierPenalty  = 6.0
	perFamilyBoost  = 9.0
	maxFamilyBoost  = 25.0
	variationStep   = 3.5
	variationOffset = 7.0
)

// complexityTiers is evaluated top-down; the first tier with a matching
// keyword wins. Unclassified skills fall through to tier 1.
var complexityTiers = []struct {
	Tier     int
	Keywords []string
}{
	{5, []string{"kubernetes", "distributed systems", "system design", "architecture"}},
	{4, []string{"machine learning", "deep learning", "tensorflow", "pytorch"}},
	{3, []string{"cloud", "aws", "azure", "gcp", "docker"}},
	{2, []string{"python", "java", "sql", "javascript"}},
}

// skillFamilies groups related skills for the transfer-learning bonus.
// Evaluated in order; the first key contained in the target skill wins.
var skillFamilies = []struct {
	Key    string
	Family []string
}{
	{"aws", []string{"cloud", "gcp", "azure", "devops", "docker"}},
	{"azure", []string{"cloud", "aws", "gcp", "devops", "docker"}},
	{"gcp", []string{"cloud", "aws", "azure", "devops", "docker"}},
	{"pytorch", []string{"tensorflow", "keras", "machine learning", "python", "deep learning"}},
	{"tensorflow", []string{"pytorch", "keras", "machine learning", "python", "deep learning"}},
	{"docker", []string{"linux", "devops", "kubernetes", "cloud"}},
	{"kubernetes", []string{"docker", "devops", "cloud", "aws"}},
	{"nltk", []string{"nlp", "python", "spacy", "text processing"}},
	{"spacy", []string{"nlp", "python", "nltk", "text processing"}},
}

// BatchPredictRetention forecasts retention for every missing skill, sorted
// by descending probability. expectedPractice is accepted for interface
// compatibility; the current model does not weight it.
func BatchPredictRetention(missingSkills []types.SkillGap, currentSkills []string, profile CandidateProfile, expectedPractice string) []types.RetentionPrediction {
	_ = expectedPractice

	predictions := make([]types.RetentionPrediction, 0, len(missingSkills))
	for i, gap := range missingSkills {
		retention := calculateRetention(gap.Skill, profile, currentSkills, i)
		predictions = append(predictions, types.RetentionPrediction{
			Skill:                gap.Skill,
			RetentionProbability: retention,
			RetentionCategory:    category(retention),
			CategoryDescription:  describe(retention, profile),
			ReviewSchedule:       schedule(retention),
			Recommendations:      recommendations(retention, profile.TotalYears, gap.Skill),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].RetentionProbability > predictions[j].RetentionProbability
	})

	return predictions
}

// calculateRetention combines the model factors for one skill. The
// positional variation term (index*3.5 - 7) is a deliberate decorrelation
// hack so multiple gaps for one candidate do not collapse to a single value;
// its constants are a fixed compatibility contract, not a learned effect.
func calculateRetention(skill string, profile CandidateProfile, currentSkills []string, index int) float64 {
	base := experienceBase(profile.TotalYears)
	skillBoost := math.Min(float64(profile.NumberOfSkills)*perSkillBoost, maxSkillBoost)
	complexityPenalty := float64(complexity(skill)) * perTierPenalty
	transfer := transferBoost(skill, currentSkills)
	variation := float64(index)*variationStep - variationOffset

	retention := base + skillBoost - complexityPenalty + transfer + variation

	retention = math.Max(minRetention, math.Min(maxRetention, retention))
	return math.Round(retention*10) / 10
}

// experienceBase returns the starting retention rate for a years band
func experienceBase(years float64) float64 {
	switch {
	case years >= 7:
		return 82
	case years >= 5:
		return 75
	case years >= 3:
		return 65
	case years >= 1:
		return 52
	default:
		return 38
	}
}

// complexity returns the 1-5 complexity tier for a skill
func complexity(skill string) int {
	lower := strings.ToLower(skill)
	for _, tier := range complexityTiers {
		for _, keyword := range tier.Keywords {
			if strings.Contains(lower, keyword) {
				return tier.Tier
			}
		}
	}
	return 1
}

// transferBoost rewards known skills in the same family as the target
func transferBoost(skill string, currentSkills []string) float64 {
	lower := strings.ToLower(skill)

	var family []string
	for _, f := range skillFamilies {
		if strings.Contains(lower, f.Key) {
			family = f.Family
			break
		}
	}
	if family == nil {
		return 0
	}

	matches := 0
	for _, current := range currentSkills {
		currentLower := strings.ToLower(current)
		for _, related := range family {
			if strings.Contains(currentLower, related) || strings.Contains(related, currentLower) {
				matches++
			}
		}
	}

	return math.Min(float64(matches)*perFamilyBoost, maxFamilyBoost)
}

// category bands a retention probability
func category(retention float64) string {
	switch {
	case retention >= 70:
		return types.RetentionExcellent
	case retention >= 55:
		return types.RetentionGood
	case retention >= 40:
		return types.RetentionModerate
	default:
		return types.RetentionAtRisk
	}
}

// describe renders the band description for the candidate's background
func describe(retention float64, profile CandidateProfile) string {
	years := int(profile.TotalYears)
	switch {
	case retention >= 70:
		return fmt.Sprintf("High retention - strong %s background with %d years helps", profile.SeniorityLevel, years)
	case retention >= 55:
		return fmt.Sprintf("Good retention - %d years provides solid foundation", years)
	case retention >= 40:
		return "Moderate retention - needs consistent practice"
	default:
		return fmt.Sprintf("At risk - limited %d year background", years)
	}
}

// schedule returns the review cadence for a retention band
func schedule(retention float64) string {
	switch {
	case retention >= 70:
		return "Every 2 weeks"
	case retention >= 55:
		return "Every week"
	case retention >= 40:
		return "Every 4-5 days"
	default:
		return "Every 2-3 days"
	}
}

// recommendations builds up to three study recommendations, varying by
// retention band and by whether the candidate is entry-level or senior
func recommendations(retention, years float64, skill string) []string {
	recs := make([]string, 0, 3)

	switch {
	case retention < 45:
		recs = append(recs,
			fmt.Sprintf("Critical: build 4-5 hands-on %s projects immediately", skill),
			fmt.Sprintf("Practice %s daily for the first 2 months", skill))
	case retention < 60:
		recs = append(recs,
			fmt.Sprintf("Build 2-3 %s projects to solidify understanding", skill),
			fmt.Sprintf("Review %s concepts weekly", skill))
	default:
		recs = append(recs,
			"Build 1-2 projects to maintain skills",
			fmt.Sprintf("Review %s every 2 weeks", skill))
	}

	if years < 1 {
		recs = append(recs, fmt.Sprintf("As entry-level, master %s deeply before moving on", skill))
	} else if years >= 5 {
		recs = append(recs, fmt.Sprintf("Teaching %s to juniors will boost retention", skill))
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
