// Package depth assesses how substantively a candidate has used a skill,
// from textual evidence alone: mention frequency, context quality, stated
// experience, and concrete proof points.
package depth

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/candidate-fit/internal/types"
)

// contextWindowSize is how many characters around a mention form its context
const contextWindowSize = 200

// detailedContextLength is the context length that earns an evidence bonus
const detailedContextLength = 150

// contextIndicators maps each quality level to its indicator phrases.
// Production beats hands-on beats theory when several levels score.
var contextIndicators = map[string][]string{
	types.ContextTheory: {
		"learned", "studied", "familiar with", "knowledge of",
		"understanding of", "coursework", "academic", "theoretical",
	},
	types.ContextHandsOn: {
		"used", "worked with", "implemented", "built", "developed",
		"created", "project", "assignment", "practice",
	},
	types.ContextProduction: {
		"deployed", "production", "live", "scaled", "optimized",
		"maintained", "enterprise", "client", "commercial", "industry",
		"released", "shipped", "real-world", "business",
	},
}

// levelIndicators are checked in ascending level order; the first level with
// a matching phrase wins.
var levelIndicators = []struct {
	Level   string
	Phrases []string
}{
	{types.LevelBeginner, []string{"basic", "learning", "beginner", "introductory", "fundamental"}},
	{types.LevelIntermediate, []string{"intermediate", "working knowledge", "practical", "applied"}},
	{types.LevelAdvanced, []string{"advanced", "expert", "proficient", "extensive", "mastery"}},
	{types.LevelExpert, []string{"expert", "specialist", "architect", "lead", "principal"}},
}

// Proof-point extraction patterns
var (
	metricsPattern  = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?(?:%|x|times|\s*(?:percent|users|requests|accuracy|improvement)))\b`)
	durationPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:years?|yrs?|months?|mos?)\b`)
	scalePattern    = regexp.MustCompile(`(?i)\b(\d+[KMB]?)\s*(?:users?|requests?|records?|rows?)\b`)
	techPattern     = regexp.MustCompile(`(?i)(?:using|with|via)\s+([A-Z][a-zA-Z0-9\s,]+)`)

	yearsPattern = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
	digitPattern = regexp.MustCompile(`\d`)
)

// maxProofPointsPerKind caps each proof-point list
const maxProofPointsPerKind = 5

// Depth score component weights
var (
	contextQualityWeights = map[string]int{
		types.ContextTheory:     15,
		types.ContextHandsOn:    22,
		types.ContextProduction: 30,
	}
	experienceLevelWeights = map[string]int{
		types.LevelBeginner:     10,
		types.LevelIntermediate: 17,
		types.LevelAdvanced:     22,
		types.LevelExpert:       25,
	}
)

// AnalyzeSkillDepth produces a depth assessment for one skill. When
// contextWindow is empty, the longest window around any occurrence of the
// skill in fullText is used; a skill absent from the text yields the
// low-evidence defaults rather than an error.
func AnalyzeSkillDepth(skill, fullText, contextWindow string) types.DepthAssessment {
	if contextWindow == "" {
		contextWindow = extractSkillContext(skill, fullText, contextWindowSize)
	}

	strength := evidenceStrength(skill, fullText, contextWindow)
	quality := contextQuality(contextWindow)
	level := experienceLevel(contextWindow)
	proof := extractProofPoints(contextWindow)
	score := depthScore(strength, quality, level, proof)

	snippet := contextWindow
	if len(snippet) > detailedContextLength {
		snippet = snippet[:detailedContextLength]
	}

	return types.DepthAssessment{
		Skill:            skill,
		EvidenceStrength: strength,
		ContextQuality:   quality,
		ExperienceLevel:  level,
		ProofPoints:      proof,
		DepthScore:       score,
		Explanation:      explain(skill, strength, quality, level, proof),
		ContextSnippet:   snippet,
	}
}

// AnalyzeAllSkills assesses every extracted skill mention, preferring the
// extractor's context snippet and falling back to a window over the full text.
func AnalyzeAllSkills(skills types.ExtractedSkills, fullText string) map[string]types.DepthAssessment {
	assessments := make(map[string]types.DepthAssessment)
	for _, mentions := range skills {
		for _, m := range mentions {
			assessments[m.Skill] = AnalyzeSkillDepth(m.Skill, fullText, m.Context)
		}
	}
	return assessments
}

// extractSkillContext returns the longest window around any occurrence of the
// skill, or an empty string when the skill never appears.
func extractSkillContext(skill, fullText string, window int) string {
	textLower := strings.ToLower(fullText)
	skillLower := strings.ToLower(skill)
	if skillLower == "" {
		return ""
	}

	best := ""
	pos := 0
	for {
		idx := strings.Index(textLower[pos:], skillLower)
		if idx == -1 {
			break
		}
		idx += pos

		start := idx - window
		if start < 0 {
			start = 0
		}
		end := idx + len(skill) + window
		if end > len(fullText) {
			end = len(fullText)
		}
		if end-start > len(best) {
			best = fullText[start:end]
		}

		pos = idx + len(skillLower)
	}

	return best
}

// evidenceStrength scores 0-5 from mention frequency plus context detail
func evidenceStrength(skill, fullText, context string) int {
	mentions := 0
	if skill != "" {
		mentions = strings.Count(strings.ToLower(fullText), strings.ToLower(skill))
	}

	var base int
	switch {
	case mentions >= 5:
		base = 5
	case mentions >= 3:
		base = 4
	case mentions >= 2:
		base = 3
	default:
		base = 2
	}

	if len(context) > detailedContextLength {
		base++
	}
	if digitPattern.MatchString(context) {
		base++
	}

	if base > 5 {
		base = 5
	}
	return base
}

// contextQuality classifies the context as theory, hands-on, or production
func contextQuality(context string) string {
	lower := strings.ToLower(context)

	hits := func(level string) int {
		count := 0
		for _, indicator := range contextIndicators[level] {
			if strings.Contains(lower, indicator) {
				count++
			}
		}
		return count
	}

	switch {
	case hits(types.ContextProduction) > 0:
		return types.ContextProduction
	case hits(types.ContextHandsOn) > 0:
		return types.ContextHandsOn
	case hits(types.ContextTheory) > 0:
		return types.ContextTheory
	default:
		return types.ContextHandsOn
	}
}

// experienceLevel determines the stated or inferred experience level.
// Explicit indicator phrases take precedence over an inferred value from a
// "N years" mention; with neither signal the level is intermediate.
func experienceLevel(context string) string {
	lower := strings.ToLower(context)

	for _, entry := range levelIndicators {
		for _, phrase := range entry.Phrases {
			if strings.Contains(lower, phrase) {
				return entry.Level
			}
		}
	}

	if m := yearsPattern.FindStringSubmatch(lower); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years >= 5:
				return types.LevelExpert
			case years >= 3:
				return types.LevelAdvanced
			case years >= 1:
				return types.LevelIntermediate
			default:
				return types.LevelBeginner
			}
		}
	}

	return types.LevelIntermediate
}

// extractProofPoints pulls metrics, durations, scale figures, and named
// technologies out of the context. Each list is deduplicated in first-seen
// order and capped.
func extractProofPoints(context string) types.ProofPoints {
	return types.ProofPoints{
		Metrics:      findCapped(metricsPattern, context),
		Duration:     findCapped(durationPattern, context),
		Scale:        findCapped(scalePattern, context),
		Technologies: findCapped(techPattern, context),
	}
}

// findCapped collects unique submatch captures up to the per-kind cap
func findCapped(pattern *regexp.Regexp, text string) []string {
	matches := pattern.FindAllStringSubmatch(text, -1)
	out := []string{}
	seen := map[string]bool{}
	for _, m := range matches {
		value := strings.TrimSpace(m[1])
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
		if len(out) == maxProofPointsPerKind {
			break
		}
	}
	return out
}

// depthScore combines the four signals into a 0-100 score
func depthScore(strength int, quality, level string, proof types.ProofPoints) int {
	evidenceScore := float64(strength) / 5 * 30
	proofScore := math.Min(float64(proof.Total()*3), 15)
	return int(math.Round(evidenceScore + float64(contextQualityWeights[quality]) +
		float64(experienceLevelWeights[level]) + proofScore))
}

// strengthDescriptions describe each evidence strength value
var strengthDescriptions = map[int]string{
	5: "Strong evidence",
	4: "Good evidence",
	3: "Moderate evidence",
	2: "Limited evidence",
	1: "Minimal evidence",
}

var qualityDescriptions = map[string]string{
	types.ContextProduction: "production/commercial environment",
	types.ContextHandsOn:    "hands-on projects/implementations",
	types.ContextTheory:     "theoretical/academic context",
}

var levelDescriptions = map[string]string{
	types.LevelExpert:       "Expert-level proficiency",
	types.LevelAdvanced:     "Advanced skills",
	types.LevelIntermediate: "Intermediate working knowledge",
	types.LevelBeginner:     "Beginner-level familiarity",
}

// explain renders a human-readable summary of the assessment
func explain(skill string, strength int, quality, level string, proof types.ProofPoints) string {
	desc, ok := strengthDescriptions[strength]
	if !ok {
		desc = "Some evidence"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s of %s usage in %s. ", desc, skill, qualityDescriptions[quality]))
	sb.WriteString(levelDescriptions[level] + ". ")

	if len(proof.Duration) > 0 {
		sb.WriteString(fmt.Sprintf("Experience duration: %s. ", strings.Join(proof.Duration, ", ")))
	}
	if len(proof.Metrics) > 0 {
		sb.WriteString(fmt.Sprintf("Measurable results: %s. ", strings.Join(capAt(proof.Metrics, 2), ", ")))
	}
	if len(proof.Technologies) > 0 {
		sb.WriteString(fmt.Sprintf("Used with: %s.", strings.Join(capAt(proof.Technologies, 3), ", ")))
	}

	return strings.TrimSpace(sb.String())
}

// capAt returns at most n leading items
func capAt(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
