package knowledge

import (
	"math"
	"sort"

	"github.com/jonathan/candidate-fit/internal/types"
)

// Weights for combining the readiness sub-scores
const (
	prerequisitesWeight = 0.5
	similarityWeight    = 0.35
	categoryWeight      = 0.15
)

// Defaults for targets absent from the graphs
const (
	neutralPrereqScore    = 50.0
	defaultSimilarity     = 30.0
	categoryMatchScore    = 60.0
	categoryMismatchScore = 20.0
)

// readinessBand maps a minimum score to a level label and learning-time estimate
type readinessBand struct {
	MinScore float64
	Level    string
	Weeks    int
}

// readinessBands are evaluated top-down; the first matching band wins
var readinessBands = []readinessBand{
	{80, "Excellent - Ready to start immediately", 1},
	{60, "Good - Need 1-2 prerequisite skills", 2},
	{40, "Moderate - Need foundational skills first", 4},
	{20, "Low - Significant learning path required", 8},
	{0, "Very Low - Start with fundamentals", 12},
}

// CalculateReadiness estimates how prepared a candidate is to learn the target
// skill, combining prerequisite coverage, similarity to known skills, and
// category familiarity.
func (g *Graph) CalculateReadiness(knownSkills []string, targetSkill string) types.ReadinessResult {
	known := normalizeAll(knownSkills)
	target := Normalize(targetSkill)

	prereqScore := g.checkPrerequisites(known, target)
	simScore := g.checkSimilarities(known, target)
	catScore := g.checkCategoryOverlap(known, target)

	readiness := prereqScore*prerequisitesWeight + simScore*similarityWeight + catScore*categoryWeight

	level, weeks := bandFor(readiness)

	return types.ReadinessResult{
		TargetSkill:    target,
		ReadinessScore: round1(readiness),
		ReadinessLevel: level,
		EstimatedWeeks: weeks,
		Breakdown: types.ReadinessBreakdown{
			PrerequisitesMet:    round1(prereqScore),
			SimilarSkills:       round1(simScore),
			CategoryFamiliarity: round1(catScore),
		},
		MissingPrerequisites: g.missingPrerequisites(known, target),
	}
}

// bandFor returns the readiness level label and estimated weeks for a score
func bandFor(score float64) (string, int) {
	for _, b := range readinessBands {
		if score >= b.MinScore {
			return b.Level, b.Weeks
		}
	}
	last := readinessBands[len(readinessBands)-1]
	return last.Level, last.Weeks
}

// checkPrerequisites returns the percentage of the target's direct
// prerequisites found among the known skills. Targets with no declared
// prerequisites score a fixed neutral value.
func (g *Graph) checkPrerequisites(known []string, target string) float64 {
	if !g.hasNode(target) {
		return neutralPrereqScore
	}

	predecessors := g.predecessors[target]
	if len(predecessors) == 0 {
		return neutralPrereqScore
	}

	met := 0
	for _, edge := range predecessors {
		if matchesAny(known, edge.Prereq) {
			met++
		}
	}

	score := float64(met) / float64(len(predecessors)) * 100
	return math.Min(score, 100)
}

// checkSimilarities returns the strongest similarity (scaled to 0-100) between
// the target's similarity-graph neighbors and the known skills.
func (g *Graph) checkSimilarities(known []string, target string) float64 {
	neighbors, ok := g.neighbors[target]
	if !ok || len(neighbors) == 0 {
		return defaultSimilarity
	}

	maxSimilarity := 0.0
	for _, n := range neighbors {
		if matchesAny(known, n.Skill) && n.Similarity > maxSimilarity {
			maxSimilarity = n.Similarity
		}
	}
	if maxSimilarity == 0 {
		return defaultSimilarity
	}

	return maxSimilarity * 100
}

// checkCategoryOverlap scores whether any known skill shares the target's
// category bucket.
func (g *Graph) checkCategoryOverlap(known []string, target string) float64 {
	var targetCategory string
	// Iterate category names in sorted order so bucket resolution is deterministic
	names := make([]string, 0, len(g.categories))
	for name := range g.categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, skill := range g.categories[name] {
			if NormalizeAndMatch(target, skill) {
				targetCategory = name
				break
			}
		}
		if targetCategory != "" {
			break
		}
	}

	if targetCategory == "" {
		return categoryMismatchScore
	}

	for _, skill := range g.categories[targetCategory] {
		if matchesAny(known, skill) {
			return categoryMatchScore
		}
	}

	return categoryMismatchScore
}

// missingPrerequisites lists the target's direct prerequisites not covered by
// the known skills, in declaration order.
func (g *Graph) missingPrerequisites(known []string, target string) []string {
	missing := []string{}
	for _, edge := range g.predecessors[target] {
		if !matchesAny(known, edge.Prereq) {
			missing = append(missing, edge.Prereq)
		}
	}
	return missing
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
