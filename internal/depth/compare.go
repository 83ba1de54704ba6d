package depth

import (
	"fmt"
	"sort"

	"github.com/jonathan/candidate-fit/internal/knowledge"
	"github.com/jonathan/candidate-fit/internal/types"
)

// Match quality thresholds for depth comparisons
const (
	strongMatchScore   = 70
	moderateMatchScore = 40
)

// CompareSkillDepth matches each required skill against the candidate's
// best-scoring depth assessment. Candidates are considered in sorted skill
// order so ties resolve deterministically.
func CompareSkillDepth(candidateDepths map[string]types.DepthAssessment, requiredSkills []string) []types.DepthComparison {
	candidateSkills := make([]string, 0, len(candidateDepths))
	for skill := range candidateDepths {
		candidateSkills = append(candidateSkills, skill)
	}
	sort.Strings(candidateSkills)

	comparisons := make([]types.DepthComparison, 0, len(requiredSkills))
	for _, required := range requiredSkills {
		bestSkill := ""
		bestScore := 0
		for _, candidate := range candidateSkills {
			if !knowledge.NormalizeAndMatch(required, candidate) {
				continue
			}
			if assessment := candidateDepths[candidate]; assessment.DepthScore > bestScore {
				bestSkill = candidate
				bestScore = assessment.DepthScore
			}
		}

		if bestSkill == "" {
			comparisons = append(comparisons, types.DepthComparison{
				RequiredSkill: required,
				MatchQuality:  "missing",
				Explanation:   fmt.Sprintf("%s not found in resume", required),
			})
			continue
		}

		best := candidateDepths[bestSkill]
		comparisons = append(comparisons, types.DepthComparison{
			RequiredSkill:  required,
			CandidateSkill: bestSkill,
			DepthScore:     best.DepthScore,
			ContextQuality: best.ContextQuality,
			MatchQuality:   matchQuality(best.DepthScore),
			Explanation:    best.Explanation,
		})
	}

	return comparisons
}

// matchQuality bands a depth score into strong, moderate, or weak
func matchQuality(score int) string {
	switch {
	case score >= strongMatchScore:
		return "strong"
	case score >= moderateMatchScore:
		return "moderate"
	default:
		return "weak"
	}
}

// TopSkillsByDepth returns the n deepest assessments in descending score
// order, with ties broken by skill name.
func TopSkillsByDepth(assessments map[string]types.DepthAssessment, n int) []types.DepthAssessment {
	ranked := make([]types.DepthAssessment, 0, len(assessments))
	for _, a := range assessments {
		ranked = append(ranked, a)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DepthScore != ranked[j].DepthScore {
			return ranked[i].DepthScore > ranked[j].DepthScore
		}
		return ranked[i].Skill < ranked[j].Skill
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
