//nolint:revive // types is a standard Go package name pattern
package types

// Context quality levels in ascending order of evidential value
const (
	ContextTheory     = "theory"
	ContextHandsOn    = "hands_on"
	ContextProduction = "production"
)

// Experience levels in ascending order
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// ProofPoints holds concrete evidence extracted from a skill's context
type ProofPoints struct {
	Metrics      []string `json:"metrics"`
	Duration     []string `json:"duration"`
	Scale        []string `json:"scale"`
	Technologies []string `json:"technologies"`
}

// Total returns the number of extracted proof points across all kinds
func (p ProofPoints) Total() int {
	return len(p.Metrics) + len(p.Duration) + len(p.Scale) + len(p.Technologies)
}

// DepthAssessment measures how substantively a candidate has used a skill
type DepthAssessment struct {
	Skill            string      `json:"skill"`
	EvidenceStrength int         `json:"evidence_strength"` // 0-5
	ContextQuality   string      `json:"context_quality"`
	ExperienceLevel  string      `json:"experience_level"`
	ProofPoints      ProofPoints `json:"proof_points"`
	DepthScore       int         `json:"depth_score"` // 0-100
	Explanation      string      `json:"explanation"`
	ContextSnippet   string      `json:"context_snippet,omitempty"`
}

// DepthComparison matches a required skill against the candidate's best depth evidence
type DepthComparison struct {
	RequiredSkill  string `json:"required_skill"`
	CandidateSkill string `json:"candidate_skill,omitempty"`
	DepthScore     int    `json:"depth_score"`
	ContextQuality string `json:"context_quality,omitempty"`
	MatchQuality   string `json:"match_quality"` // strong, moderate, weak, missing
	Explanation    string `json:"explanation"`
}
