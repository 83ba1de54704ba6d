//nolint:revive // types is a standard Go package name pattern
package types

// Confidence levels for a final score
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// ComponentScores holds the five sub-scores feeding the final score, each 0-100
type ComponentScores struct {
	SkillMatch         float64 `json:"skill_match"`
	Experience         float64 `json:"experience"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	Education          float64 `json:"education"`
	LearningPotential  float64 `json:"learning_potential"`
}

// FinalScoreResult is the terminal artifact of the scoring engine
type FinalScoreResult struct {
	FinalScore      float64         `json:"final_score"` // 0-100, two decimals
	Recommendation  string          `json:"recommendation"`
	Confidence      string          `json:"confidence"`
	ComponentScores ComponentScores `json:"component_scores"`
}
