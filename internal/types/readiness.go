//nolint:revive // types is a standard Go package name pattern
package types

// ReadinessBreakdown holds the three sub-scores behind a readiness result
type ReadinessBreakdown struct {
	PrerequisitesMet    float64 `json:"prerequisites_met"`
	SimilarSkills       float64 `json:"similar_skills"`
	CategoryFamiliarity float64 `json:"category_familiarity"`
}

// ReadinessResult estimates how prepared a candidate is to learn a target skill
type ReadinessResult struct {
	TargetSkill          string             `json:"target_skill"`
	ReadinessScore       float64            `json:"readiness_score"`
	ReadinessLevel       string             `json:"readiness_level"`
	EstimatedWeeks       int                `json:"estimated_learning_weeks"`
	Breakdown            ReadinessBreakdown `json:"breakdown"`
	MissingPrerequisites []string           `json:"missing_prerequisites"`
}

// LearningPath is an ordered sequence of skills leading to a target
type LearningPath struct {
	PathExists       bool     `json:"path_exists"`
	LearningSequence []string `json:"learning_sequence"`
	TotalSteps       int      `json:"total_steps"`
	EstimatedWeeks   int      `json:"estimated_weeks"`
	NextSkillToLearn string   `json:"next_skill_to_learn"`
}

// TransferableSkill ranks an opportunity by how ready the candidate is for it
type TransferableSkill struct {
	Opportunity    string   `json:"opportunity"`
	ReadinessScore float64  `json:"readiness_score"`
	ReadinessLevel string   `json:"readiness_level"`
	EstimatedWeeks int      `json:"estimated_weeks"`
	MissingSkills  []string `json:"missing_skills"`
}
