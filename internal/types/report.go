//nolint:revive // types is a standard Go package name pattern
package types

// SkillMatchResult summarizes the overlap between resume and job skill sets
type SkillMatchResult struct {
	MatchPercentage   float64  `json:"match_percentage"`
	MatchedSkills     []string `json:"matched_skills"`
	TotalJobSkills    int      `json:"total_jd_skills"`
	TotalResumeSkills int      `json:"total_resume_skills"`
}

// SkillAnalysis groups the skill-level findings of an analysis run
type SkillAnalysis struct {
	TotalSkillsFound int               `json:"total_skills_found"`
	MatchPercentage  float64           `json:"match_percentage"`
	MatchedSkills    []string          `json:"matched_skills"`
	MissingSkills    []SkillGap        `json:"missing_skills"`
	ByCategory       map[string]int    `json:"by_category"`
	DepthAssessments []DepthAssessment `json:"depth_assessments,omitempty"`
}

// ContactInfo holds candidate contact details extracted from a resume
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// AnalysisReport is the complete output of one candidate/job analysis
type AnalysisReport struct {
	RunID              string                `json:"run_id"`
	CandidateInfo      ContactInfo           `json:"candidate_info"`
	OverallScore       float64               `json:"overall_score"`
	Recommendation     string                `json:"recommendation"`
	Confidence         string                `json:"confidence"`
	ComponentScores    ComponentScores       `json:"component_scores"`
	SkillAnalysis      SkillAnalysis         `json:"skill_analysis"`
	Experience         ExperienceProfile     `json:"experience_analysis"`
	JobRequirements    JobRequirements       `json:"job_requirements"`
	Strengths          []string              `json:"strengths"`
	TopGaps            []SkillGap            `json:"top_gaps"`
	Readiness          []ReadinessResult     `json:"readiness,omitempty"`
	Retention          []RetentionPrediction `json:"retention,omitempty"`
	SemanticSimilarity float64               `json:"semantic_similarity"`
}
