//nolint:revive // types is a standard Go package name pattern
package types

// Retention categories in descending order of outlook
const (
	RetentionExcellent = "excellent"
	RetentionGood      = "good"
	RetentionModerate  = "moderate"
	RetentionAtRisk    = "at_risk"
)

// RetentionPrediction forecasts long-term retention for a skill to be learned
type RetentionPrediction struct {
	Skill                string   `json:"skill"`
	RetentionProbability float64  `json:"retention_probability"` // 25.0-95.0, one decimal
	RetentionCategory    string   `json:"retention_category"`
	CategoryDescription  string   `json:"category_description"`
	ReviewSchedule       string   `json:"review_schedule"`
	Recommendations      []string `json:"recommendations"` // At most 3
}
