//nolint:revive // types is a standard Go package name pattern
package types

// Seniority levels in ascending order
const (
	SeniorityEntry  = "entry"
	SeniorityJunior = "junior"
	SeniorityMid    = "mid"
	SenioritySenior = "senior"
)

// ExperienceProfile summarizes a candidate's work history.
// Derived once per analysis run; read-only input to scoring and retention.
type ExperienceProfile struct {
	TotalYears     float64 `json:"total_years"`
	SeniorityLevel string  `json:"seniority_level"`
	NumberOfRoles  int     `json:"number_of_roles"`
	YearsMentioned []int   `json:"years_mentioned,omitempty"`
}

// JobRequirements holds experience expectations detected in a job posting
type JobRequirements struct {
	RequiredYears float64 `json:"required_years"`
	RequiredLevel string  `json:"required_level"`
	IsFresherRole bool    `json:"is_fresher_role"`
}
