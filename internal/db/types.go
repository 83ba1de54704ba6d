package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-fit/internal/types"
)

// AnalysisRun is the stored record of one resume/job analysis
type AnalysisRun struct {
	ID             uuid.UUID             `json:"id"`
	ResumeSource   string                `json:"resume_source"`
	JobSource      string                `json:"job_source"`
	Status         string                `json:"status"`
	OverallScore   *float64              `json:"overall_score,omitempty"`
	Recommendation *string               `json:"recommendation,omitempty"`
	Report         *types.AnalysisReport `json:"report,omitempty"`
	Error          *string               `json:"error,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
}

// FetchedPage is a cached job posting page
type FetchedPage struct {
	ID         uuid.UUID  `json:"id"`
	URL        string     `json:"url"`
	RawHTML    *string    `json:"raw_html,omitempty"`
	ParsedText *string    `json:"parsed_text,omitempty"`
	HTTPStatus *int       `json:"http_status,omitempty"`
	FetchError *string    `json:"fetch_error,omitempty"`
	FetchedAt  time.Time  `json:"fetched_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// ModelArtifact is a stored copy of a trained classifier
type ModelArtifact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Version   int       `json:"version"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
