package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusConstants(t *testing.T) {
	statuses := []string{StatusRunning, StatusCompleted, StatusFailed}
	for _, status := range statuses {
		assert.NotEmpty(t, status)
	}
}

func TestAnalysisRunType(t *testing.T) {
	run := AnalysisRun{
		ResumeSource: "resume.txt",
		JobSource:    "https://example.com/job",
		Status:       StatusRunning,
	}

	assert.Equal(t, "resume.txt", run.ResumeSource)
	assert.Equal(t, StatusRunning, run.Status)
	assert.Nil(t, run.Report)
	assert.Nil(t, run.CompletedAt)
}

func TestAnalysisFiltersDefaults(t *testing.T) {
	filters := AnalysisFilters{}
	assert.Empty(t, filters.Status)
	assert.Zero(t, filters.Limit)
}
