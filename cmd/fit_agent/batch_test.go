package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand_MissingResumes(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "batch")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "resumes")
}

func TestBatchCommand_MissingJob(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumeDir := t.TempDir()

	cmd := exec.Command(binaryPath, "batch", "--resumes", resumeDir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --job or --job-url must be provided")
}

func TestBatchCommand_RanksCandidates(t *testing.T) {
	binaryPath := getBinaryPath(t)
	_, job, taxonomy, training := writeAnalysisFixtures(t)

	resumeDir := t.TempDir()
	strong := cliResume
	weak := "Jane Roe\nEXPERIENCE\nOne year of Java development (2022 - 2023)\n"
	require.NoError(t, os.WriteFile(filepath.Join(resumeDir, "strong.txt"), []byte(strong), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(resumeDir, "weak.txt"), []byte(weak), 0o644))

	outFile := filepath.Join(t.TempDir(), "results.json")
	cmd := exec.Command(binaryPath, "batch",
		"--resumes", resumeDir,
		"--job", job,
		"--taxonomy", taxonomy,
		"--training-data", training,
		"--out", outFile)
	cmd.Env = envWithout("DATABASE_URL")

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var results []struct {
		ID     string `json:"id"`
		Report struct {
			OverallScore float64 `json:"overall_score"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 2)

	// Output is ranked best first
	assert.Equal(t, "strong", results[0].ID)
	assert.Equal(t, "weak", results[1].ID)
	assert.Greater(t, results[0].Report.OverallScore, results[1].Report.OverallScore)
}
