// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default data and model locations
const (
	DefaultTaxonomyPath = "data/skill_taxonomy.json"
	DefaultTrainingPath = "data/skill_relationships.csv"
	DefaultModelPath    = "models/skill_gap_classifier_v1.json"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Data and model locations
	TaxonomyPath string `json:"taxonomy_path,omitempty"` // Skill taxonomy JSON
	TrainingPath string `json:"training_path,omitempty"` // Skill relationship training CSV
	ModelPath    string `json:"model_path,omitempty"`    // Trained classifier artifact

	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for report artifacts

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	JSONLogs    bool   `json:"json_logs,omitempty"`    // Emit logs as JSON
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	for _, check := range []struct {
		path  string
		label string
	}{
		{c.Resume, "resume"},
		{c.Job, "job"},
		{c.TaxonomyPath, "taxonomy"},
		{c.TrainingPath, "training data"},
	} {
		if check.path == "" {
			continue
		}
		if _, err := os.Stat(check.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", check.label, check.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled first from
// defaults, then from the package defaults. This is used to apply config
// file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.TrainingPath == "" {
		result.TrainingPath = defaults.TrainingPath
	}
	if result.ModelPath == "" {
		result.ModelPath = defaults.ModelPath
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.TaxonomyPath == "" {
		result.TaxonomyPath = DefaultTaxonomyPath
	}
	if result.TrainingPath == "" {
		result.TrainingPath = DefaultTrainingPath
	}
	if result.ModelPath == "" {
		result.ModelPath = DefaultModelPath
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags win

	return result
}
