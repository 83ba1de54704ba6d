package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-fit/internal/config"
	"github.com/jonathan/candidate-fit/internal/logger"
	"github.com/jonathan/candidate-fit/internal/observability"
	"github.com/jonathan/candidate-fit/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job posting",
	Long: `Runs the full analysis pipeline: ingestion -> extraction -> experience profiling -> semantic similarity -> gap classification -> depth analysis -> readiness -> retention -> scoring.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeJob         string
	analyzeJobURL      string
	analyzeTaxonomy    string
	analyzeTraining    string
	analyzeModel       string
	analyzeOutDir      string
	analyzeUseBrowser  bool
	analyzeVerbose     bool
	analyzeJSONLogs    bool
	analyzeDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeCommand.Flags().StringVar(&analyzeTaxonomy, "taxonomy", "", "Path to skill taxonomy JSON")
	analyzeCommand.Flags().StringVar(&analyzeTraining, "training-data", "", "Path to classifier training CSV")
	analyzeCommand.Flags().StringVar(&analyzeModel, "model", "", "Path to persisted classifier model")
	analyzeCommand.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Directory to write the JSON report to")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full report to stdout")
	analyzeCommand.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")

	// Database URL for report persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.TaxonomyPath = analyzeTaxonomy
	}
	if cmd.Flags().Changed("training-data") {
		cfg.TrainingPath = analyzeTraining
	}
	if cmd.Flags().Changed("model") {
		cfg.ModelPath = analyzeModel
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = analyzeOutDir
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = analyzeJSONLogs
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: Database URL handling (optional, persistence is best-effort)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	opts := pipeline.RunOptions{
		ResumePath:   cfg.Resume,
		JobPath:      cfg.Job,
		JobURL:       cfg.JobURL,
		TaxonomyPath: cfg.TaxonomyPath,
		TrainingPath: cfg.TrainingPath,
		ModelPath:    cfg.ModelPath,
		OutDir:       cfg.OutDir,
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
		DatabaseURL:  cfg.DatabaseURL,
		Logger:       log,
	}

	report, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if !cfg.Verbose {
		// Verbose mode already printed the full report inside the pipeline
		observability.NewPrinter(os.Stdout).PrintScoreSummary(report)
	}
	return nil
}
