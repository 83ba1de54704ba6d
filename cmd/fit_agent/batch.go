package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/config"
	"github.com/jonathan/candidate-fit/internal/extraction"
	"github.com/jonathan/candidate-fit/internal/ingestion"
	"github.com/jonathan/candidate-fit/internal/knowledge"
	"github.com/jonathan/candidate-fit/internal/logger"
	"github.com/jonathan/candidate-fit/internal/pipeline"
)

var batchCommand = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a directory of resumes against one job posting",
	Long:  `Runs the analysis pipeline concurrently over every resume file in a directory, against a single job posting. Results are ranked by overall score.`,
	RunE:  runBatchCmd,
}

var (
	batchResumeDir   string
	batchJob         string
	batchJobURL      string
	batchTaxonomy    string
	batchTraining    string
	batchModel       string
	batchOut         string
	batchConcurrency int
	batchUseBrowser  bool
	batchVerbose     bool
)

func init() {
	batchCommand.Flags().StringVarP(&batchResumeDir, "resumes", "r", "", "Directory containing resume text files (required)")
	batchCommand.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	batchCommand.Flags().StringVar(&batchJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	batchCommand.Flags().StringVar(&batchTaxonomy, "taxonomy", config.DefaultTaxonomyPath, "Path to skill taxonomy JSON")
	batchCommand.Flags().StringVar(&batchTraining, "training-data", config.DefaultTrainingPath, "Path to classifier training CSV")
	batchCommand.Flags().StringVar(&batchModel, "model", config.DefaultModelPath, "Path to persisted classifier model")
	batchCommand.Flags().StringVarP(&batchOut, "out", "o", "", "File to write the ranked JSON results to")
	batchCommand.Flags().IntVar(&batchConcurrency, "concurrency", pipeline.DefaultBatchConcurrency, "Number of resumes analyzed in parallel")
	batchCommand.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	batchCommand.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	_ = batchCommand.MarkFlagRequired("resumes")
	rootCmd.AddCommand(batchCommand)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if batchJob == "" && batchJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if batchJob != "" && batchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	log, err := logger.New(false, batchVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	resumes, err := loadResumeDir(batchResumeDir)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no resume files found in %s", batchResumeDir)
	}

	var jobText string
	if batchJobURL != "" {
		jobText, _, err = ingestion.IngestFromURL(ctx, batchJobURL, batchUseBrowser, batchVerbose)
		if err != nil {
			return fmt.Errorf("ingesting job posting from URL: %w", err)
		}
	} else {
		jobText, _, err = ingestion.IngestFromFile(batchJob)
		if err != nil {
			return fmt.Errorf("ingesting job posting: %w", err)
		}
	}

	extractor, err := extraction.NewExtractor(batchTaxonomy)
	if err != nil {
		return fmt.Errorf("loading skill taxonomy: %w", err)
	}
	analyzer := pipeline.NewAnalyzer(extractor, knowledge.NewGraph(), classifier.New(batchTraining, batchModel), log)

	results, err := analyzer.AnalyzeBatch(ctx, resumes, jobText, batchConcurrency)
	if err != nil {
		return err
	}

	// Rank candidates best first
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Report.OverallScore > results[j].Report.OverallScore
	})

	for rank, res := range results {
		fmt.Fprintf(os.Stdout, "%2d. %-30s %6.2f  %s\n",
			rank+1, res.ID, res.Report.OverallScore, res.Report.Recommendation)
	}

	if batchOut != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		if err := os.WriteFile(batchOut, data, 0o644); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		fmt.Fprintf(os.Stdout, "\nResults written to %s\n", batchOut)
	}

	return nil
}

// loadResumeDir reads every regular file in dir as one resume, keyed by
// its base name without extension.
func loadResumeDir(dir string) ([]pipeline.BatchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resume directory: %w", err)
	}

	var items []pipeline.BatchItem
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		text, _, err := ingestion.IngestFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("ingesting resume %s: %w", path, err)
		}
		name := entry.Name()
		id := name[:len(name)-len(filepath.Ext(name))]
		items = append(items, pipeline.BatchItem{ID: id, ResumeText: text})
	}
	return items, nil
}
