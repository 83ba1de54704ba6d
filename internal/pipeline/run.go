package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/db"
	"github.com/jonathan/candidate-fit/internal/extraction"
	"github.com/jonathan/candidate-fit/internal/ingestion"
	"github.com/jonathan/candidate-fit/internal/knowledge"
	"github.com/jonathan/candidate-fit/internal/observability"
	"github.com/jonathan/candidate-fit/internal/types"
)

// RunOptions holds configuration for a full analysis run
type RunOptions struct {
	ResumePath   string
	JobPath      string
	JobURL       string
	TaxonomyPath string
	TrainingPath string
	ModelPath    string
	OutDir       string
	UseBrowser   bool
	Verbose      bool
	DatabaseURL  string
	Logger       *zap.Logger
}

// Run ingests the inputs, executes the analysis pipeline, and persists the
// report. Database persistence is best-effort: a missing or unreachable
// database degrades to a warning, never a failed analysis.
func Run(ctx context.Context, opts RunOptions) (*types.AnalysisReport, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	extractor, err := extraction.NewExtractor(opts.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("loading skill taxonomy: %w", err)
	}
	graph := knowledge.NewGraph()
	clf := classifier.New(opts.TrainingPath, opts.ModelPath)

	resumeText, _, err := ingestion.IngestFromFile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("ingesting resume: %w", err)
	}

	var jobText string
	var jobSource string
	if opts.JobURL != "" {
		jobSource = opts.JobURL
		jobText, _, err = ingestion.IngestFromURL(ctx, opts.JobURL, opts.UseBrowser, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("ingesting job posting from URL: %w", err)
		}
	} else {
		jobSource = opts.JobPath
		jobText, _, err = ingestion.IngestFromFile(opts.JobPath)
		if err != nil {
			return nil, fmt.Errorf("ingesting job posting: %w", err)
		}
	}

	var database *db.DB
	var analysisID uuid.UUID
	if opts.DatabaseURL != "" {
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn("database unavailable, continuing without persistence", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
			analysisID, err = database.CreateAnalysis(ctx, opts.ResumePath, jobSource)
			if err != nil {
				log.Warn("failed to record analysis run", zap.Error(err))
				analysisID = uuid.Nil
			}
		}
	}

	analyzer := NewAnalyzer(extractor, graph, clf, log)
	report, err := analyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		if database != nil && analysisID != uuid.Nil {
			if failErr := database.FailAnalysis(ctx, analysisID, err.Error()); failErr != nil {
				log.Warn("failed to mark analysis as failed", zap.Error(failErr))
			}
		}
		return nil, err
	}

	if database != nil && analysisID != uuid.Nil {
		report.RunID = analysisID.String()
		if err := database.CompleteAnalysis(ctx, analysisID, report); err != nil {
			log.Warn("failed to persist report", zap.Error(err))
		}
	}

	if opts.OutDir != "" {
		if err := writeReport(opts.OutDir, report); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
	}

	if opts.Verbose {
		observability.NewPrinter(os.Stdout).PrintReport(report)
	}

	return report, nil
}

// writeReport writes the report as indented JSON under outDir, named by run id
func writeReport(outDir string, report *types.AnalysisReport) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, report.RunID+".report.json")
	return os.WriteFile(path, data, 0o644)
}
