package pipeline

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-fit/internal/types"
)

// DefaultBatchConcurrency bounds the fan-out when the caller does not pick one
const DefaultBatchConcurrency = 4

// BatchItem is one resume in a batch run, identified by a caller-chosen id
// (typically the file name).
type BatchItem struct {
	ID         string
	ResumeText string
}

// BatchResult pairs a resume id with its completed report
type BatchResult struct {
	ID     string                `json:"id"`
	Report *types.AnalysisReport `json:"report"`
}

// AnalyzeBatch runs many resumes against one job posting. The job-side
// extraction happens once and is shared read-only across workers. Results
// are sorted by resume id so output does not depend on scheduling; the first
// failing resume aborts the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, resumes []BatchItem, jobText string, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	job := a.prepareJob(jobText)
	a.log.Info("starting batch analysis",
		zap.Int("resumes", len(resumes)),
		zap.Int("concurrency", concurrency))

	results := make([]BatchResult, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, item := range resumes {
		g.Go(func() error {
			report, err := a.analyzeAgainst(gCtx, item.ResumeText, job)
			if err != nil {
				return fmt.Errorf("analyzing resume %q: %w", item.ID, err)
			}
			results[i] = BatchResult{ID: item.ID, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}
