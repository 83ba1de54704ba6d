package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-fit/internal/config"
	"github.com/jonathan/candidate-fit/internal/extraction"
	"github.com/jonathan/candidate-fit/internal/ingestion"
	"github.com/jonathan/candidate-fit/internal/knowledge"
	"github.com/jonathan/candidate-fit/internal/observability"
)

var readinessCommand = &cobra.Command{
	Use:   "readiness [target skills...]",
	Short: "Score how ready a candidate is to learn specific skills",
	Long:  `Extracts the candidate's current skills from a resume and scores readiness for each target skill using the knowledge graph, including a suggested learning path.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runReadinessCmd,
}

var (
	readinessResume   string
	readinessTaxonomy string
)

func init() {
	readinessCommand.Flags().StringVarP(&readinessResume, "resume", "r", "", "Path to resume text file (required)")
	readinessCommand.Flags().StringVar(&readinessTaxonomy, "taxonomy", config.DefaultTaxonomyPath, "Path to skill taxonomy JSON")

	_ = readinessCommand.MarkFlagRequired("resume")
	rootCmd.AddCommand(readinessCommand)
}

func runReadinessCmd(_ *cobra.Command, targets []string) error {
	text, _, err := ingestion.IngestFromFile(readinessResume)
	if err != nil {
		return fmt.Errorf("ingesting resume: %w", err)
	}

	extractor, err := extraction.NewExtractor(readinessTaxonomy)
	if err != nil {
		return fmt.Errorf("loading skill taxonomy: %w", err)
	}
	known := extractor.ExtractSkills(text).Names()
	if len(known) == 0 {
		fmt.Fprintln(os.Stdout, "No known skills detected in resume; readiness uses graph defaults.")
	}

	graph := knowledge.NewGraph()
	printer := observability.NewPrinter(os.Stdout)

	for _, target := range targets {
		result := graph.CalculateReadiness(known, target)
		fmt.Fprintf(os.Stdout, "%s: %.1f/100 (%s, ~%d weeks)\n",
			target, result.ReadinessScore, result.ReadinessLevel, result.EstimatedWeeks)

		printer.PrintLearningPath(target, graph.FindLearningPath(known, target))
	}

	return nil
}
