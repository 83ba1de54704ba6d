package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-fit/internal/classifier"
	"github.com/jonathan/candidate-fit/internal/config"
	"github.com/jonathan/candidate-fit/internal/observability"
)

var trainCommand = &cobra.Command{
	Use:   "train",
	Short: "Train the skill gap difficulty classifier",
	Long:  `Trains the random forest difficulty classifier from the skill relationships CSV and persists the model for later analysis runs.`,
	RunE:  runTrainCmd,
}

var (
	trainDataPath  string
	trainModelPath string
)

func init() {
	trainCommand.Flags().StringVar(&trainDataPath, "training-data", config.DefaultTrainingPath, "Path to classifier training CSV")
	trainCommand.Flags().StringVar(&trainModelPath, "model", config.DefaultModelPath, "Path to write the trained model to")

	rootCmd.AddCommand(trainCommand)
}

func runTrainCmd(_ *cobra.Command, _ []string) error {
	clf := classifier.New(trainDataPath, trainModelPath)

	report, err := clf.Train()
	if err != nil {
		return fmt.Errorf("training classifier: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintTrainReport(report)
	return nil
}
