package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-fit/internal/config"
	"github.com/jonathan/candidate-fit/internal/logger"
	"github.com/jonathan/candidate-fit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running analyses, training the classifier, and browsing persisted results.`,
	RunE:  runServe,
}

var (
	servePort     int
	serveTaxonomy string
	serveTraining string
	serveModel    string
	serveJSONLogs bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveTaxonomy, "taxonomy", config.DefaultTaxonomyPath, "Path to skill taxonomy JSON")
	serveCmd.Flags().StringVar(&serveTraining, "training-data", config.DefaultTrainingPath, "Path to classifier training CSV")
	serveCmd.Flags().StringVar(&serveModel, "model", config.DefaultModelPath, "Path to persisted classifier model")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit logs as JSON instead of console format")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(serveJSONLogs, false)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := server.Config{
		Port:         servePort,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TaxonomyPath: serveTaxonomy,
		TrainingPath: serveTraining,
		ModelPath:    serveModel,
		Logger:       log,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
