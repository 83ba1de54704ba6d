// Package main provides the candidate fit analysis CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_agent",
	Short: "Candidate Fit Intelligence Engine",
	Long:  "Candidate Fit scores resumes against job postings: skill matching, gap difficulty, learning paths, depth analysis, and retention forecasts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
