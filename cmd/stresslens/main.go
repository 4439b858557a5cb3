// Package main provides the stresslens CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "stresslens",
		Short: "Workplace stress and phishing-risk assessment",
		Long: `StressLens classifies workplace stress from workload metrics, derives
burnout and phishing-vulnerability scores, and contextualizes results
against a historical case corpus.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newTrainCmd(),
		newAssessCmd(),
		newDatasetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
