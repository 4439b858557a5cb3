package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	internaldataset "github.com/stresslens/stresslens/internal/dataset"
	"github.com/stresslens/stresslens/internal/modelstore"
	"github.com/stresslens/stresslens/internal/pipeline"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/config"
	"github.com/stresslens/stresslens/pkg/metrics"
	"github.com/stresslens/stresslens/pkg/report"
)

func newAssessCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		name       string
		outputFmt  string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run one assessment through the full pipeline",
		Long: `Reads a JSON object with the eight workload metrics, runs stress
classification, burnout and phishing scoring, case similarity search,
and narrative rendering, then prints the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			rec, err := readMetrics(inputPath)
			if err != nil {
				return err
			}

			store, err := modelstore.FromConfig(cmd.Context(), cfg.Model)
			if err != nil {
				return err
			}
			artifact, err := store.GetModel(cmd.Context())
			if err != nil {
				return fmt.Errorf("%w: %v (run `stresslens train` first)", classifier.ErrModelUnavailable, err)
			}
			clf, err := classifier.Load(artifact)
			if err != nil {
				return err
			}

			corpus, err := internaldataset.Load(cmd.Context(), cfg.Dataset)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}

			svc := pipeline.NewService(clf, corpus, nil, cfg.Similar.TopN, nil)
			result, err := svc.Assess(cmd.Context(), name, rec)
			if err != nil {
				return err
			}

			rep := &report.Report{
				AssessmentID: result.AssessmentID,
				EmployeeName: result.EmployeeName,
				Stress:       result.Stress,
				Burnout:      result.Burnout,
				Phishing:     result.Phishing,
				SimilarCases: result.SimilarCases,
				Explanation:  result.Explanation,
				Inputs:       result.Inputs,
			}

			var renderer report.Renderer = &report.TerminalRenderer{}
			if outputFmt == "json" {
				renderer = &report.JSONRenderer{}
			}
			return renderer.Render(os.Stdout, rep)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stresslens.yaml", "Path to config file")
	cmd.Flags().StringVar(&inputPath, "input", "-", "JSON metrics file, or - for stdin")
	cmd.Flags().StringVar(&name, "name", "Employee", "Employee display name")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

// readMetrics parses a JSON metrics object, enforcing presence and
// numeric types for all eight fields.
func readMetrics(path string) (metrics.Record, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return metrics.Record{}, fmt.Errorf("read metrics: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return metrics.Record{}, fmt.Errorf("%w: %v", metrics.ErrInvalidMetrics, err)
	}
	return metrics.FromMap(fields)
}
