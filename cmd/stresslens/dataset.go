package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	internaldataset "github.com/stresslens/stresslens/internal/dataset"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/config"
	"github.com/stresslens/stresslens/pkg/dataset"
)

func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Manage the historical case corpus",
	}
	cmd.AddCommand(newDatasetGenerateCmd(), newDatasetInfoCmd())
	return cmd
}

func newDatasetGenerateCmd() *cobra.Command {
	var (
		count int
		seed  int64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic historical case corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := dataset.Generate(count, seed)

			switch filepath.Ext(out) {
			case ".csv":
				if err := internaldataset.SaveCSV(out, cases); err != nil {
					return err
				}
			case ".json":
				if err := internaldataset.SaveJSON(out, cases); err != nil {
					return err
				}
			case ".db", ".sqlite", ".sqlite3":
				db, err := internaldataset.OpenSQLite(out)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := internaldataset.InsertCases(cmd.Context(), db, cases); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format %q", out)
			}

			stats := dataset.ComputeStats(cases)
			fmt.Fprintf(os.Stderr, "Generated %d cases -> %s\n", stats.TotalCases, out)
			fmt.Fprintf(os.Stderr, "Avg burnout: %.1f/100, high risk (>70): %d\n", stats.AvgBurnout, stats.HighRiskCount)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 100, "Number of cases to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Generation RNG seed")
	cmd.Flags().StringVar(&out, "out", "data/employee_dataset.csv", "Output file (.csv, .json, .db)")

	return cmd
}

func newDatasetInfoCmd() *cobra.Command {
	var (
		configPath string
		source     string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize the configured corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if source != "" {
				cfg.Dataset.Source = source
			}

			cases, err := internaldataset.Load(cmd.Context(), cfg.Dataset)
			if err != nil {
				return err
			}

			stats := dataset.ComputeStats(cases)
			fmt.Printf("Cases: %d\n", stats.TotalCases)
			fmt.Printf("Avg burnout: %.1f/100\n", stats.AvgBurnout)
			fmt.Printf("High risk (>70): %d\n", stats.HighRiskCount)
			for _, cat := range classifier.Categories {
				if n := stats.StressCounts[cat]; n > 0 {
					fmt.Printf("  %s: %d\n", cat, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stresslens.yaml", "Path to config file")
	cmd.Flags().StringVar(&source, "source", "", "Override the configured dataset source")

	return cmd
}
