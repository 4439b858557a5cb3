package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stresslens/stresslens/internal/modelstore"
	"github.com/stresslens/stresslens/pkg/classifier"
	"github.com/stresslens/stresslens/pkg/config"
)

func newTrainCmd() *cobra.Command {
	var (
		configPath string
		samples    int
		seed       int64
		trees      int
		maxDepth   int
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the stress classifier and store its artifact",
		Long: `Generates synthetic labeled training data, fits the random forest, and
writes the artifact to the configured model store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			opts := classifier.DefaultTrainOptions()
			opts.Seed = seed
			if trees > 0 {
				opts.Trees = trees
			}
			if maxDepth > 0 {
				opts.MaxDepth = maxDepth
			}

			all := classifier.GenerateSamples(samples, seed)
			split := len(all) * 4 / 5
			train, test := all[:split], all[split:]

			fmt.Fprintf(os.Stderr, "Training on %d samples (%d held out)...\n", len(train), len(test))
			forest, err := classifier.Train(train, opts)
			if err != nil {
				return fmt.Errorf("training: %w", err)
			}

			correct := 0
			for _, s := range test {
				probs := forest.PredictProba(s.Features)
				best := 0
				for i := range probs {
					if probs[i] > probs[best] {
						best = i
					}
				}
				if forest.Classes[best] == s.Label {
					correct++
				}
			}
			if len(test) > 0 {
				fmt.Fprintf(os.Stderr, "Holdout accuracy: %.1f%%\n", float64(correct)/float64(len(test))*100)
			}

			data, err := forest.Marshal()
			if err != nil {
				return fmt.Errorf("serialize artifact: %w", err)
			}

			store, err := modelstore.FromConfig(cmd.Context(), cfg.Model)
			if err != nil {
				return err
			}
			if err := store.PutModel(cmd.Context(), data); err != nil {
				return fmt.Errorf("store artifact: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Model stored (%d trees, backend %s)\n", len(forest.Trees), cfg.Model.Backend)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stresslens.yaml", "Path to config file")
	cmd.Flags().IntVar(&samples, "samples", 1000, "Number of synthetic training samples")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Training RNG seed")
	cmd.Flags().IntVar(&trees, "trees", 0, "Number of trees (default from training profile)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum tree depth (default from training profile)")

	return cmd
}
