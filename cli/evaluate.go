package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hangman/corpus"
	"hangman/experiments"
)

func newEvaluateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Train on a corpus split and compare strategies on the held-out words",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadWords(cfg)
			if err != nil {
				return err
			}
			train, test, err := corpus.Split(words, cfg.TestFraction, cfg.Seed)
			if err != nil {
				return err
			}
			log.Info().Msgf("split %d words into %d train and %d test words", len(words), len(train), len(test))

			entries, err := newEntries(cfg, train)
			if err != nil {
				return err
			}

			setup := experiments.Setup{
				Name:        name,
				OutputDir:   cfg.OutputDir,
				TrainWords:  len(train),
				MaxMistakes: cfg.MaxMistakes,
				Workers:     cfg.Workers,
			}
			reports, dir, err := experiments.Run(cmd.Context(), setup, entries, test)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s %6s %6s %10s\n", "strategy", "won", "games", "mistakes")
			for _, r := range reports {
				fmt.Fprintf(out, "%-16s %6d %6d %10.3f\n", r.Strategy, r.Won, r.Games, r.AverageMistakes)
			}
			fmt.Fprintf(out, "results stored in %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "evaluation", "Experiment name used for the output directory")

	return cmd
}
