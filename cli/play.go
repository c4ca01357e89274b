package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hangman/agent"
	"hangman/config"
	"hangman/engine"
	"hangman/meta"
)

func newPlayCmd() *cobra.Command {
	var (
		word        string
		strategy    string
		guesses     []string
		maxMistakes int
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game against a secret word",
		Example: `  hangman play --word cat
  hangman play --word cat --strategy unigram
  hangman play --word cat --guesses c,a,t`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose && zerolog.GlobalLevel() > zerolog.DebugLevel {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			var s agent.Strategy
			if len(guesses) > 0 {
				script := make([]rune, len(guesses))
				for i, g := range guesses {
					r, err := agent.ParseGuess(strings.ToLower(strings.TrimSpace(g)))
					if err != nil {
						return err
					}
					script[i] = r
				}
				s = agent.NewScripted(script...)
			} else {
				words, err := loadWords(cfg)
				if err != nil {
					return err
				}
				entry, err := newEntry(cfg, strategy, words)
				if err != nil {
					return err
				}
				s = entry.Strategy
			}

			result, err := engine.Play(cmd.Context(), strings.ToLower(word), s, maxMistakes, verbose)
			if err != nil {
				return err
			}
			log.Info().Msgf("%s %s the game with %d mistakes in %d turns", agent.Name(s), result.Status, result.Mistakes, result.Turns)

			fmt.Fprintf(cmd.OutOrStdout(), "word:     %s\nstatus:   %s\nmistakes: %d/%d\nguesses:  %s\n",
				result.Word, result.Status, result.Mistakes, result.MaxMistakes, string(result.Guesses))
			return nil
		},
	}

	cmd.Flags().StringVarP(&word, "word", "w", "", "Secret word")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", config.StrategyNGram, "Strategy: ngram, unigram, length, random")
	cmd.Flags().StringSliceVarP(&guesses, "guesses", "g", nil, "Scripted guesses, comma separated (overrides --strategy)")
	cmd.Flags().IntVar(&maxMistakes, "max-mistakes", meta.PLAY_MAX_MISTAKES, "Mistakes allowed before the game is lost")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every turn at debug level")
	_ = cmd.MarkFlagRequired("word")

	return cmd
}
