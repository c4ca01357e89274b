package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"hangman/game"
	"hangman/meta"
	"hangman/ngram"
)

func newTableCmd() *cobra.Command {
	var (
		order    int
		context  string
		start    bool
		mask     string
		position int
		top      int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the most frequent next symbols for a context",
		Example: `  hangman table --order 3 --context ca
  hangman table --order 2 --start
  hangman table --order 3 --mask c_t --position 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if order < 1 || order > ngram.MaxOrder {
				return fmt.Errorf("%w: %d", ngram.ErrInvalidOrder, order)
			}
			words, err := loadWords(cfg)
			if err != nil {
				return err
			}
			model, err := ngram.NewModel(words, order)
			if err != nil {
				return err
			}

			ctx, err := tableContext(order, context, start, mask, position)
			if err != nil {
				return err
			}

			table := model.Table(order)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order %d, context %s, total %d\n", order, ngram.FormatContext(ctx), table.Total(ctx))
			for _, e := range table.Top(ctx, top) {
				fmt.Fprintf(out, "%-6s %d\n", ngram.FormatSymbol(e.Symbol), e.Count)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&order, "order", "n", 2, "N-gram order, 1..5")
	cmd.Flags().StringVar(&context, "context", "", "Preceding letters, the last order-1 are used")
	cmd.Flags().BoolVar(&start, "start", false, "The context begins at the start of the word")
	cmd.Flags().StringVar(&mask, "mask", "", "Masked word, e.g. c_t")
	cmd.Flags().IntVar(&position, "position", -1, "Blank position in --mask")
	cmd.Flags().IntVarP(&top, "top", "k", meta.TOP_K, "Number of symbols to show, negative for all")
	cmd.MarkFlagsMutuallyExclusive("context", "mask")
	cmd.MarkFlagsMutuallyExclusive("start", "mask")

	return cmd
}

// tableContext resolves the flags into the context of an order-n lookup.
func tableContext(order int, context string, start bool, mask string, position int) ([]rune, error) {
	if mask != "" {
		m, err := game.ParseMask(mask)
		if err != nil {
			return nil, err
		}
		if position < 0 || position >= len(m) {
			return nil, fmt.Errorf("position %d outside mask %q", position, mask)
		}
		return ngram.LeftContext(m, position, order), nil
	}

	if context != "" {
		if err := game.ValidateWord(context); err != nil {
			return nil, err
		}
	}
	letters := []rune(context)
	if len(letters) > order-1 {
		letters = letters[len(letters)-(order-1):]
		start = false
	}
	if !start {
		return letters, nil
	}
	ctx := make([]rune, 0, order-1)
	for d := order - 1 - len(letters); d >= 1; d-- {
		ctx = append(ctx, ngram.StartSentinel(d))
	}
	return slices.Concat(ctx, letters), nil
}
