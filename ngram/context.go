package ngram

import (
	"slices"

	"hangman/game"
)

// LeftContext returns the known symbols immediately left of position i,
// most recent last, for a model of the given order. The walk stops at another
// blank or after order-1 symbols. When it runs into the start of the word the
// context is filled up with start sentinels, so a blank right after another
// blank gets an empty context while the first position gets only sentinels.
func LeftContext(mask game.Mask, i, order int) []rune {
	width := order - 1
	ctx := make([]rune, 0, width)
	j := i - 1
	for j >= 0 && len(ctx) < width && mask[j] != game.Blank {
		ctx = append(ctx, mask[j])
		j--
	}
	if j < 0 {
		for d := 1; len(ctx) < width; d++ {
			ctx = append(ctx, StartSentinel(d))
		}
	}
	slices.Reverse(ctx)
	return ctx
}
