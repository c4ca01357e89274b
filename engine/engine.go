// Package engine plays hangman games to completion.
package engine

import (
	"context"

	"hangman/agent"
	"hangman/game"
)

// Play runs a single game of word against strategy. The word is validated
// before the first turn.
func Play(ctx context.Context, word string, strategy agent.Strategy, maxMistakes int, verbose bool) (game.Result, error) {
	e, err := LocalEngine(word, strategy, maxMistakes)
	if err != nil {
		return game.Result{}, err
	}
	e.Verbose = verbose
	return e.Run(ctx)
}
