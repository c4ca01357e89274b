package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hangman/agent"
	"hangman/game"
)

// Engine drives one game between a secret word and a strategy.
type Engine struct {
	Game     *game.Game
	Strategy agent.Strategy
	Verbose  bool
}

func LocalEngine(word string, strategy agent.Strategy, maxMistakes int) (*Engine, error) {
	if strategy == nil {
		return nil, fmt.Errorf("engine needs a strategy")
	}
	g, err := game.New(word, maxMistakes)
	if err != nil {
		return nil, err
	}
	return &Engine{Game: g, Strategy: strategy}, nil
}

// Run asks the strategy for a letter each turn until the game is won or lost.
// A strategy error or an invalid guess ends the game abnormally: the partial
// result is returned together with the error.
func (e *Engine) Run(ctx context.Context) (game.Result, error) {
	start := time.Now()
	result := func() game.Result {
		r := e.Game.Result()
		r.Duration = time.Since(start)
		return r
	}

	name := agent.Name(e.Strategy)
	if e.Verbose {
		log.Debug().Str("strategy", name).Int("length", len(e.Game.Word())).Msgf("game started with %d mistakes allowed", e.Game.MaxMistakes())
	}

	for e.Game.Status() == game.InProgress {
		if err := ctx.Err(); err != nil {
			return result(), err
		}

		turn := e.Game.Turns() + 1
		letter, err := e.Strategy.Guess(e.Game.Mask(), e.Game.Guessed())
		if err != nil {
			return result(), fmt.Errorf("strategy %s failed on turn %d: %w", name, turn, err)
		}

		hit, err := e.Game.Guess(letter)
		if err != nil {
			return result(), fmt.Errorf("turn %d: %w", turn, err)
		}

		if e.Verbose {
			log.Debug().
				Int("turn", turn).
				Str("guess", string(letter)).
				Bool("hit", hit).
				Str("mask", e.Game.Mask().String()).
				Int("mistakes", e.Game.Mistakes()).
				Msg("turn played")
		}
	}

	r := result()
	if e.Verbose {
		log.Debug().Str("word", r.Word).Str("status", r.Status.String()).Msgf("game over after %d turns with %d mistakes", r.Turns, r.Mistakes)
	}
	return r, nil
}
