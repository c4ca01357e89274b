// Package experiments evaluates guessing strategies over a word list.
package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hangman/agent"
	"hangman/engine"
	"hangman/experiments/metrics"
	"hangman/game"
	"hangman/utils"
)

var ErrEmptyDataset = errors.New("no words to evaluate")

type Option func(e *evaluator)

type evaluator struct {
	name        string
	workers     int
	maxMistakes int
	verbose     bool
	collector   metrics.Collector
}

// WithName overrides the strategy name used in reports and records.
func WithName(name string) Option {
	return func(e *evaluator) {
		if name != "" {
			e.name = name
		}
	}
}

// WithWorkers plays up to n games concurrently.
func WithWorkers(n int) Option {
	return func(e *evaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithMaxMistakes raises the mistake cap. Caps below the alphabet size are
// ignored so every game can end naturally.
func WithMaxMistakes(n int) Option {
	return func(e *evaluator) {
		if n >= game.AlphabetSize {
			e.maxMistakes = n
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *evaluator) {
		if c != nil {
			e.collector = c
		}
	}
}

// WithVerbose logs every turn at debug level.
func WithVerbose() Option {
	return func(e *evaluator) {
		e.verbose = true
	}
}

// Report is the outcome of one strategy over a word list.
type Report struct {
	RunID           uuid.UUID
	Strategy        string
	Games           int
	Won             int
	Lost            int
	TotalMistakes   int
	AverageMistakes float64
	Duration        time.Duration
	// Records holds one result per evaluated word, in word order.
	Records         []game.Result
}

func (r Report) Summary() metrics.StrategySummary {
	return metrics.StrategySummary{
		Strategy:        r.Strategy,
		Games:           r.Games,
		Won:             r.Won,
		Lost:            r.Lost,
		TotalMistakes:   r.TotalMistakes,
		AverageMistakes: r.AverageMistakes,
		Duration:        r.Duration.String(),
	}
}

// Evaluate plays every word once with strategy and reports the mean number
// of mistakes. Games share nothing but the strategy, so they run on up to
// WithWorkers goroutines; the first failing game cancels the rest.
func Evaluate(ctx context.Context, strategy agent.Strategy, words []string, options ...Option) (Report, error) {
	e := &evaluator{
		name:        agent.Name(strategy),
		workers:     1,
		maxMistakes: game.AlphabetSize,
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if len(words) == 0 {
		return Report{}, ErrEmptyDataset
	}
	for _, w := range words {
		if err := game.ValidateWord(w); err != nil {
			return Report{}, err
		}
	}

	start := time.Now()
	results := make([]game.Result, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, word := range words {
		g.Go(func() error {
			res, err := engine.Play(gctx, word, strategy, e.maxMistakes, e.verbose)
			if err != nil {
				return fmt.Errorf("game %d (%q): %w", i, word, err)
			}
			results[i] = res
			e.collector.AddGame(e.name, i, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:    uuid.New(),
		Strategy: e.name,
		Games:    len(results),
		Duration: time.Since(start),
		Records:  results,
	}
	mistakes := make([]int, len(results))
	for i, res := range results {
		mistakes[i] = res.Mistakes
		report.TotalMistakes += res.Mistakes
		if res.Status == game.Won {
			report.Won++
		} else {
			report.Lost++
		}
	}
	report.AverageMistakes = utils.Mean(mistakes)

	log.Debug().Msgf("evaluated %s on %d words: %.3f mistakes on average", e.name, report.Games, report.AverageMistakes)
	return report, nil
}
