package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hangman/agent"
	"hangman/experiments/metrics"
	"hangman/game"
)

// Entry is a strategy taking part in a comparison.
type Entry struct {
	Strategy agent.Strategy
	Config   metrics.StrategyConfig
}

func (e Entry) name() string {
	if e.Config.Name != "" {
		return e.Config.Name
	}
	return agent.Name(e.Strategy)
}

// Compare evaluates each entry on the same words, one strategy after the
// other, and returns the reports in entry order.
func Compare(ctx context.Context, entries []Entry, words []string, options ...Option) ([]Report, error) {
	reports := make([]Report, 0, len(entries))
	for i, entry := range entries {
		name := entry.name()
		log.Info().Msgf("starting evaluation %d of %d: %s on %d words...", i+1, len(entries), name, len(words))

		opts := append(options[:len(options):len(options)], WithName(name))
		report, err := Evaluate(ctx, entry.Strategy, words, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", name, err)
		}
		reports = append(reports, report)

		log.Info().Msgf("completed evaluation %d of %d: %s won %d/%d with %.3f mistakes on average",
			i+1, len(entries), name, report.Won, report.Games, report.AverageMistakes)
	}
	return reports, nil
}

// Setup describes an experiment run for the written summary.
type Setup struct {
	Name        string
	OutputDir   string
	TrainWords  int
	MaxMistakes int
	Workers     int
}

// Run compares the entries on the test words and stores strategy configs,
// per-game records and a summary under setup.OutputDir.
func Run(ctx context.Context, setup Setup, entries []Entry, test []string) ([]Report, string, error) {
	runID := uuid.New()
	started := time.Now().UTC()
	collector := metrics.NewCollector()
	maxMistakes := max(setup.MaxMistakes, game.AlphabetSize)

	log.Info().Msgf("starting %s experiment %s...", setup.Name, runID)

	reports, err := Compare(ctx, entries, test,
		WithWorkers(setup.Workers),
		WithMaxMistakes(maxMistakes),
		WithCollector(collector),
	)
	if err != nil {
		return nil, "", err
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	writer, err := metrics.NewWriter(setup.OutputDir, setup.Name, runID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	configs := make([]metrics.StrategyConfig, len(entries))
	for i, entry := range entries {
		configs[i] = entry.Config
		configs[i].Name = entry.name()
	}
	if err := writer.WriteStrategyConfigs(configs); err != nil {
		return nil, "", err
	}
	log.Info().Msg("stored strategy configs")

	if err := writer.WriteGameRecords(collector.Records()); err != nil {
		return nil, "", err
	}
	log.Info().Msg("stored game records")

	summary := metrics.Summary{
		RunID:       runID.String(),
		Experiment:  setup.Name,
		StartedAt:   started,
		TrainWords:  setup.TrainWords,
		TestWords:   len(test),
		MaxMistakes: maxMistakes,
	}
	for i := range reports {
		reports[i].RunID = runID
		summary.Strategies = append(summary.Strategies, reports[i].Summary())
	}
	if err := writer.WriteSummary(summary); err != nil {
		return nil, "", err
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())

	return reports, writer.Dir(), nil
}
