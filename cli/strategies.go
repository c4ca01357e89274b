package cli

import (
	"fmt"

	"hangman/agent"
	"hangman/config"
	"hangman/corpus"
	"hangman/experiments"
	"hangman/experiments/metrics"
	"hangman/ngram"
)

func loadWords(c config.Config) ([]string, error) {
	if c.CorpusPath == "" {
		return corpus.Default(), nil
	}
	return corpus.LoadFile(c.CorpusPath)
}

// newEntry builds the named strategy trained on words.
func newEntry(c config.Config, name string, words []string) (experiments.Entry, error) {
	switch name {
	case config.StrategyNGram:
		model, err := ngram.NewModel(words, c.Order)
		if err != nil {
			return experiments.Entry{}, err
		}
		ip, err := ngram.NewInterpolator(model, c.Order, c.Weights())
		if err != nil {
			return experiments.Entry{}, err
		}
		s := agent.NewNGram(ip)
		return experiments.Entry{
			Strategy: s,
			Config:   metrics.StrategyConfig{Name: s.String(), Kind: name, Order: c.Order, Lambdas: c.Lambdas},
		}, nil
	case config.StrategyUnigram:
		s, err := agent.NewUnigram(words)
		if err != nil {
			return experiments.Entry{}, err
		}
		return experiments.Entry{Strategy: s, Config: metrics.StrategyConfig{Name: s.String(), Kind: name}}, nil
	case config.StrategyLengthUnigram:
		s, err := agent.NewLengthUnigram(words)
		if err != nil {
			return experiments.Entry{}, err
		}
		return experiments.Entry{Strategy: s, Config: metrics.StrategyConfig{Name: s.String(), Kind: name}}, nil
	case config.StrategyRandom:
		s := agent.NewRandom(c.Seed)
		return experiments.Entry{Strategy: s, Config: metrics.StrategyConfig{Name: s.String(), Kind: name, Seed: c.Seed}}, nil
	}
	return experiments.Entry{}, fmt.Errorf("%w: unknown strategy %q", config.ErrInvalidConfig, name)
}

func newEntries(c config.Config, words []string) ([]experiments.Entry, error) {
	entries := make([]experiments.Entry, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		entry, err := newEntry(c, name, words)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s strategy: %w", name, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
