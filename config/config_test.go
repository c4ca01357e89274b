package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 5, cfg.Order)
	require.Equal(t, []float64{0.01, 0.04, 0.10, 0.20, 0.25, 0.40}, cfg.Lambdas)
	require.Equal(t, 26, cfg.MaxMistakes)

	w := cfg.Weights()
	require.Len(t, w, 6)
	require.Equal(t, 0.40, w[5])
	require.InDelta(t, 1, w.Sum(), 1e-9)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"order zero", func(c *Config) { c.Order = 0 }},
		{"order above five", func(c *Config) { c.Order = 6; c.Lambdas = append(c.Lambdas, 0) }},
		{"lambda count mismatch", func(c *Config) { c.Order = 3 }},
		{"lambdas not summing to one", func(c *Config) { c.Lambdas[5] = 0.5 }},
		{"negative lambda", func(c *Config) { c.Lambdas[0] = -0.01; c.Lambdas[1] = 0.06 }},
		{"mistake cap below alphabet", func(c *Config) { c.MaxMistakes = 25 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"test fraction of one", func(c *Config) { c.TestFraction = 1 }},
		{"unknown strategy", func(c *Config) { c.Strategies = []string{"ngram", "oracle"} }},
		{"no strategies", func(c *Config) { c.Strategies = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	t.Run("zero zerogram weight is rejected for the ngram strategy", func(t *testing.T) {
		cfg := Default()
		cfg.Order = 1
		cfg.Lambdas = []float64{0, 1}
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Contains(t, err.Error(), "zerogram")
	})

	t.Run("zero zerogram weight is accepted without the ngram strategy", func(t *testing.T) {
		cfg := Default()
		cfg.Order = 1
		cfg.Lambdas = []float64{0, 1}
		cfg.Strategies = []string{StrategyUnigram, StrategyRandom}
		require.NoError(t, cfg.Validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("returns the defaults without file or environment", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("reads a yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hangman.yaml")
		content := "order: 2\nlambdas: [0.1, 0.3, 0.6]\nworkers: 3\nstrategies: [ngram, random]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Order)
		require.Equal(t, []float64{0.1, 0.3, 0.6}, cfg.Lambdas)
		require.Equal(t, 3, cfg.Workers)
		require.Equal(t, []string{"ngram", "random"}, cfg.Strategies)
		require.Equal(t, 26, cfg.MaxMistakes)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hangman.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workers: 3\n"), 0o644))
		t.Setenv("HANGMAN_WORKERS", "5")
		t.Setenv("HANGMAN_ORDER", "1")
		t.Setenv("HANGMAN_LAMBDAS", "0.2,0.8")
		t.Setenv("HANGMAN_SEED", "7")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 5, cfg.Workers)
		require.Equal(t, 1, cfg.Order)
		require.Equal(t, []float64{0.2, 0.8}, cfg.Lambdas)
		require.Equal(t, uint64(7), cfg.Seed)
	})

	t.Run("rejects an invalid result", func(t *testing.T) {
		t.Setenv("HANGMAN_MAX_MISTAKES", "3")
		_, err := Load("")
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
