// Package config holds the single configuration structure of the simulator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"hangman/game"
	"hangman/meta"
	"hangman/ngram"
	"hangman/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Strategy names accepted in Config.Strategies.
const (
	StrategyNGram         = "ngram"
	StrategyUnigram       = "unigram"
	StrategyLengthUnigram = "length"
	StrategyRandom        = "random"
)

var KnownStrategies = []string{StrategyNGram, StrategyUnigram, StrategyLengthUnigram, StrategyRandom}

type Config struct {
	// Order is the highest n-gram order, 1..5.
	Order int `mapstructure:"order" yaml:"order"`
	// Lambdas are the interpolation weights indexed by order 0..Order.
	Lambdas      []float64 `mapstructure:"lambdas" yaml:"lambdas"`
	MaxMistakes  int       `mapstructure:"max_mistakes" yaml:"max_mistakes"`
	Workers      int       `mapstructure:"workers" yaml:"workers"`
	TestFraction float64   `mapstructure:"test_fraction" yaml:"test_fraction"`
	Seed         uint64    `mapstructure:"seed" yaml:"seed"`
	// CorpusPath selects a word file. Empty means the embedded list.
	CorpusPath string   `mapstructure:"corpus_path" yaml:"corpus_path"`
	OutputDir  string   `mapstructure:"output_dir" yaml:"output_dir"`
	LogLevel   string   `mapstructure:"log_level" yaml:"log_level"`
	Strategies []string `mapstructure:"strategies" yaml:"strategies"`
}

func Default() Config {
	return Config{
		Order:        meta.DEFAULT_ORDER,
		Lambdas:      slices.Clone(meta.DEFAULT_LAMBDAS),
		MaxMistakes:  meta.MAX_MISTAKES,
		Workers:      meta.GO_ROUTINES,
		TestFraction: meta.TEST_FRACTION,
		Seed:         meta.SEED,
		OutputDir:    meta.OUTPUT_DIR,
		LogLevel:     meta.LOG_LEVEL,
		Strategies:   slices.Clone(KnownStrategies),
	}
}

// Load layers the defaults, the YAML file at path (if any), a .env file in the
// working directory and HANGMAN_* environment variables, then validates.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	defaults := Default()
	v.SetDefault("order", defaults.Order)
	v.SetDefault("lambdas", defaults.Lambdas)
	v.SetDefault("max_mistakes", defaults.MaxMistakes)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("test_fraction", defaults.TestFraction)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("corpus_path", defaults.CorpusPath)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("strategies", defaults.Strategies)

	v.SetEnvPrefix("HANGMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Order < 1 || c.Order > ngram.MaxOrder {
		return fmt.Errorf("%w: order %d outside 1..%d", ErrInvalidConfig, c.Order, ngram.MaxOrder)
	}
	if len(c.Lambdas) != c.Order+1 {
		return fmt.Errorf("%w: %d lambdas for order %d, want %d", ErrInvalidConfig, len(c.Lambdas), c.Order, c.Order+1)
	}
	if err := c.Weights().Validate(c.Order); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxMistakes < game.AlphabetSize {
		return fmt.Errorf("%w: max mistakes %d below alphabet size %d", ErrInvalidConfig, c.MaxMistakes, game.AlphabetSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.TestFraction <= 0 || c.TestFraction >= 1 {
		return fmt.Errorf("%w: test fraction %.3f outside (0, 1)", ErrInvalidConfig, c.TestFraction)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: no strategies", ErrInvalidConfig)
	}
	for _, s := range c.Strategies {
		if utils.FindIndex(KnownStrategies, s) < 0 {
			return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
		}
	}
	if c.Lambdas[0] == 0 {
		if utils.FindIndex(c.Strategies, StrategyNGram) >= 0 {
			return fmt.Errorf("%w: zerogram weight is 0, unseen letters would have zero probability", ErrInvalidConfig)
		}
		log.Warn().Msg("zerogram weight is 0, the ngram strategy would be degenerate")
	}
	return nil
}

// Weights converts Lambdas into interpolation weights.
func (c Config) Weights() ngram.Weights {
	w := make(ngram.Weights, len(c.Lambdas))
	for k, l := range c.Lambdas {
		w[k] = l
	}
	return w
}
