package metrics

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"hangman/game"
)

// StrategyConfig describes one evaluated strategy.
type StrategyConfig struct {
	Name    string
	Kind    string
	Order   int       // n-gram strategies only
	Lambdas []float64 // indexed by order, n-gram strategies only
	Seed    uint64    // random strategy only
}

// GameRecord is one played game.
type GameRecord struct {
	Strategy string
	Index    int // position of the word in the evaluated list
	Word     string
	Status   game.Status
	Mistakes int
	Turns    int
	Guesses  string
	Duration time.Duration
}

type Collector interface {
	AddGame(strategy string, index int, result game.Result)
	Records() []GameRecord
}

type collector struct {
	mu      sync.Mutex
	records []GameRecord
}

// NewCollector returns a Collector that may be fed from many goroutines.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddGame(strategy string, index int, result game.Result) {
	record := GameRecord{
		Strategy: strategy,
		Index:    index,
		Word:     result.Word,
		Status:   result.Status,
		Mistakes: result.Mistakes,
		Turns:    result.Turns,
		Guesses:  string(result.Guesses),
		Duration: result.Duration,
	}
	c.mu.Lock()
	c.records = append(c.records, record)
	c.mu.Unlock()
}

// Records returns the games ordered by strategy name, then word position.
func (c *collector) Records() []GameRecord {
	c.mu.Lock()
	records := slices.Clone(c.records)
	c.mu.Unlock()

	slices.SortFunc(records, func(a, b GameRecord) int {
		if n := cmp.Compare(a.Strategy, b.Strategy); n != 0 {
			return n
		}
		return cmp.Compare(a.Index, b.Index)
	})
	return records
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddGame(strategy string, index int, result game.Result) {}
func (c *dummyCollector) Records() []GameRecord                                 { return nil }
