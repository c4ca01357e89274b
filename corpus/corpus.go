// Package corpus supplies the word lists the model is trained and evaluated on.
package corpus

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"hangman/game"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

//go:embed resources/words.txt
var defaultWords string

var ErrInvalidSplit = errors.New("test fraction leaves an empty train or test set")

// Load reads one word per line. Entries are trimmed and lowercased, blank lines
// are dropped, duplicates keep their first position. Non-alphabetic entries are
// logged and skipped.
func Load(r io.Reader) ([]string, error) {
	return load(r, false)
}

// LoadStrict is Load but fails on the first non-alphabetic entry.
func LoadStrict(r io.Reader) ([]string, error) {
	return load(r, true)
}

func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()
	words, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", path, err)
	}
	return words, nil
}

// Default returns the embedded word list.
func Default() []string {
	words, err := Load(strings.NewReader(defaultWords))
	if err != nil {
		panic(err)
	}
	return words
}

func load(r io.Reader, strict bool) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]struct{})
	var words []string
	line := 0
	for scanner.Scan() {
		line++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if err := game.ValidateWord(word); err != nil {
			if strict {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			log.Warn().Msgf("skipping corpus line %d: %v", line, err)
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Split drops repeated words, shuffles the rest with seed and cuts them into
// disjoint train and test sets, the test set holding round(n*testFraction) of
// the n distinct words.
func Split(words []string, testFraction float64, seed uint64) (train, test []string, err error) {
	shuffled := distinct(words)
	cut := int(math.Round(float64(len(shuffled)) * testFraction))
	if cut <= 0 || cut >= len(shuffled) {
		return nil, nil, fmt.Errorf("%w: %d distinct words, fraction %.3f", ErrInvalidSplit, len(shuffled), testFraction)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[cut:], shuffled[:cut], nil
}

// distinct returns a new slice holding the first occurrence of every word.
func distinct(words []string) []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen.Add(w) {
			out = append(out, w)
		}
	}
	return out
}
