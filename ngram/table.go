// Package ngram builds character n-gram frequency tables and scores letters
// by interpolating over orders 1..n with weight cascading.
package ngram

import (
	"errors"
	"fmt"
	"slices"

	"hangman/game"
)

// MaxOrder is the highest n-gram order supported.
const MaxOrder = 5

var ErrInvalidOrder = errors.New("n-gram order out of range")

// Table maps a context of order-1 symbols to next-symbol counts. A Table is
// read-only once built and may be shared between goroutines.
type Table struct {
	order  int
	counts map[string]map[rune]int
	totals map[string]int
}

// Entry is a next-symbol count.
type Entry struct {
	Symbol rune
	Count  int
}

// Build counts every window of length order over the sentinel-padded
// training words. No smoothing is applied.
func Build(words []string, order int) (*Table, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	t := &Table{
		order:  order,
		counts: make(map[string]map[rune]int),
		totals: make(map[string]int),
	}
	if order == 1 {
		t.counts[""] = make(map[rune]int)
	}

	for _, w := range words {
		if err := game.ValidateWord(w); err != nil {
			return nil, err
		}
		seq := pad(w, order-1)
		for i := 0; i+order <= len(seq); i++ {
			t.add(string(seq[i:i+order-1]), seq[i+order-1])
		}
	}
	return t, nil
}

func (t *Table) add(key string, next rune) {
	nextCounts, ok := t.counts[key]
	if !ok {
		nextCounts = make(map[rune]int)
		t.counts[key] = nextCounts
	}
	nextCounts[next]++
	t.totals[key]++
}

func (t *Table) Order() int { return t.order }

// Count returns how often next followed ctx in training, 0 when either was
// never seen.
func (t *Table) Count(ctx []rune, next rune) int {
	nc, ok := t.counts[string(ctx)]
	if !ok {
		return 0
	}
	return nc[next]
}

// Total returns the number of observations of ctx, 0 when it was never seen.
func (t *Table) Total(ctx []rune) int {
	return t.totals[string(ctx)]
}

// Contexts returns the number of distinct contexts in the table.
func (t *Table) Contexts() int {
	return len(t.counts)
}

// Top returns up to k next symbols for ctx, most frequent first, ties in
// symbol order.
func (t *Table) Top(ctx []rune, k int) []Entry {
	nc := t.counts[string(ctx)]
	entries := make([]Entry, 0, len(nc))
	for r, c := range nc {
		entries = append(entries, Entry{Symbol: r, Count: c})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return int(a.Symbol - b.Symbol)
	})
	if k >= 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}
