package ngram

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Model holds the tables for orders 1..MaxOrder() built from one training set.
type Model struct {
	tables []*Table
	words  int
}

// NewModel builds a table for every order from 1 to maxOrder.
func NewModel(words []string, maxOrder int) (*Model, error) {
	if maxOrder < 1 || maxOrder > MaxOrder {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, maxOrder)
	}
	m := &Model{tables: make([]*Table, maxOrder), words: len(words)}
	for n := 1; n <= maxOrder; n++ {
		t, err := Build(words, n)
		if err != nil {
			return nil, fmt.Errorf("failed to build order-%d table: %w", n, err)
		}
		m.tables[n-1] = t
		log.Debug().Msgf("built order-%d table with %d contexts", n, t.Contexts())
	}
	return m, nil
}

func (m *Model) MaxOrder() int { return len(m.tables) }

// Words returns the size of the training set.
func (m *Model) Words() int { return m.words }

// Table returns the table for order n, or nil if the model has none.
func (m *Model) Table(n int) *Table {
	if n < 1 || n > len(m.tables) {
		return nil
	}
	return m.tables[n-1]
}
