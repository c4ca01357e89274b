package game

import mapset "github.com/deckarep/golang-set/v2"

// Guessed is the set of letters attempted in one game. It only grows.
type Guessed struct {
	set   mapset.Set[rune]
	order []rune
}

func NewGuessed(letters ...rune) *Guessed {
	g := &Guessed{set: mapset.NewThreadUnsafeSet[rune]()}
	for _, r := range letters {
		g.Add(r)
	}
	return g
}

// Add records r and reports whether it was new.
func (g *Guessed) Add(r rune) bool {
	if !g.set.Add(r) {
		return false
	}
	g.order = append(g.order, r)
	return true
}

// Contains is safe on a nil set, which holds nothing.
func (g *Guessed) Contains(r rune) bool {
	if g == nil {
		return false
	}
	return g.set.Contains(r)
}

func (g *Guessed) Len() int {
	if g == nil {
		return 0
	}
	return g.set.Cardinality()
}

// Letters returns the distinct letters in the order they were first tried.
func (g *Guessed) Letters() []rune {
	if g == nil {
		return nil
	}
	out := make([]rune, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Guessed) Clone() *Guessed {
	return NewGuessed(g.Letters()...)
}
