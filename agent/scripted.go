package agent

import (
	"errors"
	"sync"

	"hangman/game"
)

var ErrScriptExhausted = errors.New("scripted strategy ran out of guesses")

// Scripted replays a fixed sequence of guesses, one per call. It carries
// state, so use a fresh one per game.
type Scripted struct {
	mu      sync.Mutex
	guesses []rune
	next    int
}

func NewScripted(guesses ...rune) *Scripted {
	return &Scripted{guesses: guesses}
}

func (s *Scripted) Guess(game.Mask, *game.Guessed) (rune, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.guesses) {
		return 0, ErrScriptExhausted
	}
	r := s.guesses[s.next]
	s.next++
	return r, nil
}

func (s *Scripted) String() string { return "scripted" }
