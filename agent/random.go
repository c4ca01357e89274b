package agent

import (
	"sync"

	"golang.org/x/exp/rand"

	"hangman/game"
)

// Random guesses uniformly among the letters not tried yet. It is the
// baseline every trained strategy should beat.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (s *Random) Guess(_ game.Mask, guessed *game.Guessed) (rune, error) {
	candidates := make([]rune, 0, game.AlphabetSize)
	for _, letter := range game.Letters() {
		if !guessed.Contains(letter) {
			candidates = append(candidates, letter)
		}
	}
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	s.mu.Lock()
	i := s.rng.Intn(len(candidates))
	s.mu.Unlock()
	return candidates[i], nil
}

func (s *Random) String() string { return "random" }
