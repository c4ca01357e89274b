package agent

import (
	"fmt"

	"hangman/game"
	"hangman/ngram"
)

// NGram guesses the letter with the highest total interpolated
// log-likelihood over every blank position of the mask.
type NGram struct {
	ip *ngram.Interpolator
}

func NewNGram(ip *ngram.Interpolator) *NGram {
	return &NGram{ip: ip}
}

func (s *NGram) Guess(mask game.Mask, guessed *game.Guessed) (rune, error) {
	order := s.ip.Order()
	blanks := mask.Blanks()
	contexts := make([][]rune, len(blanks))
	for i, pos := range blanks {
		contexts[i] = ngram.LeftContext(mask, pos, order)
	}

	return selectMax(guessed, func(letter rune) (float64, error) {
		total := 0.0
		for _, ctx := range contexts {
			lp, err := s.ip.LogProb(letter, ctx)
			if err != nil {
				return 0, err
			}
			total += lp
		}
		return total, nil
	})
}

func (s *NGram) String() string {
	return fmt.Sprintf("ngram-%d", s.ip.Order())
}
