// Package agent holds the guessing strategies that play hangman.
package agent

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"hangman/game"
)

var ErrNoCandidates = errors.New("every letter has already been guessed")

// Strategy picks the next letter for a mask given the letters already tried.
// Returning a letter that was already tried is legal and costs a mistake.
// Implementations must be safe for concurrent use across games.
type Strategy interface {
	Guess(mask game.Mask, guessed *game.Guessed) (rune, error)
}

// Func adapts a plain function to a Strategy.
type Func func(mask game.Mask, guessed *game.Guessed) (rune, error)

func (f Func) Guess(mask game.Mask, guessed *game.Guessed) (rune, error) {
	return f(mask, guessed)
}

// Name returns a strategy's display name.
func Name(s Strategy) string {
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}

// ParseGuess turns external text into a guess. It must be exactly one
// alphabet character.
func ParseGuess(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, &game.InvalidGuessError{Guess: s, Reason: "must be exactly one character"}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !game.IsLetter(r) {
		return 0, &game.InvalidGuessError{Guess: s, Reason: "outside alphabet"}
	}
	return r, nil
}

// selectMax returns the unguessed letter with the highest score. Letters are
// visited in alphabet order and only a strictly higher score replaces the
// current best, so ties go to the lexicographically smallest letter.
func selectMax(guessed *game.Guessed, score func(letter rune) (float64, error)) (rune, error) {
	var best rune
	bestScore := 0.0
	found := false
	for _, letter := range game.Letters() {
		if guessed.Contains(letter) {
			continue
		}
		s, err := score(letter)
		if err != nil {
			return 0, err
		}
		if !found || s > bestScore {
			best, bestScore, found = letter, s, true
		}
	}
	if !found {
		return 0, ErrNoCandidates
	}
	return best, nil
}
