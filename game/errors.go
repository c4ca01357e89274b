package game

import (
	"errors"
	"fmt"
)

var ErrGameOver = errors.New("game is over - no guesses allowed")

// InvalidWordError is returned for a secret or training word that is empty or
// contains anything other than lowercase letters.
type InvalidWordError struct {
	Word   string
	Reason string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

// InvalidGuessError is returned when a guess is not exactly one alphabet letter.
type InvalidGuessError struct {
	Guess  string
	Reason string
}

func (e *InvalidGuessError) Error() string {
	return fmt.Sprintf("invalid guess %q: %s", e.Guess, e.Reason)
}
