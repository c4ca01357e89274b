package game

import (
	"fmt"
	"time"
)

// Result is the outcome of one finished (or aborted) game.
type Result struct {
	Word        string
	Status      Status
	Mistakes    int
	MaxMistakes int
	Turns       int
	Guesses     []rune // every guess in turn order, repeats included
	Duration    time.Duration
}

// Game holds the state of a single hangman game. A Game is not safe for
// concurrent use; each game owns its mask and guessed set.
type Game struct {
	word        []rune
	mask        Mask
	guessed     *Guessed
	history     []rune
	mistakes    int
	maxMistakes int
	status      Status
}

// New starts a game for word, lost once maxMistakes mistakes have been made.
func New(word string, maxMistakes int) (*Game, error) {
	if err := ValidateWord(word); err != nil {
		return nil, err
	}
	if maxMistakes < 1 {
		return nil, fmt.Errorf("max mistakes must be at least 1, got %d", maxMistakes)
	}
	return &Game{
		word:        []rune(word),
		mask:        NewMask(len(word)),
		guessed:     NewGuessed(),
		maxMistakes: maxMistakes,
		status:      InProgress,
	}, nil
}

// Guess plays one turn and reports whether letter revealed anything.
//
// A letter that was already tried counts as a mistake and leaves the mask
// unchanged. After the turn the game is Won when no blanks remain, or Lost
// when the mistake cap is reached.
func (g *Game) Guess(letter rune) (bool, error) {
	if g.status != InProgress {
		return false, ErrGameOver
	}
	if !IsLetter(letter) {
		return false, &InvalidGuessError{Guess: string(letter), Reason: "outside alphabet"}
	}

	g.history = append(g.history, letter)
	hit := false
	if g.guessed.Add(letter) {
		for i, r := range g.word {
			if r == letter {
				g.mask[i] = letter
				hit = true
			}
		}
	}
	if !hit {
		g.mistakes++
	}

	if g.mask.Solved() {
		g.status = Won
	} else if g.mistakes >= g.maxMistakes {
		g.status = Lost
	}
	return hit, nil
}

func (g *Game) Word() string { return string(g.word) }

// Mask returns a copy of the current mask.
func (g *Game) Mask() Mask { return g.mask.Copy() }

// Guessed returns a copy of the letters tried so far.
func (g *Game) Guessed() *Guessed { return g.guessed.Clone() }

func (g *Game) Mistakes() int    { return g.mistakes }
func (g *Game) MaxMistakes() int { return g.maxMistakes }
func (g *Game) Status() Status   { return g.status }
func (g *Game) Turns() int       { return len(g.history) }

// Result snapshots the game. Duration is left to the caller that timed it.
func (g *Game) Result() Result {
	history := make([]rune, len(g.history))
	copy(history, g.history)
	return Result{
		Word:        string(g.word),
		Status:      g.status,
		Mistakes:    g.mistakes,
		MaxMistakes: g.maxMistakes,
		Turns:       len(g.history),
		Guesses:     history,
	}
}
