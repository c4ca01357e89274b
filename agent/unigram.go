package agent

import (
	"math"

	"hangman/game"
)

type letterCounts struct {
	counts [game.AlphabetSize]int
	total  int
}

func (lc *letterCounts) add(word string) {
	for _, r := range word {
		lc.counts[game.LetterIndex(r)]++
		lc.total++
	}
}

// laplace is the add-one smoothed probability of letter.
func (lc *letterCounts) laplace(letter rune) float64 {
	return float64(lc.counts[game.LetterIndex(letter)]+1) / float64(lc.total+game.AlphabetSize)
}

// Unigram ignores the mask and guesses the most frequent unguessed letter of
// the whole training corpus, with add-one smoothing.
type Unigram struct {
	lc letterCounts
}

func NewUnigram(words []string) (*Unigram, error) {
	u := &Unigram{}
	for _, w := range words {
		if err := game.ValidateWord(w); err != nil {
			return nil, err
		}
		u.lc.add(w)
	}
	return u, nil
}

// Prob returns the smoothed probability of letter.
func (u *Unigram) Prob(letter rune) float64 {
	return u.lc.laplace(letter)
}

func (u *Unigram) Guess(_ game.Mask, guessed *game.Guessed) (rune, error) {
	return selectMax(guessed, func(letter rune) (float64, error) {
		return math.Log(u.Prob(letter)), nil
	})
}

func (u *Unigram) String() string { return "unigram" }

// LengthUnigram is Unigram restricted to training words of the secret word's
// length. With no training word of that length every letter is equally
// likely.
type LengthUnigram struct {
	byLength map[int]*letterCounts
}

func NewLengthUnigram(words []string) (*LengthUnigram, error) {
	u := &LengthUnigram{byLength: make(map[int]*letterCounts)}
	for _, w := range words {
		if err := game.ValidateWord(w); err != nil {
			return nil, err
		}
		lc, ok := u.byLength[len(w)]
		if !ok {
			lc = &letterCounts{}
			u.byLength[len(w)] = lc
		}
		lc.add(w)
	}
	return u, nil
}

// Prob returns the smoothed probability of letter among words of length n.
func (u *LengthUnigram) Prob(letter rune, n int) float64 {
	lc, ok := u.byLength[n]
	if !ok {
		return 1.0 / game.AlphabetSize
	}
	return lc.laplace(letter)
}

func (u *LengthUnigram) Guess(mask game.Mask, guessed *game.Guessed) (rune, error) {
	return selectMax(guessed, func(letter rune) (float64, error) {
		return math.Log(u.Prob(letter, len(mask))), nil
	})
}

func (u *LengthUnigram) String() string { return "length-unigram" }
