package game

// Blank marks an unresolved position in a Mask.
const Blank = '_'

// AlphabetSize is the number of letters a guess may be drawn from.
const AlphabetSize = 26

// Letters returns the alphabet in enumeration order (a..z). Strategies that
// break ties rely on this order.
func Letters() []rune {
	letters := make([]rune, AlphabetSize)
	for i := range letters {
		letters[i] = rune('a' + i)
	}
	return letters
}

// IsLetter reports whether r belongs to the alphabet.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// LetterIndex returns the position of r in the alphabet, or -1.
func LetterIndex(r rune) int {
	if !IsLetter(r) {
		return -1
	}
	return int(r - 'a')
}

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
