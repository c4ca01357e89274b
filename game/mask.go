package game

import "fmt"

// Mask is the partially revealed view of a secret word. Unresolved positions
// hold Blank.
type Mask []rune

// NewMask returns an all-blank mask of the given length.
func NewMask(length int) Mask {
	m := make(Mask, length)
	for i := range m {
		m[i] = Blank
	}
	return m
}

// ParseMask reads a mask such as "c_t".
func ParseMask(s string) (Mask, error) {
	m := Mask(s)
	if len(m) == 0 {
		return nil, fmt.Errorf("empty mask")
	}
	for _, r := range m {
		if r != Blank && !IsLetter(r) {
			return nil, fmt.Errorf("mask %q: unexpected symbol %q", s, r)
		}
	}
	return m, nil
}

// Blanks returns the indexes of the unresolved positions.
func (m Mask) Blanks() []int {
	var blanks []int
	for i, r := range m {
		if r == Blank {
			blanks = append(blanks, i)
		}
	}
	return blanks
}

func (m Mask) Solved() bool {
	for _, r := range m {
		if r == Blank {
			return false
		}
	}
	return true
}

func (m Mask) Copy() Mask {
	c := make(Mask, len(m))
	copy(c, m)
	return c
}

func (m Mask) String() string {
	return string(m)
}
