package ngram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hangman/game"
)

func TestLeftContext(t *testing.T) {
	s1, s2, s3, s4 := StartSentinel(1), StartSentinel(2), StartSentinel(3), StartSentinel(4)

	testCases := []struct {
		desc     string
		mask     string
		pos      int
		order    int
		expected []rune
	}{
		{"first position sees only sentinels", "___", 0, 5, []rune{s4, s3, s2, s1}},
		{"first position of a bigram model", "___", 0, 2, []rune{s1}},
		{"blank after a blank has an empty context", "___", 1, 5, []rune{}},
		{"letters near the start are padded", "ca_", 2, 5, []rune{s2, s1, 'c', 'a'}},
		{"long prefixes are truncated to n-1", "abcde_", 5, 3, []rune{'d', 'e'}},
		{"the walk stops at an earlier blank", "a_cd_", 4, 5, []rune{'c', 'd'}},
		{"unigram contexts are always empty", "ca_", 2, 1, []rune{}},
		{"truncation exactly at the word start needs no sentinel", "ab_", 2, 3, []rune{'a', 'b'}},
	}

	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			mask, err := game.ParseMask(tt.mask)
			require.NoError(t, err)
			require.Equal(t, tt.expected, LeftContext(mask, tt.pos, tt.order))
		})
	}
}
