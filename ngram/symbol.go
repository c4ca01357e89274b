package ngram

import (
	"fmt"
	"strings"
)

// Sentinels live in the Unicode private use area so they can never collide
// with a letter. The start sentinel at distance d sits d positions before the
// first letter; the end sentinel at distance d sits d positions after the last.
const (
	startBase rune = 0xE000
	endBase   rune = 0xE100
)

func StartSentinel(distance int) rune { return startBase + rune(distance) }

func EndSentinel(distance int) rune { return endBase + rune(distance) }

func IsSentinel(r rune) bool {
	return isStart(r) || isEnd(r)
}

func isStart(r rune) bool { return r > startBase && r <= startBase+MaxOrder }

func isEnd(r rune) bool { return r > endBase && r <= endBase+MaxOrder }

// FormatSymbol renders a symbol for humans: letters as themselves, sentinels
// as <sN> and </sN>.
func FormatSymbol(r rune) string {
	switch {
	case isStart(r):
		return fmt.Sprintf("<s%d>", r-startBase)
	case isEnd(r):
		return fmt.Sprintf("</s%d>", r-endBase)
	default:
		return string(r)
	}
}

func FormatContext(ctx []rune) string {
	if len(ctx) == 0 {
		return "<empty>"
	}
	var sb strings.Builder
	for _, r := range ctx {
		sb.WriteString(FormatSymbol(r))
	}
	return sb.String()
}

// pad surrounds word with pad start sentinels (farthest first) and pad end
// sentinels (nearest first).
func pad(word string, pad int) []rune {
	seq := make([]rune, 0, len(word)+2*pad)
	for d := pad; d >= 1; d-- {
		seq = append(seq, StartSentinel(d))
	}
	seq = append(seq, []rune(word)...)
	for d := 1; d <= pad; d++ {
		seq = append(seq, EndSentinel(d))
	}
	return seq
}
