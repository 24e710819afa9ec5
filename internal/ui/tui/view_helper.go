package tui

import (
	"strings"
	"unicode/utf8"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// wrapHard breaks s every width runes. Encoded strings have no spaces, so
// word wrapping would leave them on one overflowing line.
func wrapHard(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == width {
			b.WriteByte('\n')
			n = 0
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
