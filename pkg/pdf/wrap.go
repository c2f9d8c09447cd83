package pdf

import (
	"strings"
)

// wrapText breaks text into lines no wider than width. Words are separated by
// whitespace runs; a word wider than the line is split between runes. Blank
// text produces no lines.
func wrapText(m Measurer, face Face, text string, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.StringWidth(face, candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if m.StringWidth(face, word) <= width {
			current = word
			continue
		}
		pieces := breakWord(m, face, word, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakWord splits a single word into chunks that fit width. Every chunk holds
// at least one rune so narrow columns still make progress.
func breakWord(m Measurer, face Face, word string, width float64) []string {
	var (
		pieces []string
		chunk  []rune
	)
	for _, r := range word {
		next := append(chunk, r)
		if len(chunk) > 0 && m.StringWidth(face, string(next)) > width {
			pieces = append(pieces, string(chunk))
			chunk = []rune{r}
			continue
		}
		chunk = next
	}
	if len(chunk) > 0 {
		pieces = append(pieces, string(chunk))
	}
	return pieces
}
