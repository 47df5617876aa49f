package brandmark

import (
	"strings"
	"unicode"
)

// Monogram derives the terminal text placeholder from a display name:
// the first letter of each of the first two words, uppercased. A single
// word yields one letter, an empty name yields "?". Deterministic:
// the same name always renders the same monogram.
func Monogram(name string) string {
	words := strings.Fields(name)
	var b strings.Builder
	for i, w := range words {
		if i == 2 {
			break
		}
		for _, r := range w {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
