package glyph

import (
	"strings"
	"unicode/utf8"
)

var transliterations = strings.NewReplacer(
	"€", "EUR",
	"→", "->",
	"←", "<-",
	"—", "-",
	"–", "-",
	"×", "x",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
)

// Transliterate rewrites s into runes the atlas can draw. Known symbols get
// ASCII spellings; anything else unsupported becomes '?'.
func Transliterate(s string) string {
	s = transliterations.Replace(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || Supported(r) {
			return r
		}
		return '?'
	}, s)
}

// Measure returns the size of s in glyph cells: the longest line and the
// number of lines.
func Measure(s string) (cols, lines int) {
	if s == "" {
		return 0, 0
	}
	for _, line := range strings.Split(s, "\n") {
		cols = max(cols, utf8.RuneCountInString(line))
		lines++
	}
	return cols, lines
}

// Wrap breaks s into lines of at most width runes, splitting on spaces.
// Words longer than width are broken mid-word. Explicit newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		var line []rune
		for _, w := range words {
			word := []rune(w)
			for len(word) > width {
				if len(line) > 0 {
					out = append(out, string(line))
					line = line[:0]
				}
				out = append(out, string(word[:width]))
				word = word[width:]
			}
			switch {
			case len(line) == 0:
				line = append(line, word...)
			case len(line)+1+len(word) <= width:
				line = append(line, ' ')
				line = append(line, word...)
			default:
				out = append(out, string(line))
				line = append(line[:0], word...)
			}
		}
		if len(line) > 0 {
			out = append(out, string(line))
		}
	}
	return out
}
