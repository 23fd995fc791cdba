package translit

import (
	"strings"
	"unicode"

	"codeberg.org/snonux/telatin/internal/script"
)

// Warning records a code point the transliterator could not map. The
// offending text passes through unchanged; the conversion continues.
type Warning struct {
	Cluster  string // the unmapped text
	Position int    // rune offset in the input
}

// Transliterate converts Telugu text to IAST. Segmentation is a single
// left-to-right pass: a consonant consumes at most one following
// dependent vowel sign or one virama; everything else maps directly.
// The result is a pure function of the input.
func (t *Table) Transliterate(text string) (string, []Warning) {
	runes := []rune(text)
	var out strings.Builder
	var warnings []Warning

	for i := 0; i < len(runes); {
		r := runes[i]

		if c, ok := t.consonants[r]; ok {
			out.WriteString(c)
			if i+1 < len(runes) {
				next := runes[i+1]
				if next == Virama {
					// Explicit vowel suppression.
					i += 2
					continue
				}
				if m, ok := t.matras[next]; ok {
					out.WriteString(m)
					i += 2
					continue
				}
			}
			// Bare consonant carries the inherent vowel.
			out.WriteString("a")
			i++
			continue
		}

		if v, ok := t.vowels[r]; ok {
			out.WriteString(v)
			i++
			continue
		}
		if s, ok := t.signs[r]; ok {
			out.WriteString(s)
			i++
			continue
		}
		if d, ok := t.digits[r]; ok {
			out.WriteString(d)
			i++
			continue
		}

		if passesSilently(r) {
			out.WriteRune(r)
			i++
			continue
		}

		// Unmapped Telugu code point, stray combining mark, or a symbol
		// outside the script such as an emoji.
		out.WriteRune(r)
		warnings = append(warnings, Warning{Cluster: string(r), Position: i})
		i++
	}

	return out.String(), warnings
}

// passesSilently reports whether r may pass through without a warning:
// ASCII (covers permissive-mode Latin runs and configured digits) plus
// any whitespace or punctuation.
func passesSilently(r rune) bool {
	if script.IsTelugu(r) {
		return false
	}
	return r < 0x80 || unicode.IsSpace(r) || unicode.IsPunct(r)
}
