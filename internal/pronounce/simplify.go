package pronounce

import (
	"strings"
	"unicode"
)

// Warning records a character outside the known IAST repertoire. The
// character passes through unchanged; simplification never hard-fails.
type Warning struct {
	Char     string
	Position int // rune offset in the input
}

// iastExtras are the non-ASCII characters IAST output may contain.
const iastExtras = "āīūṛṝḷḹēōṃḥṅñṭḍṇśṣṟḻ'̐"

// Simplify applies the rule chain in order and reports any characters
// that were not recognizable as IAST.
func (rs RuleSet) Simplify(iast string) (string, []Warning) {
	var warnings []Warning
	for i, r := range []rune(iast) {
		if !isIAST(r) {
			warnings = append(warnings, Warning{Char: string(r), Position: i})
		}
	}

	out := iast
	for _, rule := range rs {
		out = strings.ReplaceAll(out, rule.From, rule.To)
	}
	return out, warnings
}

// isIAST reports whether r may appear in well-formed IAST output:
// ASCII letters, digits, punctuation and whitespace, plus the IAST
// diacritic set.
func isIAST(r rune) bool {
	if r < 0x80 {
		return true
	}
	if unicode.IsSpace(r) || unicode.IsPunct(r) {
		return true
	}
	return strings.ContainsRune(iastExtras, r)
}
