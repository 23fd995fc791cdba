// Package translit converts Telugu script to IAST Latin transliteration.
// It segments input into grapheme clusters (base letter plus at most one
// dependent vowel sign or virama) and resolves each against a static
// mapping table honouring the inherent-vowel rule.
package translit
