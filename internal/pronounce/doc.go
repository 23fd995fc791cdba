// Package pronounce turns IAST transliteration into a simplified Latin
// pronunciation by applying an explicitly ordered chain of substitution
// rules. The chain is data, not code: custom rule sets can be loaded
// from configuration and are checked for order soundness.
package pronounce
