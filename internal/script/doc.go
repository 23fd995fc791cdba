// Package script validates that input text is written in Telugu script.
// It classifies failures as empty input, non-Telugu content, or mixed
// scripts, and supports a permissive mode that lets mixed input through
// for pass-through transliteration.
package script
