package script

import (
	"strings"
	"unicode"
)

// Reason classifies why a string failed validation.
type Reason string

const (
	// ReasonNone means the string is valid.
	ReasonNone Reason = ""
	// ReasonEmpty means the string is empty or whitespace only.
	ReasonEmpty Reason = "empty"
	// ReasonNonTelugu means the string carries letters of another script
	// and no Telugu at all, or a non-permitted character such as a digit
	// when digits are not allowed.
	ReasonNonTelugu Reason = "non-telugu"
	// ReasonMixedScript means Telugu and foreign letters are mixed while
	// strict mode is on.
	ReasonMixedScript Reason = "mixed-script"
)

// Options controls validation behaviour.
type Options struct {
	// Strict rejects strings mixing Telugu with letters of other scripts.
	// When false, non-Telugu runs pass through transliteration unchanged.
	Strict bool
	// AllowDigits permits ASCII digits in the input.
	AllowDigits bool
}

// Verdict is the result of validating one input string.
type Verdict struct {
	Valid     bool
	Reason    Reason
	Offending string // first offending rune, empty when valid
}

// telugu is the Unicode block U+0C00..U+0C7F.
var telugu = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0C00, Hi: 0x0C7F, Stride: 1}},
}

// IsTelugu reports whether r is in the Telugu Unicode block.
func IsTelugu(r rune) bool {
	return unicode.Is(telugu, r)
}

// Validate checks that text consists of Telugu letters plus permitted
// characters (whitespace, punctuation, optionally digits). It is a pure
// predicate with no side effects. Symbols outside any script, such as
// emoji, do not fail validation; the transliterator passes them through
// and records a warning instead.
func Validate(text string, opts Options) Verdict {
	if strings.TrimSpace(text) == "" {
		return Verdict{Valid: false, Reason: ReasonEmpty}
	}

	hasTelugu := false
	var foreign, disallowed rune

	for _, r := range text {
		switch {
		case IsTelugu(r):
			hasTelugu = true
		case unicode.IsDigit(r):
			if !opts.AllowDigits && disallowed == 0 {
				disallowed = r
			}
		case unicode.IsLetter(r) || unicode.IsMark(r):
			if foreign == 0 {
				foreign = r
			}
		}
	}

	if foreign != 0 {
		if !hasTelugu {
			return Verdict{Valid: false, Reason: ReasonNonTelugu, Offending: string(foreign)}
		}
		if opts.Strict {
			return Verdict{Valid: false, Reason: ReasonMixedScript, Offending: string(foreign)}
		}
		return Verdict{Valid: true}
	}

	if disallowed != 0 {
		return Verdict{Valid: false, Reason: ReasonNonTelugu, Offending: string(disallowed)}
	}

	// Telugu-only, or punctuation/whitespace-only input. The latter
	// trivially transliterates to itself.
	return Verdict{Valid: true}
}
