package convert

import (
	"log/slog"

	"codeberg.org/snonux/telatin/internal/logging"
	"codeberg.org/snonux/telatin/internal/pronounce"
	"codeberg.org/snonux/telatin/internal/script"
	"codeberg.org/snonux/telatin/internal/translit"
)

// Options configures a Converter.
type Options struct {
	Strict      bool              // reject mixed-script input
	AllowDigits bool              // permit ASCII digits
	Rules       pronounce.RuleSet // nil means pronounce.DefaultRules()
	Logger      *slog.Logger      // nil means a no-op logger
}

// Converter runs the Validate -> Transliterate -> Simplify pipeline.
// The mapping table and rule set are built once and shared read-only,
// so a single Converter is safe for concurrent use.
type Converter struct {
	opts   Options
	table  *translit.Table
	rules  pronounce.RuleSet
	logger *slog.Logger
}

// New creates a Converter with the given options.
func New(opts Options) *Converter {
	rules := opts.Rules
	if rules == nil {
		rules = pronounce.DefaultRules()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{
		opts:   opts,
		table:  translit.Default(),
		rules:  rules,
		logger: logger,
	}
}

// Validate checks text against the converter's script options.
func (c *Converter) Validate(text string) script.Verdict {
	return script.Validate(text, script.Options{
		Strict:      c.opts.Strict,
		AllowDigits: c.opts.AllowDigits,
	})
}

// Transliterate converts a single string through the full pipeline.
// Validation failures are terminal for the item and reported in the
// Result; transliteration and simplification warnings are soft.
func (c *Converter) Transliterate(text string) Result {
	result := Result{Input: text}

	verdict := c.Validate(text)
	if !verdict.Valid {
		result.Err = verdictError(verdict)
		c.logger.Warn("validation failed",
			"reason", string(verdict.Reason), "input", excerpt(text))
		return result
	}

	latin, tw := c.table.Transliterate(text)
	for _, w := range tw {
		result.Warnings = append(result.Warnings, Warning{
			Kind:    WarnUnrecognizedCluster,
			Excerpt: w.Cluster,
		})
		c.logger.Warn("unrecognized grapheme cluster",
			"cluster", w.Cluster, "position", w.Position, "input", excerpt(text))
	}

	simplified, pw := c.rules.Simplify(latin)
	for _, w := range pw {
		result.Warnings = append(result.Warnings, Warning{
			Kind:    WarnMalformedIAST,
			Excerpt: w.Char,
		})
		c.logger.Warn("malformed IAST character",
			"char", w.Char, "position", w.Position, "input", excerpt(latin))
	}

	result.Latin = latin
	result.Pronunciation = simplified
	return result
}

// ConvertBatch converts every item independently, continuing past
// failures. The i-th Result always corresponds to the i-th item.
func (c *Converter) ConvertBatch(items []string) *Report {
	report := &Report{Results: make([]Result, 0, len(items))}
	for _, item := range items {
		result := c.Transliterate(item)
		if result.OK() {
			report.Succeeded++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}
	return report
}

func verdictError(v script.Verdict) *ItemError {
	if v.Reason == script.ReasonEmpty {
		return &ItemError{Kind: ErrEmptyInput, Reason: string(v.Reason)}
	}
	reason := string(v.Reason)
	if v.Offending != "" {
		reason += " (" + v.Offending + ")"
	}
	return &ItemError{Kind: ErrInvalidScript, Reason: reason}
}

// excerpt truncates text for log output.
func excerpt(text string) string {
	const max = 40
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}
