package convert

// ErrorKind classifies a terminal per-item failure.
type ErrorKind string

const (
	// ErrEmptyInput marks an empty or whitespace-only item.
	ErrEmptyInput ErrorKind = "empty-input"
	// ErrInvalidScript marks an item rejected by script validation.
	ErrInvalidScript ErrorKind = "invalid-script"
)

// WarningKind classifies a non-fatal conversion warning.
type WarningKind string

const (
	// WarnUnrecognizedCluster marks a code point the transliterator
	// passed through unmapped.
	WarnUnrecognizedCluster WarningKind = "unrecognized-cluster"
	// WarnMalformedIAST marks a character the simplifier did not
	// recognize as IAST.
	WarnMalformedIAST WarningKind = "malformed-iast"
)

// Warning is a recorded soft warning with an excerpt of the offending
// input.
type Warning struct {
	Kind    WarningKind
	Excerpt string
}

// ItemError is the error descriptor carried by a failed Result.
type ItemError struct {
	Kind   ErrorKind
	Reason string
}

func (e *ItemError) Error() string {
	if e.Reason == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Reason
}

// Result holds the outcome of converting one input unit. When Err is
// non-nil the item failed validation and Latin and Pronunciation are
// empty.
type Result struct {
	Input         string
	Latin         string
	Pronunciation string
	Err           *ItemError
	Warnings      []Warning
}

// OK reports whether the item converted successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report is an ordered collection of Results, one per input unit, in
// input order.
type Report struct {
	Results   []Result
	Succeeded int
	Failed    int
}
