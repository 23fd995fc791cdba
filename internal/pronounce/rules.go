package pronounce

import (
	"fmt"
	"strings"
)

// Rule is a single ordered substitution applied to IAST text.
type Rule struct {
	From string
	To   string
}

// RuleSet is an ordered list of substitution rules. Order matters: a
// macron-stripping rule must run before anything that matches on the
// stripped form.
type RuleSet []Rule

// DefaultRules returns the standard simplification chain: long vowels
// become doubled plain vowels, anusvara and visarga lose their dots,
// and vocalic r is spelled out.
func DefaultRules() RuleSet {
	return RuleSet{
		{From: "ā", To: "aa"},
		{From: "ī", To: "ii"},
		{From: "ū", To: "uu"},
		{From: "ṃ", To: "m"},
		{From: "ḥ", To: "h"},
		{From: "ṛ", To: "ru"},
	}
}

// ParseRules builds a RuleSet from "from=to" entries, keeping their
// order. Used to load custom chains from configuration.
func ParseRules(entries []string) (RuleSet, error) {
	rules := make(RuleSet, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid rule %q: want \"from=to\"", entry)
		}
		rules = append(rules, Rule{From: parts[0], To: parts[1]})
	}
	if err := rules.Check(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Check verifies that no rule reintroduces a character an earlier rule
// removed. Such a chain would not be idempotent.
func (rs RuleSet) Check() error {
	removed := make(map[rune]int) // rune -> index of the removing rule
	for i, rule := range rs {
		for _, r := range rule.To {
			if j, ok := removed[r]; ok {
				return fmt.Errorf("rule %d (%q -> %q) reintroduces %q removed by rule %d",
					i, rule.From, rule.To, string(r), j)
			}
		}
		for _, r := range rule.From {
			if !strings.ContainsRune(rule.To, r) {
				if _, ok := removed[r]; !ok {
					removed[r] = i
				}
			}
		}
	}
	return nil
}
