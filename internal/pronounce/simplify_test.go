package pronounce

import "testing"

func TestSimplify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "long a",
			in:   "namaskāraṃ",
			want: "namaskaaram",
		},
		{
			name: "plain text unchanged",
			in:   "telugu",
			want: "telugu",
		},
		{
			name: "long vowels doubled",
			in:   "dhanyavādālu",
			want: "dhanyavaadaalu",
		},
		{
			name: "visarga dropped",
			in:   "duḥkhaṃ",
			want: "duhkham",
		},
		{
			name: "vocalic r spelled out",
			in:   "ṛṣi",
			want: "ruṣi",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := rules.Simplify(tt.in)
			if got != tt.want {
				t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if len(warnings) != 0 {
				t.Errorf("Simplify(%q) produced unexpected warnings: %v", tt.in, warnings)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	rules := DefaultRules()

	inputs := []string{"namaskāraṃ", "dhanyavādālu", "śubhōdayaṃ", "duḥkhaṃ"}
	for _, in := range inputs {
		once, _ := rules.Simplify(in)
		twice, _ := rules.Simplify(once)
		if once != twice {
			t.Errorf("Simplify not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestSimplifyWarnsOnNonIAST(t *testing.T) {
	rules := DefaultRules()

	got, warnings := rules.Simplify("tel😀ugu")
	if got != "tel😀ugu" {
		t.Errorf("Simplify = %q, want input passed through", got)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Char != "😀" {
		t.Errorf("warning char = %q, want %q", warnings[0].Char, "😀")
	}
}

func TestCheckRejectsReintroduction(t *testing.T) {
	// The second rule reintroduces the macron the first removed.
	bad := RuleSet{
		{From: "ā", To: "aa"},
		{From: "aa", To: "ā"},
	}
	if err := bad.Check(); err == nil {
		t.Error("Check should reject a chain that reintroduces a removed character")
	}

	if err := DefaultRules().Check(); err != nil {
		t.Errorf("default rules should pass Check: %v", err)
	}
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]string{"ā=aa", "ṃ=m"})
	if err != nil {
		t.Fatalf("ParseRules failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].From != "ā" || rules[0].To != "aa" {
		t.Errorf("rule 0 = %+v, want ā -> aa", rules[0])
	}

	if _, err := ParseRules([]string{"no-separator"}); err == nil {
		t.Error("ParseRules should reject an entry without '='")
	}
	if _, err := ParseRules([]string{"=x"}); err == nil {
		t.Error("ParseRules should reject an empty pattern")
	}
}
