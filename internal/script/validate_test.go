package script

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		opts   Options
		valid  bool
		reason Reason
	}{
		{
			name:   "valid Telugu word",
			text:   "నమస్కారం",
			opts:   Options{Strict: true},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "valid Telugu sentence with punctuation",
			text:   "శుభోదయం, మీరు ఎలా ఉన్నారు?",
			opts:   Options{Strict: true},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "empty text",
			text:   "",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonEmpty,
		},
		{
			name:   "whitespace only",
			text:   "   \t\n",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonEmpty,
		},
		{
			name:   "English text",
			text:   "hello world",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonNonTelugu,
		},
		{
			name:   "English text permissive still needs Telugu",
			text:   "hello world",
			opts:   Options{Strict: false},
			valid:  false,
			reason: ReasonNonTelugu,
		},
		{
			name:   "mixed script strict",
			text:   "తెలుగు word",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonMixedScript,
		},
		{
			name:   "mixed script permissive",
			text:   "తెలుగు word",
			opts:   Options{Strict: false},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "punctuation only",
			text:   "?!",
			opts:   Options{Strict: true},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "digits rejected by default",
			text:   "తెలుగు 123",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonNonTelugu,
		},
		{
			name:   "digits permitted when configured",
			text:   "తెలుగు 123",
			opts:   Options{Strict: true, AllowDigits: true},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "Telugu digits are Telugu",
			text:   "౧౨౩ తెలుగు",
			opts:   Options{Strict: true},
			valid:  true,
			reason: ReasonNone,
		},
		{
			name:   "Cyrillic counts as foreign script",
			text:   "తెలుగు ябълка",
			opts:   Options{Strict: true},
			valid:  false,
			reason: ReasonMixedScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.text, tt.opts)
			if v.Valid != tt.valid {
				t.Errorf("Validate(%q).Valid = %v, want %v", tt.text, v.Valid, tt.valid)
			}
			if v.Reason != tt.reason {
				t.Errorf("Validate(%q).Reason = %q, want %q", tt.text, v.Reason, tt.reason)
			}
			if !v.Valid && tt.reason != ReasonEmpty && v.Offending == "" {
				t.Errorf("Validate(%q) should report the offending rune", tt.text)
			}
		})
	}
}

func TestIsTelugu(t *testing.T) {
	if !IsTelugu('క') {
		t.Error("expected 'క' to be Telugu")
	}
	if !IsTelugu('౯') {
		t.Error("expected Telugu digit '౯' to be Telugu")
	}
	if IsTelugu('k') {
		t.Error("expected 'k' not to be Telugu")
	}
}
