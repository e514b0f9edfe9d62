package script

import (
	"strings"
	"testing"
)

func TestPrompt_ContainsLocationAndHosts(t *testing.T) {
	p := Prompt("Paris, France", "en")

	if !strings.Contains(p, "Paris, France") {
		t.Error("prompt should contain the location")
	}
	if !strings.Contains(p, "Alex") || !strings.Contains(p, "Sam") {
		t.Error("prompt should name both hosts")
	}
	if strings.Contains(p, "Write all dialogue in") {
		t.Error("English prompt should not carry a translation instruction")
	}
}

func TestPrompt_NonEnglishAddsLanguageInstruction(t *testing.T) {
	p := Prompt("Tokyo, Japan", "ja")

	if !strings.Contains(p, "Write all dialogue in Japanese") {
		t.Errorf("expected Japanese instruction, got:\n%s", p)
	}
	// Speaker prefixes must stay in English for the segmenter.
	if !strings.Contains(p, `"Alex:"`) || !strings.Contains(p, `"Sam:"`) {
		t.Error("prompt should pin the English speaker prefixes")
	}
}

func TestPrompt_EmptyLanguageDefaultsToEnglish(t *testing.T) {
	if strings.Contains(Prompt("Rome, Italy", ""), "Write all dialogue in") {
		t.Error("empty language should behave like English")
	}
}

func TestLanguageName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"es", "Spanish"},
		{"zh", "Chinese"},
		{"tlh", "tlh"}, // unknown codes pass through
	}
	for _, tt := range tests {
		if got := LanguageName(tt.code); got != tt.want {
			t.Errorf("LanguageName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
