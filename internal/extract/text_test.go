package extract

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Either Party MAY Terminate", "either party may terminate"},
		{"punctuation", "non-transferable, revocable; license.", "non transferable revocable license"},
		{"whitespace", "  a\t\tb\n\nc  ", "a b c"},
		{"symbols", "$500 (five hundred) 2%", "500 five hundred 2"},
		{"unicode", "café – naïve", "caf na ve"},
		{"empty", "", ""},
		{"only punctuation", "...!?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"1. Termination. Either party may terminate this agreement at any time.",
		"Late payments incur a penalty of 2% per month!",
		"  MIXED case\twith\ttabs and — dashes ",
		"Ünïcödé → text",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Shall NOT be liable, in any event.")
	want := []string{"shall", "not", "be", "liable", "in", "any", "event"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestContainsTerm(t *testing.T) {
	norm := Normalize("The license granted is limited to internal use.")

	if !ContainsTerm(norm, "license granted") {
		t.Error("expected multi-word term to match")
	}
	if ContainsTerm(norm, "limited license") {
		t.Error("did not expect reversed phrase to match")
	}
	if ContainsTerm(norm, "use d") {
		t.Error("expected token boundary to be respected")
	}
	if ContainsTerm(norm, "") {
		t.Error("empty term must never match")
	}
}

func TestHasWordPrefix(t *testing.T) {
	lower := "upon termination of the agreement, payable monthly"
	if !HasWordPrefix(lower, "terminat") {
		t.Error("expected terminat to match termination")
	}
	if !HasWordPrefix(lower, "pay") {
		t.Error("expected pay to match payable")
	}
	if HasWordPrefix(lower, "greement") {
		t.Error("prefix must start at a word boundary")
	}
}

func TestHasWordPrefix_AfterMultiByteRune(t *testing.T) {
	// "›" ends in byte 0xBA, which alone would read as the letter "º"
	if !HasWordPrefix("a ›penalty‹ applies", "penalt") {
		t.Error("expected a word start after a closing quote")
	}
	if !HasWordPrefix("fee—late charge", "late") {
		t.Error("expected a word start after an em dash")
	}
	if HasWordPrefix("élate", "late") {
		t.Error("a letter before the prefix must block the match")
	}
}

func TestSentences(t *testing.T) {
	text := "First sentence. Second one! Third? 1.5% stays whole."
	spans := Sentences(text)

	want := []string{"First sentence.", "Second one!", "Third?", "1.5% stays whole."}
	if len(spans) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %+v", len(want), len(spans), spans)
	}
	for i, s := range spans {
		if s.Text != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, s.Text, want[i])
		}
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d offsets do not match text", i)
		}
	}

	if s, ok := SentenceAt(spans, strings.Index(text, "one")); !ok || s.Text != "Second one!" {
		t.Errorf("SentenceAt returned %+v, %v", s, ok)
	}
}
