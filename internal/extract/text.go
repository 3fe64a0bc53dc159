package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lowercases text, turns everything outside [a-z0-9] into spaces,
// collapses whitespace runs and trims. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}

	return b.String()
}

// Tokenize normalizes text and splits it on whitespace
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// ContainsTerm reports whether the normalized term occurs in normalized text
// on whole-token boundaries. Both arguments must already be normalized.
func ContainsTerm(normText, normTerm string) bool {
	if normTerm == "" {
		return false
	}
	return strings.Contains(" "+normText+" ", " "+normTerm+" ")
}

// HasWordPrefix reports whether some word in lower starts with prefix.
// Used for trigger lists where "terminat" must hit "termination".
func HasWordPrefix(lower, prefix string) bool {
	for i := 0; ; {
		j := strings.Index(lower[i:], prefix)
		if j < 0 {
			return false
		}
		j += i
		if j == 0 {
			return true
		}
		if prev, _ := utf8.DecodeLastRuneInString(lower[:j]); !isWordRune(prev) {
			return true
		}
		i = j + 1
		if i >= len(lower) {
			return false
		}
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Span is a sentence located in the original text
type Span struct {
	Start int
	End   int
	Text  string
}

// Contains reports whether the byte offset lies inside the span
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Sentences splits text after '.', '!' or '?' when followed by whitespace.
// Offsets refer to the original string.
func Sentences(text string) []Span {
	var spans []Span
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 < len(text) && isSpaceByte(text[i+1]) {
			spans = appendSpan(spans, text, start, i+1)
			start = i + 1
		}
	}
	spans = appendSpan(spans, text, start, len(text))

	return spans
}

func appendSpan(spans []Span, text string, start, end int) []Span {
	for start < end && isSpaceByte(text[start]) {
		start++
	}
	if start >= end {
		return spans
	}
	return append(spans, Span{Start: start, End: end, Text: strings.TrimSpace(text[start:end])})
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// SentenceAt returns the sentence containing offset, or false if none does
func SentenceAt(spans []Span, offset int) (Span, bool) {
	for _, s := range spans {
		if s.Contains(offset) {
			return s, true
		}
	}
	return Span{}, false
}

// window returns text[start-before : end+after] clamped to the string
func window(text string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}
