package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

var moneyPattern = regexp.MustCompile(`\b\d{1,3}(?:,\d{3})+(?:\.\d+)?\b|\b\d+(?:\.\d+)?\b`)

const (
	unitWindow     = 5  // characters checked for a time unit on each side
	fallbackWindow = 50 // characters used when no sentence contains the match
)

var timeUnitWords = []string{"day", "week", "month", "year", "hour", "hrs", "yr", "mos"}

var currencyMarkers = []string{"$", "usd", "dollar"}

// MoneyCandidate is one number considered as money, accepted or not
type MoneyCandidate struct {
	Start  int
	End    int
	Raw    string
	Found  bool
	Reason string
	Money  model.Money
}

// ScanMoney considers every number in text and records why it was or was not money
func ScanMoney(text string) []MoneyCandidate {
	var out []MoneyCandidate
	spans := Sentences(text)

	for _, loc := range moneyPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		c := MoneyCandidate{Start: loc[0], End: loc[1], Raw: raw}

		switch {
		case nextToPercent(text, loc[1]):
			c.Reason = "percentage"
		case hasTimeUnit(strings.ToLower(window(text, loc[0], loc[1], unitWindow, unitWindow))):
			c.Reason = "time period"
		case !hasCurrency(enclosingText(text, spans, loc[0], loc[1])):
			c.Reason = "no currency marker"
		}
		if c.Reason != "" {
			out = append(out, c)
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if err != nil {
			c.Reason = "invalid number"
			out = append(out, c)
			continue
		}

		c.Found = true
		c.Money = model.Money{Value: value, Currency: "$", RawText: moneyRaw(text, loc[0], raw)}
		out = append(out, c)
	}

	return out
}

// ExtractMoney returns accepted money amounts in order of appearance
func ExtractMoney(text string) []model.Money {
	var out []model.Money
	for _, c := range ScanMoney(text) {
		if c.Found {
			out = append(out, c.Money)
		}
	}
	return out
}

// DedupeMoney keeps the first occurrence of each value
func DedupeMoney(in []model.Money) []model.Money {
	var out []model.Money
	seen := make(map[float64]bool)
	for _, m := range in {
		if seen[m.Value] {
			continue
		}
		seen[m.Value] = true
		out = append(out, m)
	}
	return out
}

func nextToPercent(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t")
	return strings.HasPrefix(rest, "%")
}

func hasTimeUnit(win string) bool {
	for _, w := range timeUnitWords {
		if strings.Contains(win, w) {
			return true
		}
	}
	return false
}

func hasCurrency(s string) bool {
	lower := strings.ToLower(s)
	for _, m := range currencyMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// enclosingText returns the sentence holding the match, or a fixed window around it
func enclosingText(text string, spans []Span, start, end int) string {
	if s, ok := SentenceAt(spans, start); ok {
		return text[s.Start:s.End]
	}
	return window(text, start, end, fallbackWindow, fallbackWindow)
}

// moneyRaw includes a directly preceding dollar sign in the raw text
func moneyRaw(text string, start int, raw string) string {
	if start > 0 && text[start-1] == '$' {
		return "$" + raw
	}
	return raw
}
