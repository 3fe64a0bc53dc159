package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

var percentPattern = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)

// percentWindow is the number of characters inspected on each side of a percentage
const percentWindow = 40

// PercentCandidate is one percentage match with an explicit found flag
type PercentCandidate struct {
	Start      int
	End        int
	Found      bool
	Reason     string
	Percentage model.Percentage
}

// ScanPercentages returns every percentage match, classified by its surroundings
func ScanPercentages(text string) []PercentCandidate {
	var out []PercentCandidate

	for _, loc := range percentPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		c := PercentCandidate{Start: loc[0], End: loc[1]}

		num := strings.TrimSpace(strings.TrimSuffix(raw, "%"))
		value, err := strconv.ParseFloat(num, 64)
		if err != nil {
			c.Reason = "invalid number"
			out = append(out, c)
			continue
		}

		win := strings.ToLower(window(text, loc[0], loc[1], percentWindow, percentWindow))
		p := model.Percentage{
			Value:     value,
			RawText:   raw,
			Context:   percentContext(win),
			Frequency: percentFrequency(win),
		}
		normalizeRate(&p)

		c.Found = true
		c.Percentage = p
		out = append(out, c)
	}

	return out
}

// ExtractPercentages returns accepted percentages in order of appearance
func ExtractPercentages(text string) []model.Percentage {
	var out []model.Percentage
	for _, c := range ScanPercentages(text) {
		if c.Found {
			out = append(out, c.Percentage)
		}
	}
	return out
}

func percentContext(win string) model.PercentContext {
	switch {
	case HasWordPrefix(win, "interest"):
		return model.ContextInterest
	case HasWordPrefix(win, "penalt"), HasWordPrefix(win, "fine"):
		return model.ContextPenalty
	case HasWordPrefix(win, "late"):
		return model.ContextLatePayment
	default:
		return model.ContextNone
	}
}

func percentFrequency(win string) model.Frequency {
	switch {
	case strings.Contains(win, "per month"), strings.Contains(win, "monthly"), strings.Contains(win, "a month"):
		return model.FrequencyPerMonth
	case strings.Contains(win, "per week"), strings.Contains(win, "weekly"):
		return model.FrequencyPerWeek
	case strings.Contains(win, "per year"), strings.Contains(win, "per annum"), strings.Contains(win, "annually"), strings.Contains(win, "annual"):
		return model.FrequencyPerYear
	default:
		return model.FrequencyNone
	}
}

// normalizeRate sets the annual equivalent when the frequency is known
func normalizeRate(p *model.Percentage) {
	var factor float64
	switch p.Frequency {
	case model.FrequencyPerMonth:
		factor = 12
	case model.FrequencyPerWeek:
		factor = 52
	case model.FrequencyPerYear:
		factor = 1
	default:
		return
	}

	annual := round2(p.Value * factor)
	p.AnnualEquivalent = &annual
	p.NormalizedUnit = model.FrequencyPerYear
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DedupePercentages keeps the first occurrence of each (value, context, frequency)
func DedupePercentages(in []model.Percentage) []model.Percentage {
	var out []model.Percentage
	seen := make(map[string]bool)
	for _, p := range in {
		key := strconv.FormatFloat(p.Value, 'f', -1, 64) + "|" + string(p.Context) + "|" + string(p.Frequency)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
