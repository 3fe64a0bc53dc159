package format

import (
	"fmt"
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

// Truncate shortens s to at most maxLen runes, ending in "..." when cut
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// RiskMark prefixes a risk level with a marker for terminal output
func RiskMark(level model.RiskLevel) string {
	switch level {
	case model.RiskHigh:
		return "✗ High"
	case model.RiskMedium:
		return "! Medium"
	case model.RiskLow:
		return "✓ Low"
	default:
		return "? " + string(level)
	}
}

// Percent renders a 0-100 integer as "NN%"
func Percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// Deadline renders a time constraint as "5 days (short)"
func Deadline(tc model.TimeConstraint) string {
	s := fmt.Sprintf("%d %s (%s)", tc.Value, tc.Unit, tc.Severity)
	if tc.AppliesTo != "" && tc.AppliesTo != "general" {
		s += ", " + tc.AppliesTo
	}
	return s
}

// Rate renders a percentage with its frequency and annual equivalent
func Rate(p model.Percentage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g%%", p.Value)
	if p.Frequency != model.FrequencyNone {
		b.WriteString(" " + strings.ReplaceAll(string(p.Frequency), "_", " "))
	}
	if p.AnnualEquivalent != nil && p.Frequency != model.FrequencyPerYear {
		fmt.Fprintf(&b, " (%g%%/yr)", *p.AnnualEquivalent)
	}
	if p.Context != model.ContextNone {
		b.WriteString(" [" + string(p.Context) + "]")
	}
	return b.String()
}

// FindingsTable renders findings ordered as given
func FindingsTable(m Mode, findings []model.Finding) string {
	t := NewTable(m)
	t.Header("Risk", "Rule", "Confidence", "Category", "Suggestion")
	for _, f := range findings {
		t.Row(RiskMark(f.RiskLevel), f.Title, Percent(f.Confidence), f.Category, Truncate(f.Suggestion, 60))
	}
	t.Columns(Column{Number: 3, Align: AlignRight}, Column{Number: 5, MaxWidth: 60})
	t.Footer("", fmt.Sprintf("%d findings", len(findings)), "", "", "")
	return t.String()
}
