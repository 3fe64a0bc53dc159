// Package analyze classifies single clauses and whole documents against the
// rule catalog and attaches the extracted facts.
package analyze

import (
	"fmt"
	"strings"

	"github.com/ppiankov/clariscan/internal/catalog"
	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/match"
	"github.com/ppiankov/clariscan/internal/model"
)

const (
	generalClauseType  = "General"
	generalExplanation = "No specific risk pattern was detected in this clause."
	generalSuggestion  = "No action needed beyond a normal read-through."
)

// Analyzer runs the rule matcher and fact extractors over text.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	catalog  *catalog.Catalog
	evaluate func([]model.Rule, string) []match.Candidate
}

// NewAnalyzer creates an analyzer over the given catalog, or the built-in one when nil
func NewAnalyzer(c *catalog.Catalog) *Analyzer {
	if c == nil {
		c = catalog.Default()
	}
	return &Analyzer{catalog: c, evaluate: match.Evaluate}
}

// Catalog returns the catalog the analyzer scores against
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// AnalyzeClause classifies one clause. Facts are attached whether or not a rule triggers.
func (a *Analyzer) AnalyzeClause(text string) model.ClauseResult {
	norm := extract.Normalize(text)
	cands := a.evaluate(a.catalog.Rules(), norm)
	match.Rank(cands)

	res := model.ClauseResult{
		ClauseType:  generalClauseType,
		RiskLevel:   model.RiskLow,
		Explanation: generalExplanation,
		Suggestion:  generalSuggestion,
	}

	if len(cands) > 0 {
		top := cands[0]
		res.ClauseType = top.Rule.Title
		res.RuleID = top.Rule.ID
		res.RiskLevel = top.Rule.RiskLevel
		res.Confidence = top.Result.Confidence
		res.Explanation = top.Rule.Summary
		res.Suggestion = top.Rule.Suggestion
		res.Consequence = top.Rule.Consequence
		res.Enforcement = string(top.Rule.Enforcement)
		res.MatchedKeywords = top.Result.MatchedKeywords
		res.MatchedSentence = matchedSentence(text, top.Result)
	}

	ob := extract.ClassifyObligation(text)
	if ob.Found {
		res.Obligation = ob.Label
		res.ObligationNote = ob.Explanation
	}

	res.TimeConstraints = nonNil(extract.TimesForObligation(text, res.Obligation))
	res.Percentages = nonNil(extract.ExtractPercentages(text))
	res.Money = nonNil(extract.ExtractMoney(text))
	res.ImportantTerms = nonNil(extract.MatchTerms(text, a.catalog.Terms()))
	res.Important = importantNotes(res)

	return res
}

// matchedSentence returns the first sentence holding a matched keyword, or a
// matched phrase when the rule triggered on phrases alone
func matchedSentence(text string, r match.Result) string {
	patterns, occurs := r.MatchedKeywords, match.KeywordOccurs
	if len(patterns) == 0 {
		patterns, occurs = r.MatchedPhrases, match.PhraseOccurs
	}

	for _, s := range extract.Sentences(text) {
		norm := extract.Normalize(s.Text)
		for _, p := range patterns {
			if occurs(norm, p) {
				return s.Text
			}
		}
	}
	return ""
}

// importantNotes lists the facts worth knowing regardless of risk
func importantNotes(res model.ClauseResult) []string {
	notes := []string{}

	for _, tc := range res.TimeConstraints {
		notes = append(notes, fmt.Sprintf("Deadline: %d %s (%s)", tc.Value, tc.Unit, tc.Severity))
	}
	for _, p := range res.Percentages {
		notes = append(notes, "Rate: "+describePercentage(p))
	}
	for _, m := range res.Money {
		notes = append(notes, fmt.Sprintf("Amount: %s%s", m.Currency, formatAmount(m.Value)))
	}
	if res.Obligation != model.ObligationNone {
		notes = append(notes, "Obligation: "+string(res.Obligation))
	}
	for _, t := range res.ImportantTerms {
		notes = append(notes, "Term: "+t.Title)
	}

	return notes
}

func describePercentage(p model.Percentage) string {
	s := formatAmount(p.Value) + "%"
	if p.Frequency != model.FrequencyNone {
		s += " " + strings.ReplaceAll(string(p.Frequency), "_", " ")
	}
	if p.Context != model.ContextNone {
		s += " " + strings.ReplaceAll(string(p.Context), "_", " ")
	}
	if p.AnnualEquivalent != nil && p.Frequency != model.FrequencyPerYear {
		s += fmt.Sprintf(" (%s%% per year)", formatAmount(*p.AnnualEquivalent))
	}
	return s
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// nonNil keeps empty collections serialized as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
