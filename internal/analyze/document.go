package analyze

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/match"
	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/score"
)

// ErrAnalysis wraps any failure inside document scoring
var ErrAnalysis = errors.New("document analysis failed")

const (
	maxChecklist  = 20
	maxReviewNow  = 10
	maxReviewSoon = 15
)

const failedSummary = "Analysis failed due to an internal error."

// AnalyzeDocument scores every rule against the whole document and builds
// the human-facing report. Panics during scoring are returned as ErrAnalysis.
func (a *Analyzer) AnalyzeDocument(text string) (rep model.DocumentReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			rep = model.DocumentReport{}
			err = fmt.Errorf("%w: %v", ErrAnalysis, r)
		}
	}()

	findings := dedupeFindings(a.findings(text))
	high, medium, low := partition(findings)

	rep.High = high
	rep.Medium = medium
	rep.Low = low
	rep.Overview = score.NewScorer().Calculate(rep.Findings())
	rep.ReviewNow = head(high, maxReviewNow)
	rep.ReviewSoon = head(medium, maxReviewSoon)
	rep.Buckets = buildBuckets(rep.Findings())
	rep.ActionChecklist = buildChecklist(high, medium)
	rep.CategoryBreakdown = categoryBreakdown(rep.Findings())
	rep.PlainEnglishSummary = plainSummary(rep.Overview, rep.Buckets)

	rep.TimeConstraints = nonNil(extract.TimesWithContext(text))
	rep.Percentages = nonNil(extract.DedupePercentages(extract.ExtractPercentages(text)))
	rep.Money = nonNil(extract.DedupeMoney(extract.ExtractMoney(text)))
	rep.Consequences = nonNil(extract.ExtractConsequences(text))
	rep.ImportantTerms = nonNil(extract.MatchTerms(text, a.catalog.Terms()))
	rep.Disclaimer = model.Disclaimer

	return rep, nil
}

// Document is AnalyzeDocument with failures converted into the Unknown report
func (a *Analyzer) Document(text string) model.DocumentReport {
	rep, err := a.AnalyzeDocument(text)
	if err != nil {
		return FailedReport(err)
	}
	return rep
}

// FailedReport is the Unknown-risk report returned when analysis fails.
// Every collection is empty and Error carries the cause.
func FailedReport(err error) model.DocumentReport {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return model.DocumentReport{
		Overview:            model.RiskOverview{OverallRisk: model.RiskUnknown},
		High:                []model.Finding{},
		Medium:              []model.Finding{},
		Low:                 []model.Finding{},
		ReviewNow:           []model.Finding{},
		ReviewSoon:          []model.Finding{},
		Buckets:             emptyBuckets(),
		ActionChecklist:     []string{},
		CategoryBreakdown:   map[string]int{},
		PlainEnglishSummary: failedSummary,
		TimeConstraints:     []model.TimeConstraint{},
		Percentages:         []model.Percentage{},
		Money:               []model.Money{},
		Consequences:        []model.Consequence{},
		ImportantTerms:      []model.TermMatch{},
		Disclaimer:          model.Disclaimer,
		Error:               msg,
	}
}

func (a *Analyzer) findings(text string) []model.Finding {
	cands := a.evaluate(a.catalog.Rules(), extract.Normalize(text))
	out := make([]model.Finding, 0, len(cands))
	for _, c := range cands {
		out = append(out, toFinding(c))
	}
	return out
}

func toFinding(c match.Candidate) model.Finding {
	return model.Finding{
		RuleID:          c.Rule.ID,
		Title:           c.Rule.Title,
		Summary:         c.Rule.Summary,
		Category:        c.Rule.Category,
		RiskLevel:       c.Rule.RiskLevel,
		Suggestion:      c.Rule.Suggestion,
		Consequence:     c.Rule.Consequence,
		Enforcement:     string(c.Rule.Enforcement),
		AppliesTo:       c.Rule.AppliesTo,
		Confidence:      c.Result.Confidence,
		EffectiveHits:   c.Result.EffectiveHits,
		MatchedKeywords: c.Result.MatchedKeywords,
	}
}

// dedupeFindings keeps one finding per rule ID, the one with the highest
// confidence, at the position of its first occurrence
func dedupeFindings(in []model.Finding) []model.Finding {
	out := make([]model.Finding, 0, len(in))
	index := make(map[string]int, len(in))

	for _, f := range in {
		i, seen := index[f.RuleID]
		if !seen {
			index[f.RuleID] = len(out)
			out = append(out, f)
			continue
		}
		if f.Confidence > out[i].Confidence {
			out[i] = f
		}
	}
	return out
}

// partition splits findings by level, each group sorted by confidence descending
func partition(findings []model.Finding) (high, medium, low []model.Finding) {
	high, medium, low = []model.Finding{}, []model.Finding{}, []model.Finding{}
	for _, f := range findings {
		switch f.RiskLevel {
		case model.RiskHigh:
			high = append(high, f)
		case model.RiskMedium:
			medium = append(medium, f)
		default:
			low = append(low, f)
		}
	}

	for _, group := range [][]model.Finding{high, medium, low} {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Confidence > group[j].Confidence
		})
	}
	return high, medium, low
}

func head(findings []model.Finding, n int) []model.Finding {
	if len(findings) > n {
		findings = findings[:n]
	}
	return append([]model.Finding{}, findings...)
}

func categoryBreakdown(findings []model.Finding) map[string]int {
	counts := make(map[string]int)
	for _, f := range findings {
		cat := f.Category
		if cat == "" {
			cat = "general"
		}
		counts[cat]++
	}
	return counts
}
