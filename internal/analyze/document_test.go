package analyze

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ppiankov/clariscan/internal/match"
	"github.com/ppiankov/clariscan/internal/model"
)

const endToEnd = "1. Termination. Either party may terminate this agreement at any time without cause upon 5 days written notice. " +
	"2. Payment. Late payments incur a penalty of 2% per month."

func TestAnalyzeDocument_EndToEnd(t *testing.T) {
	doc, err := NewAnalyzer(nil).AnalyzeDocument(endToEnd)
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}

	if len(doc.High) == 0 || doc.High[0].RuleID != "UNILATERAL_TERMINATION" {
		t.Fatalf("Expected UNILATERAL_TERMINATION as top high finding, got %+v", doc.High)
	}
	if doc.High[0].Confidence != 40 {
		t.Errorf("Expected confidence 40, got %d", doc.High[0].Confidence)
	}

	if len(doc.TimeConstraints) != 1 {
		t.Fatalf("Expected 1 time constraint, got %d", len(doc.TimeConstraints))
	}
	tc := doc.TimeConstraints[0]
	if tc.Value != 5 || tc.Unit != model.UnitDays || tc.Severity != model.DeadlineShort || tc.AppliesTo != "termination" {
		t.Errorf("Unexpected time constraint %+v", tc)
	}

	if len(doc.Percentages) != 1 {
		t.Fatalf("Expected 1 percentage, got %d", len(doc.Percentages))
	}
	p := doc.Percentages[0]
	if p.Value != 2.0 || p.Frequency != model.FrequencyPerMonth {
		t.Errorf("Unexpected percentage %+v", p)
	}
	if p.Context != model.ContextPenalty && p.Context != model.ContextInterest {
		t.Errorf("Expected penalty or interest context, got %q", p.Context)
	}
	if p.AnnualEquivalent == nil || *p.AnnualEquivalent != 24.0 {
		t.Errorf("Expected annual equivalent 24.0, got %v", p.AnnualEquivalent)
	}

	if len(doc.Money) != 0 {
		t.Errorf("Expected no money facts, got %+v", doc.Money)
	}
	if doc.Disclaimer != model.Disclaimer {
		t.Error("Expected disclaimer")
	}
}

func TestAnalyzeDocument_Overview(t *testing.T) {
	doc, err := NewAnalyzer(nil).AnalyzeDocument(endToEnd)
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}

	// High: termination 40, liquidated damages 25; Medium: notice period 50, late fees 50
	o := doc.Overview
	if o.HighCount != 2 || o.MediumCount != 2 || o.LowCount != 0 {
		t.Fatalf("Unexpected counts %+v", o)
	}
	if o.WeightedCount != 16 || o.OverallRisk != model.RiskLow {
		t.Errorf("Expected weighted 16 / Low, got %d / %s", o.WeightedCount, o.OverallRisk)
	}
	// (3*40 + 3*25 + 2*50 + 2*50) / 1000 * 100 = 39.5
	if o.RiskScore != 40 {
		t.Errorf("Expected risk score 40, got %d", o.RiskScore)
	}

	wantSummary := "This document carries an overall low level of risk. " +
		"It contains 2 high-risk clauses, 2 important obligations, and 0 standard terms. " +
		"Several clauses may result in fees or financial penalties. " +
		"You may be giving up important legal rights in some sections. " +
		"Review the highlighted items carefully before agreeing."
	if doc.PlainEnglishSummary != wantSummary {
		t.Errorf("Summary mismatch:\n got: %s\nwant: %s", doc.PlainEnglishSummary, wantSummary)
	}

	if len(doc.ActionChecklist) != 4 {
		t.Errorf("Expected 4 checklist items, got %v", doc.ActionChecklist)
	}
	if doc.ActionChecklist[0] != doc.High[0].Suggestion {
		t.Errorf("Expected checklist to start with the top high finding")
	}

	wantBreakdown := map[string]int{"termination": 1, "payment": 2, "general": 1}
	if diff := cmp.Diff(wantBreakdown, doc.CategoryBreakdown); diff != "" {
		t.Errorf("Category breakdown mismatch (-want +got):\n%s", diff)
	}

	if len(doc.Buckets.TerminationAndExit) != 1 || len(doc.Buckets.RightsYouLose) != 1 {
		t.Errorf("Unexpected buckets %+v", doc.Buckets)
	}
	if len(doc.Consequences) != 2 || doc.Consequences[0].Label != "termination" || doc.Consequences[1].Label != "penalty" {
		t.Errorf("Unexpected consequences %+v", doc.Consequences)
	}
	if len(doc.ReviewNow) != 2 || len(doc.ReviewSoon) != 2 {
		t.Errorf("Unexpected review lists: now=%d soon=%d", len(doc.ReviewNow), len(doc.ReviewSoon))
	}
}

func TestAnalyzeDocument_Deterministic(t *testing.T) {
	a := NewAnalyzer(nil)

	first, err := a.AnalyzeDocument(endToEnd)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := a.AnalyzeDocument(endToEnd)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Reports differ (-first +second):\n%s", diff)
	}

	b1, _ := json.Marshal(first)
	b2, _ := json.Marshal(second)
	if string(b1) != string(b2) {
		t.Error("Expected byte-identical JSON")
	}
}

func TestAnalyzeDocument_OneFindingPerRule(t *testing.T) {
	c := syntheticCatalog(t, model.Rule{ID: "INDEMNITY", RiskLevel: model.RiskHigh, Keywords: []string{"indemnify", "hold harmless"}})

	text := "The supplier shall indemnify the customer. " +
		"Later on, the customer shall also indemnify and hold harmless the supplier."
	doc, err := NewAnalyzer(c).AnalyzeDocument(text)
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}

	if len(doc.High) != 1 {
		t.Fatalf("Expected exactly one finding, got %d", len(doc.High))
	}
	if doc.High[0].Confidence != 100 {
		t.Errorf("Expected the higher confidence to win, got %d", doc.High[0].Confidence)
	}
}

func TestDedupeFindings(t *testing.T) {
	in := []model.Finding{
		{RuleID: "A", Confidence: 40},
		{RuleID: "B", Confidence: 50},
		{RuleID: "A", Confidence: 70},
		{RuleID: "B", Confidence: 10},
	}

	got := dedupeFindings(in)
	want := []model.Finding{{RuleID: "A", Confidence: 70}, {RuleID: "B", Confidence: 50}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dedupeFindings mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeDocument_FailureBecomesSentinel(t *testing.T) {
	a := NewAnalyzer(nil)
	a.evaluate = func([]model.Rule, string) []match.Candidate {
		panic("matcher exploded")
	}

	_, err := a.AnalyzeDocument(endToEnd)
	if !errors.Is(err, ErrAnalysis) {
		t.Fatalf("Expected ErrAnalysis, got %v", err)
	}

	doc := a.Document(endToEnd)
	if doc.Overview.OverallRisk != model.RiskUnknown {
		t.Errorf("Expected Unknown risk, got %s", doc.Overview.OverallRisk)
	}
	if !doc.Failed() || !strings.Contains(doc.Error, "matcher exploded") {
		t.Errorf("Expected error to carry the cause, got %q", doc.Error)
	}
	if doc.PlainEnglishSummary != "Analysis failed due to an internal error." {
		t.Errorf("Unexpected summary %q", doc.PlainEnglishSummary)
	}
	if len(doc.Findings()) != 0 || len(doc.ActionChecklist) != 0 || len(doc.CategoryBreakdown) != 0 {
		t.Error("Expected empty collections")
	}
	if doc.High == nil || doc.Buckets.Deadlines == nil || doc.TimeConstraints == nil {
		t.Error("Expected empty collections to be non-nil")
	}
	if doc.Disclaimer == "" {
		t.Error("Expected disclaimer on failed report")
	}
}

func TestBuildBuckets_MultipleMembership(t *testing.T) {
	f := model.Finding{RuleID: "X", Summary: "You must pay a fee within 10 days or waive your rights."}
	b := buildBuckets([]model.Finding{f})

	if len(b.Deadlines) != 1 || len(b.PaymentsAndFees) != 1 || len(b.YourObligations) != 1 || len(b.RightsYouLose) != 1 {
		t.Errorf("Expected the finding in four buckets, got %+v", b)
	}
	if len(b.DataAndPrivacy) != 0 || len(b.LiabilityExposure) != 0 || len(b.TerminationAndExit) != 0 {
		t.Errorf("Unexpected bucket membership %+v", b)
	}
}

func TestBuildBuckets_SubstringTriggers(t *testing.T) {
	f := model.Finding{RuleID: "X", Summary: "Disputes go to a nearby court. Metadata is retained."}
	b := buildBuckets([]model.Finding{f})

	if len(b.Deadlines) != 1 {
		t.Errorf("Expected by inside nearby to place the finding in deadlines, got %+v", b.Deadlines)
	}
	if len(b.DataAndPrivacy) != 1 {
		t.Errorf("Expected data inside metadata to place the finding in privacy, got %+v", b.DataAndPrivacy)
	}
	if len(b.TerminationAndExit) != 0 {
		t.Errorf("Unexpected termination membership %+v", b.TerminationAndExit)
	}
}

func TestBuildChecklist_DedupesAndCaps(t *testing.T) {
	var high []model.Finding
	for i := 0; i < 25; i++ {
		high = append(high, model.Finding{Suggestion: strings.Repeat("x", i+1)})
	}
	medium := []model.Finding{{Suggestion: "x"}}

	got := buildChecklist(high, medium)
	if len(got) != 20 {
		t.Errorf("Expected checklist capped at 20, got %d", len(got))
	}

	got = buildChecklist([]model.Finding{{Suggestion: "a"}, {Suggestion: "a"}}, []model.Finding{{Suggestion: "b"}, {Suggestion: ""}})
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("Expected [a b], got %v", got)
	}
}
