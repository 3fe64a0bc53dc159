package analyze

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ppiankov/clariscan/internal/catalog"
	"github.com/ppiankov/clariscan/internal/model"
)

func keywords(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i+1)
	}
	return out
}

func syntheticCatalog(t *testing.T, rules ...model.Rule) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(rules, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestAnalyzeClause_SeverityBeatsConfidence(t *testing.T) {
	c := syntheticCatalog(t,
		model.Rule{ID: "MEDIUM_RULE", Title: "Medium", RiskLevel: model.RiskMedium, Keywords: keywords("mkey", 20)},
		model.Rule{ID: "HIGH_RULE", Title: "High", RiskLevel: model.RiskHigh, Keywords: keywords("hkey", 5)},
	)
	// two adjacent high keywords: 2 hits + proximity = 3/5 = 60
	// eighteen medium keywords: 18 hits + proximity = 19/20 = 95
	text := "hkey01 hkey02 " + strings.Join(keywords("mkey", 18), " ")

	res := NewAnalyzer(c).AnalyzeClause(text)

	if res.RuleID != "HIGH_RULE" {
		t.Fatalf("Expected HIGH_RULE to win, got %s", res.RuleID)
	}
	if res.Confidence != 60 {
		t.Errorf("Expected confidence 60, got %d", res.Confidence)
	}
	if res.RiskLevel != model.RiskHigh {
		t.Errorf("Expected High risk, got %s", res.RiskLevel)
	}

	doc, err := NewAnalyzer(c).AnalyzeDocument(text)
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}
	if len(doc.Medium) != 1 || doc.Medium[0].Confidence != 95 {
		t.Errorf("Expected medium finding at 95, got %+v", doc.Medium)
	}
}

func TestAnalyzeClause_GeneralStillCarriesFacts(t *testing.T) {
	c := syntheticCatalog(t, model.Rule{ID: "ARB", RiskLevel: model.RiskHigh, Keywords: []string{"arbitration"}})

	res := NewAnalyzer(c).AnalyzeClause("Invoices are payable within 30 days.")

	if res.ClauseType != "General" || res.RiskLevel != model.RiskLow {
		t.Errorf("Expected General/Low, got %s/%s", res.ClauseType, res.RiskLevel)
	}
	if res.RuleID != "" || res.Confidence != 0 {
		t.Errorf("Expected no rule, got %s at %d", res.RuleID, res.Confidence)
	}
	if res.Obligation != model.ObligationPayment {
		t.Errorf("Expected payment obligation, got %q", res.Obligation)
	}
	if len(res.TimeConstraints) != 1 {
		t.Fatalf("Expected 1 time constraint, got %d", len(res.TimeConstraints))
	}
	tc := res.TimeConstraints[0]
	if tc.Value != 30 || tc.Severity != model.DeadlineNormal || tc.Trigger != "Invoice payment" {
		t.Errorf("Unexpected time constraint %+v", tc)
	}

	want := []string{"Deadline: 30 days (normal)", "Obligation: payment"}
	if strings.Join(res.Important, "|") != strings.Join(want, "|") {
		t.Errorf("Important = %v, want %v", res.Important, want)
	}
	if res.Percentages == nil || res.Money == nil {
		t.Error("Expected empty fact lists to be non-nil")
	}
}

func TestAnalyzeClause_DefaultCatalog(t *testing.T) {
	a := NewAnalyzer(nil)

	res := a.AnalyzeClause("1. Termination. Either party may terminate this agreement at any time without cause upon 5 days written notice.")
	if res.RuleID != "UNILATERAL_TERMINATION" {
		t.Fatalf("Expected UNILATERAL_TERMINATION, got %s", res.RuleID)
	}
	if res.MatchedSentence != "Either party may terminate this agreement at any time without cause upon 5 days written notice." {
		t.Errorf("Unexpected matched sentence %q", res.MatchedSentence)
	}
	if res.Obligation != model.ObligationTermination {
		t.Errorf("Expected termination obligation, got %q", res.Obligation)
	}
	if len(res.TimeConstraints) != 1 || res.TimeConstraints[0].Obligation != "termination notice" {
		t.Errorf("Unexpected time constraints %+v", res.TimeConstraints)
	}

	res = a.AnalyzeClause("2. Payment. Late payments incur a penalty of 2% per month.")
	if res.RuleID != "LIQUIDATED_DAMAGES_PENALTY" {
		t.Errorf("Expected the High penalty rule to beat the Medium late fee rule, got %s", res.RuleID)
	}
	found := false
	for _, n := range res.Important {
		if n == "Rate: 2% per month penalty (24% per year)" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected rate note, got %v", res.Important)
	}
}

func TestMatchedSentence_PhraseOnly(t *testing.T) {
	c := syntheticCatalog(t, model.Rule{
		ID:        "CONV",
		RiskLevel: model.RiskHigh,
		Keywords:  []string{"sole discretion"},
		Phrases:   []string{"for any reason or no reason"},
	})

	res := NewAnalyzer(c).AnalyzeClause("This is the first sentence. We may end this for any reason or no reason. Thanks.")
	if res.MatchedSentence != "We may end this for any reason or no reason." {
		t.Errorf("Unexpected matched sentence %q", res.MatchedSentence)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		500:     "500",
		1250.5:  "1250.5",
		18:      "18",
		0.25:    "0.25",
		1.005e3: "1005",
	}
	for in, want := range tests {
		if got := formatAmount(in); got != want {
			t.Errorf("formatAmount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestAnalyzeClause_MatchedSentenceForInflectedKeyword(t *testing.T) {
	c := syntheticCatalog(t, model.Rule{ID: "FEES", Title: "Late Fees", RiskLevel: model.RiskMedium, Keywords: []string{"late fee"}})

	res := NewAnalyzer(c).AnalyzeClause("Invoices are due monthly. Late fees apply to every overdue invoice.")

	if res.RuleID != "FEES" {
		t.Fatalf("Expected FEES, got %q", res.RuleID)
	}
	if res.MatchedSentence != "Late fees apply to every overdue invoice." {
		t.Errorf("Unexpected matched sentence %q", res.MatchedSentence)
	}
}
