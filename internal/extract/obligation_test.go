package extract

import (
	"testing"

	"github.com/ppiankov/clariscan/internal/model"
)

func TestClassifyObligation(t *testing.T) {
	tests := []struct {
		text  string
		found bool
		label model.Obligation
	}{
		{"Either party may terminate this agreement.", true, model.ObligationTermination},
		{"Invoices are payable within 30 days.", true, model.ObligationPayment},
		{"Upon termination the customer shall pay all fees.", true, model.ObligationTermination},
		{"The supplier shall report incidents promptly.", true, model.ObligationReporting},
		{"The breaching party may cure within 10 days.", true, model.ObligationCure},
		{"You must return all materials.", true, model.ObligationReturn},
		{"Contractor shall maintain insurance.", true, model.ObligationInsurance},
		{"This section contains headings only.", false, ""},
	}

	for _, tt := range tests {
		got := ClassifyObligation(tt.text)
		if got.Found != tt.found {
			t.Errorf("ClassifyObligation(%q).Found = %v, want %v", tt.text, got.Found, tt.found)
			continue
		}
		if got.Label != tt.label {
			t.Errorf("ClassifyObligation(%q).Label = %q, want %q", tt.text, got.Label, tt.label)
		}
		if tt.found && got.Explanation == "" {
			t.Errorf("ClassifyObligation(%q) missing explanation", tt.text)
		}
	}
}

func TestClassifyObligation_Keyword(t *testing.T) {
	got := ClassifyObligation("Invoices are payable within 30 days.")
	if got.Keyword != "payable" {
		t.Errorf("expected keyword payable, got %q", got.Keyword)
	}
}

func TestExtractConsequences(t *testing.T) {
	text := "We may suspend your account and charge a late fee. Repeated breach leads to termination."
	got := ExtractConsequences(text)

	want := []string{"termination", "service_suspension", "penalty"}
	if len(got) != len(want) {
		t.Fatalf("expected %d consequences, got %d: %+v", len(want), len(got), got)
	}
	for i, c := range got {
		if c.Label != want[i] {
			t.Errorf("consequence %d = %q, want %q", i, c.Label, want[i])
		}
		if c.Message == "" {
			t.Errorf("consequence %q has no message", c.Label)
		}
	}
}

func TestExtractConsequences_None(t *testing.T) {
	if got := ExtractConsequences("The parties agree to cooperate in good faith."); len(got) != 0 {
		t.Errorf("expected no consequences, got %+v", got)
	}
}

func TestMatchTerms(t *testing.T) {
	terms := []model.ImportantTerm{
		{ID: "EFFECTIVE_DATE", Title: "Effective date", Keywords: []string{"effective date", "commencement date"}, Importance: model.ImportanceHigh},
		{ID: "GOVERNING_LAW_CHOICE", Title: "Governing law", Keywords: []string{"governing law"}, Importance: model.ImportanceMedium},
	}

	got := MatchTerms("This Agreement starts on the Effective Date.", terms)
	if len(got) != 1 {
		t.Fatalf("expected 1 term, got %d", len(got))
	}
	if got[0].ID != "EFFECTIVE_DATE" || len(got[0].Matched) != 1 || got[0].Matched[0] != "effective date" {
		t.Errorf("unexpected match: %+v", got[0])
	}
}
