package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestRiskLevel_Rank(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  int
	}{
		{RiskHigh, 3},
		{RiskMedium, 2},
		{RiskLow, 1},
		{RiskUnknown, 0},
	}

	for _, tt := range tests {
		if got := tt.level.Rank(); got != tt.want {
			t.Errorf("%s.Rank() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestParseRiskLevel(t *testing.T) {
	tests := map[string]RiskLevel{
		"High":            RiskHigh,
		"high":            RiskHigh,
		"critical_alert":  RiskHigh,
		" medium ":        RiskMedium,
		"review_required": RiskMedium,
		"LOW":             RiskLow,
		"general_note":    RiskLow,
	}

	for input, want := range tests {
		got, err := ParseRiskLevel(input)
		if err != nil {
			t.Errorf("ParseRiskLevel(%q) error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseRiskLevel(%q) = %s, want %s", input, got, want)
		}
	}

	if _, err := ParseRiskLevel("severe"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRiskLevel_UnmarshalJSON(t *testing.T) {
	var rule Rule
	if err := json.Unmarshal([]byte(`{"id":"X","risk_level":"medium"}`), &rule); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rule.RiskLevel != RiskMedium {
		t.Errorf("expected Medium, got %s", rule.RiskLevel)
	}
}

func TestRule_RequiredHits(t *testing.T) {
	if got := (Rule{}).RequiredHits(); got != 1 {
		t.Errorf("expected default of 1, got %d", got)
	}
	if got := (Rule{MinHits: 2}).RequiredHits(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Analysis.MinChars != 100 {
		t.Errorf("expected min chars 100, got %d", cfg.Analysis.MinChars)
	}
}

func TestConfig_ValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Concurrency.Workers = 0
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "concurrency.workers") || !strings.Contains(msg, "logging.format") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}

func TestApply_Outcomes(t *testing.T) {
	det := Detection{DocumentType: TypeNonContract, Confidence: 0.8}

	var r Report
	Apply(&r, NonContract{Detection: det})
	if r.Status != StatusNonContract || r.Document != nil || r.Message != NonContractMessage {
		t.Errorf("unexpected non-contract report: %+v", r)
	}

	r = Report{}
	clauses := []ClauseReport{{Index: 0}, {Index: 1}}
	Apply(&r, Analyzed{Document: DocumentReport{Disclaimer: Disclaimer}, Clauses: clauses})
	if r.Status != StatusAnalyzed || r.Document == nil || r.TotalClauses != 2 {
		t.Errorf("unexpected analyzed report: %+v", r)
	}

	r = Report{}
	Apply(&r, Failed{Document: DocumentReport{Error: "boom"}, Err: errors.New("boom")})
	if r.Status != StatusFailed || !r.Document.Failed() || r.Message != "boom" {
		t.Errorf("unexpected failed report: %+v", r)
	}
}
