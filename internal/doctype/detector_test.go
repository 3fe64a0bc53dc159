package doctype

import (
	"strings"
	"testing"

	"github.com/ppiankov/clariscan/internal/model"
)

const endToEndContract = "1. Termination. Either party may terminate this agreement at any time without cause upon 5 days written notice. " +
	"2. Payment. Late payments incur a penalty of 2% per month."

func TestDetect_Contract(t *testing.T) {
	det := Detect(endToEndContract)

	if det.DocumentType != model.TypeContract {
		t.Fatalf("Expected contract, got %s (%s)", det.DocumentType, det.Reason)
	}
	// agreement, party, termination, payment at 2 points plus the early agreement bonus
	if det.ContractScore != 13 {
		t.Errorf("Expected contract score 13, got %d", det.ContractScore)
	}
	if det.Confidence != 1.0 {
		t.Errorf("Expected confidence 1.0, got %v", det.Confidence)
	}
	if !strings.Contains(det.Reason, "agreement") {
		t.Errorf("Expected reason to mention matched keywords, got %q", det.Reason)
	}
}

func TestDetect_Resume(t *testing.T) {
	text := "Jane Smith. Education: BSc Computer Science, State University. " +
		"Skills: Go, SQL, Kubernetes. Experience: five years as a backend engineer."

	det := Detect(text)
	if det.DocumentType != model.TypeNonContract {
		t.Fatalf("Expected non_contract, got %s", det.DocumentType)
	}
	if det.OtherScore != 8 {
		t.Errorf("Expected non-contract score 8, got %d", det.OtherScore)
	}
	if det.Confidence != 1.0 {
		t.Errorf("Expected confidence 1.0, got %v", det.Confidence)
	}
}

func TestDetect_TooFewIndicators(t *testing.T) {
	det := Detect("A short note mentioning one party.")

	if det.DocumentType != model.TypeNonContract {
		t.Fatalf("Expected non_contract, got %s", det.DocumentType)
	}
	if det.ContractScore != 2 {
		t.Errorf("Expected contract score 2, got %d", det.ContractScore)
	}
	if det.Confidence != 0 {
		t.Errorf("Expected confidence 0, got %v", det.Confidence)
	}
	if !strings.Contains(det.Reason, "Too few") {
		t.Errorf("Unexpected reason %q", det.Reason)
	}
}

func TestDetect_Empty(t *testing.T) {
	det := Detect("")
	if det.DocumentType != model.TypeNonContract || det.Confidence != 0 {
		t.Errorf("Expected non_contract with zero confidence, got %+v", det)
	}
}

func TestDetect_ConfidenceRounded(t *testing.T) {
	// contract: agreement, party, shall (6) + bonus 5 = 11; other: education (2)
	det := Detect("This agreement binds each party who shall attend the education session.")
	if det.DocumentType != model.TypeContract {
		t.Fatalf("Expected contract, got %s", det.DocumentType)
	}
	if det.Confidence != 0.85 {
		t.Errorf("Expected confidence 0.85, got %v", det.Confidence)
	}
}

func TestHasLeadingAgreement(t *testing.T) {
	if !hasLeadingAgreement("Service Agreement between the parties") {
		t.Error("Expected agreement at the start to count")
	}

	late := strings.Repeat("filler text ", 100) + "agreement"
	if hasLeadingAgreement(late) {
		t.Error("Expected agreement at the end of a long text not to count")
	}

	// within the 200 character minimum even though past 20% of a short text
	short := strings.Repeat("x", 150) + " agreement"
	if !hasLeadingAgreement(short) {
		t.Error("Expected the 200 character minimum lead to apply")
	}
}

func TestDetector_CustomKeywords(t *testing.T) {
	d := &Detector{
		contractKeywords: []string{"lease", "tenant", "landlord"},
		otherKeywords:    []string{"menu"},
	}
	det := d.Detect("The landlord and tenant sign this lease.")
	if det.DocumentType != model.TypeContract || det.ContractScore != 6 {
		t.Errorf("Expected contract with score 6, got %+v", det)
	}
}
