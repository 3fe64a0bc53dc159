// Package doctype decides whether a text looks like a contract before any
// rule analysis runs.
package doctype

import (
	"fmt"
	"math"
	"strings"

	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/model"
)

const (
	keywordPoints     = 2
	agreementBonus    = 5
	minContractScore  = 6
	leadFraction      = 0.2
	minLeadCharacters = 200
	maxReasonKeywords = 5
)

// Detector scores contract and non-contract indicators
type Detector struct {
	contractKeywords []string
	otherKeywords    []string
}

// NewDetector creates a detector with the built-in keyword sets
func NewDetector() *Detector {
	return &Detector{
		contractKeywords: []string{
			"agreement", "contract", "party", "parties", "hereby", "hereinafter",
			"whereas", "terms and conditions", "shall", "liability", "indemnify",
			"termination", "governing law", "obligations", "effective date",
			"warranty", "breach", "confidential information", "in witness whereof",
			"license", "payment", "jurisdiction", "arbitration", "covenant",
		},
		otherKeywords: []string{
			"resume", "curriculum vitae", "education", "skills", "experience",
			"work experience", "employment history", "career objective", "references available",
			"bachelor", "master of", "university", "gpa", "certifications",
			"hobbies", "linkedin", "proficient in", "internship",
			"abstract", "introduction", "conclusion", "bibliography",
			"ingredients", "recipe",
		},
	}
}

var defaultDetector = NewDetector()

// Detect classifies text with the built-in keyword sets
func Detect(text string) model.Detection {
	return defaultDetector.Detect(text)
}

// Detect classifies text as contract or non_contract
func (d *Detector) Detect(text string) model.Detection {
	norm := extract.Normalize(text)

	contractHits := matchAll(norm, d.contractKeywords)
	otherHits := matchAll(norm, d.otherKeywords)

	contractScore := len(contractHits) * keywordPoints
	otherScore := len(otherHits) * keywordPoints
	bonus := hasLeadingAgreement(text)
	if bonus {
		contractScore += agreementBonus
	}

	det := model.Detection{
		DocumentType:  model.TypeContract,
		ContractScore: contractScore,
		OtherScore:    otherScore,
	}

	winner := contractScore
	switch {
	case otherScore > contractScore:
		det.DocumentType = model.TypeNonContract
		winner = otherScore
		det.Reason = fmt.Sprintf("Non-contract indicators outweigh contract indicators (%d vs %d): %s",
			otherScore, contractScore, listKeywords(otherHits))
	case contractScore < minContractScore:
		det.DocumentType = model.TypeNonContract
		winner = otherScore
		det.Reason = fmt.Sprintf("Too few contract indicators (score %d, need %d)", contractScore, minContractScore)
	default:
		det.Reason = fmt.Sprintf("Contract indicators found (%d vs %d): %s",
			contractScore, otherScore, listKeywords(contractHits))
		if bonus {
			det.Reason += "; \"agreement\" appears near the start"
		}
	}

	det.Confidence = confidence(winner, contractScore+otherScore)
	return det
}

func matchAll(norm string, keywords []string) []string {
	var hits []string
	for _, k := range keywords {
		if extract.ContainsTerm(norm, extract.Normalize(k)) {
			hits = append(hits, k)
		}
	}
	return hits
}

// hasLeadingAgreement checks the first 20% of the text, but never less than 200 characters
func hasLeadingAgreement(text string) bool {
	n := max(minLeadCharacters, int(float64(len(text))*leadFraction))
	if n > len(text) {
		n = len(text)
	}
	return extract.ContainsTerm(extract.Normalize(text[:n]), "agreement")
}

func confidence(winner, total int) float64 {
	if total <= 0 {
		return 0
	}
	c := float64(winner) / float64(total)
	c = math.Max(0, math.Min(1, c))
	return math.Round(c*100) / 100
}

func listKeywords(hits []string) string {
	if len(hits) > maxReasonKeywords {
		hits = hits[:maxReasonKeywords]
	}
	return strings.Join(hits, ", ")
}
