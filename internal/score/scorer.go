package score

import (
	"fmt"

	"github.com/ppiankov/clariscan/internal/model"
)

// Band thresholds applied to the weighted finding count
const (
	HighThreshold   = 50
	MediumThreshold = 25
)

// Weights used by the weighted finding count
const (
	highCountWeight   = 5
	mediumCountWeight = 3
	lowCountWeight    = 1
)

// Scorer computes the aggregate risk measures of a set of findings
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate produces both risk measures and the signals explaining them.
// The confidence-weighted score and the count-based band answer different
// questions and are not required to agree.
func (s *Scorer) Calculate(findings []model.Finding) model.RiskOverview {
	var signals []model.Signal

	high, medium, low := countLevels(findings)

	// 1. Confidence-weighted risk score (0-100)
	riskScore, riskSignal := s.calculateRiskScore(findings)
	signals = append(signals, riskSignal)

	// 2. Weighted finding count, which drives the overall band
	weighted, weightedSignal := s.calculateWeightedCount(high, medium, low)
	signals = append(signals, weightedSignal)

	// 3. High-risk density
	if densitySignal := s.detectHighDensity(high, len(findings)); densitySignal.Type != "" {
		signals = append(signals, densitySignal)
	}

	return model.RiskOverview{
		OverallRisk:   Band(weighted),
		RiskScore:     riskScore,
		WeightedCount: weighted,
		HighCount:     high,
		MediumCount:   medium,
		LowCount:      low,
		Signals:       signals,
	}
}

// Band maps a weighted count onto High, Medium or Low
func Band(weighted int) model.RiskLevel {
	switch {
	case weighted >= HighThreshold:
		return model.RiskHigh
	case weighted >= MediumThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// RiskScore is round(sum(weight*confidence) / sum(weight*100) * 100), 0 without findings
func RiskScore(findings []model.Finding) int {
	score, _ := NewScorer().calculateRiskScore(findings)
	return score
}

// WeightedCount is high*5 + medium*3 + low
func WeightedCount(findings []model.Finding) int {
	h, m, l := countLevels(findings)
	return h*highCountWeight + m*mediumCountWeight + l*lowCountWeight
}

func countLevels(findings []model.Finding) (high, medium, low int) {
	for _, f := range findings {
		switch f.RiskLevel {
		case model.RiskHigh:
			high++
		case model.RiskMedium:
			medium++
		case model.RiskLow:
			low++
		}
	}
	return high, medium, low
}

// calculateRiskScore calculates the confidence-weighted score (0-100 points)
func (s *Scorer) calculateRiskScore(findings []model.Finding) (int, model.Signal) {
	if len(findings) == 0 {
		return 0, model.Signal{
			Type:        model.SignalRiskScore,
			Description: "No rules triggered",
			Data:        map[string]interface{}{"findings": 0, "score": 0},
		}
	}

	weightedSum := 0
	maxPossible := 0
	for _, f := range findings {
		w := f.RiskLevel.Weight()
		weightedSum += w * f.Confidence
		maxPossible += w * 100
	}

	// Integer round-half-up of weightedSum / maxPossible * 100
	score := 0
	if maxPossible > 0 {
		score = (weightedSum*200 + maxPossible) / (2 * maxPossible)
	}

	return score, model.Signal{
		Type:        model.SignalRiskScore,
		Description: fmt.Sprintf("Confidence-weighted risk score: %d/100 over %d findings", score, len(findings)),
		Data: map[string]interface{}{
			"findings":     len(findings),
			"weighted_sum": weightedSum,
			"max_possible": maxPossible,
			"score":        score,
			"formula":      "round(sum(weight * confidence) / sum(weight * 100) * 100), weight High=3 Medium=2 Low=1",
		},
	}
}

// calculateWeightedCount calculates the count used for the overall band
func (s *Scorer) calculateWeightedCount(high, medium, low int) (int, model.Signal) {
	weighted := high*highCountWeight + medium*mediumCountWeight + low*lowCountWeight
	band := Band(weighted)

	return weighted, model.Signal{
		Type:        model.SignalWeightedCount,
		Description: fmt.Sprintf("Weighted count %d: %d high, %d medium, %d low (%s)", weighted, high, medium, low, band),
		Data: map[string]interface{}{
			"high":    high,
			"medium":  medium,
			"low":     low,
			"count":   weighted,
			"band":    string(band),
			"formula": fmt.Sprintf("high*5 + medium*3 + low*1; >=%d High, >=%d Medium", HighThreshold, MediumThreshold),
		},
	}
}

// detectHighDensity flags documents where most findings are high risk
func (s *Scorer) detectHighDensity(high, total int) model.Signal {
	// Need a few findings before a ratio means anything
	if total < 4 {
		return model.Signal{}
	}

	ratio := float64(high) / float64(total)
	if ratio < 0.5 {
		return model.Signal{}
	}

	return model.Signal{
		Type:        model.SignalHighDensity,
		Description: fmt.Sprintf("%d of %d findings are high risk (%.0f%%)", high, total, ratio*100),
		Data: map[string]interface{}{
			"high":    high,
			"total":   total,
			"ratio":   ratio,
			"formula": "high_count / total_findings >= 0.5",
		},
	}
}
