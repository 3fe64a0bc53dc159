package model

import (
	"fmt"
	"strings"
)

// RiskLevel classifies how severe a rule finding is
type RiskLevel string

const (
	RiskHigh    RiskLevel = "High"
	RiskMedium  RiskLevel = "Medium"
	RiskLow     RiskLevel = "Low"
	RiskUnknown RiskLevel = "Unknown" // Only used by failed document reports
)

// Rank returns the tie-break precedence of the level (High=3, Medium=2, Low=1)
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// Weight returns the severity weight used by the confidence-weighted risk score
func (r RiskLevel) Weight() int {
	return r.Rank()
}

// Valid reports whether the level can be assigned to a catalog rule
func (r RiskLevel) Valid() bool {
	return r.Rank() > 0
}

// ParseRiskLevel accepts the level in any casing
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "critical", "critical_alert":
		return RiskHigh, nil
	case "medium", "review", "review_required":
		return RiskMedium, nil
	case "low", "note", "general_note":
		return RiskLow, nil
	case "unknown":
		return RiskUnknown, nil
	default:
		return "", fmt.Errorf("unknown risk level %q", s)
	}
}

// UnmarshalText lets rule packs spell levels in lowercase
func (r *RiskLevel) UnmarshalText(text []byte) error {
	level, err := ParseRiskLevel(string(text))
	if err != nil {
		return err
	}
	*r = level
	return nil
}

// Enforcement describes when a rule's consequence takes effect (display only)
type Enforcement string

const (
	EnforcementNone       Enforcement = ""
	EnforcementImmediate  Enforcement = "Immediate"
	EnforcementWithNotice Enforcement = "With Notice"
	EnforcementAfterCure  Enforcement = "After Cure Period"
	EnforcementAlways     Enforcement = "Always Applies"
)

// Rule is an immutable catalog entry pairing detection patterns with a risk classification
type Rule struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Summary     string      `json:"summary" yaml:"summary"`
	Category    string      `json:"category" yaml:"category"`
	RiskLevel   RiskLevel   `json:"risk_level" yaml:"risk_level"`
	Keywords    []string    `json:"keywords" yaml:"keywords"`
	Phrases     []string    `json:"phrases,omitempty" yaml:"phrases,omitempty"`
	Suggestion  string      `json:"suggestion" yaml:"suggestion"`
	MinHits     int         `json:"min_hits" yaml:"min_hits"`
	Consequence string      `json:"consequence,omitempty" yaml:"consequence,omitempty"`
	Enforcement Enforcement `json:"enforcement,omitempty" yaml:"enforcement,omitempty"`
	AppliesTo   []string    `json:"applies_to,omitempty" yaml:"applies_to,omitempty"`
}

// RequiredHits returns MinHits, treating zero as the default of 1
func (r Rule) RequiredHits() int {
	if r.MinHits <= 0 {
		return 1
	}
	return r.MinHits
}

// Importance ranks informational terms
type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
)

// ImportantTerm is an informational extraction target. It never counts as risk.
type ImportantTerm struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Keywords    []string   `json:"keywords" yaml:"keywords"`
	Importance  Importance `json:"importance" yaml:"importance"`
	Display     string     `json:"display,omitempty" yaml:"display,omitempty"`
	Category    string     `json:"category" yaml:"category"`
}
