package model

import "time"

// Disclaimer is attached to every document report
const Disclaimer = "This analysis is for informational purposes only and does not constitute legal advice."

// Finding is one triggered rule with its transparent scoring data
type Finding struct {
	RuleID          string    `json:"rule_id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Category        string    `json:"category"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Suggestion      string    `json:"suggestion"`
	Consequence     string    `json:"consequence,omitempty"`
	Enforcement     string    `json:"enforcement,omitempty"`
	AppliesTo       []string  `json:"applies_to,omitempty"`
	Confidence      int       `json:"confidence"`
	EffectiveHits   int       `json:"effective_hits"`
	MatchedKeywords []string  `json:"matched_keywords,omitempty"`
}

// ClauseResult is the classification of a single clause
type ClauseResult struct {
	ClauseType      string           `json:"clause_type"`
	RuleID          string           `json:"rule_id,omitempty"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	Confidence      int              `json:"confidence"`
	Explanation     string           `json:"explanation"`
	Suggestion      string           `json:"suggestion"`
	Consequence     string           `json:"consequence,omitempty"`
	Enforcement     string           `json:"enforcement,omitempty"`
	MatchedKeywords []string         `json:"matched_keywords,omitempty"`
	MatchedSentence string           `json:"matched_sentence,omitempty"`
	Obligation      Obligation       `json:"obligation,omitempty"`
	ObligationNote  string           `json:"obligation_note,omitempty"`
	TimeConstraints []TimeConstraint `json:"time_constraints"`
	Percentages     []Percentage     `json:"percentages"`
	Money           []Money          `json:"money"`
	ImportantTerms  []TermMatch      `json:"important_terms"`
	Important       []string         `json:"important_but_not_risky"`
}

// Signal types
const (
	SignalRiskScore     = "risk_score"
	SignalWeightedCount = "weighted_count"
	SignalHighDensity   = "high_risk_density"
)

// Signal is a diagnostic value with the formula that produced it
type Signal struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// RiskOverview holds both aggregate risk measures of a document.
// RiskScore weighs findings by confidence; WeightedCount drives OverallRisk.
type RiskOverview struct {
	OverallRisk   RiskLevel `json:"overall_risk"`
	RiskScore     int       `json:"risk_score"`
	WeightedCount int       `json:"weighted_count"`
	HighCount     int       `json:"high_count"`
	MediumCount   int       `json:"medium_count"`
	LowCount      int       `json:"low_count"`
	Signals       []Signal  `json:"signals,omitempty"`
}

// Buckets group findings by what they mean to the reader. A finding can be in several.
type Buckets struct {
	Deadlines          []Finding `json:"deadlines"`
	PaymentsAndFees    []Finding `json:"payments_and_fees"`
	YourObligations    []Finding `json:"your_obligations"`
	RightsYouLose      []Finding `json:"rights_you_lose"`
	TerminationAndExit []Finding `json:"termination_and_exit"`
	LiabilityExposure  []Finding `json:"liability_exposure"`
	DataAndPrivacy     []Finding `json:"data_and_privacy"`
}

// DocumentReport is the whole-document analysis
type DocumentReport struct {
	Overview            RiskOverview     `json:"overview"`
	High                []Finding        `json:"high_risk"`
	Medium              []Finding        `json:"medium_risk"`
	Low                 []Finding        `json:"low_risk"`
	ReviewNow           []Finding        `json:"review_now"`
	ReviewSoon          []Finding        `json:"review_soon"`
	Buckets             Buckets          `json:"buckets"`
	ActionChecklist     []string         `json:"action_checklist"`
	CategoryBreakdown   map[string]int   `json:"category_breakdown"`
	PlainEnglishSummary string           `json:"plain_english_summary"`
	TimeConstraints     []TimeConstraint `json:"time_constraints"`
	Percentages         []Percentage     `json:"percentages"`
	Money               []Money          `json:"money"`
	Consequences        []Consequence    `json:"consequences"`
	ImportantTerms      []TermMatch      `json:"important_terms"`
	Disclaimer          string           `json:"disclaimer"`
	Error               string           `json:"error,omitempty"`
}

// Findings returns every finding ordered High, Medium, Low
func (d *DocumentReport) Findings() []Finding {
	out := make([]Finding, 0, len(d.High)+len(d.Medium)+len(d.Low))
	out = append(out, d.High...)
	out = append(out, d.Medium...)
	return append(out, d.Low...)
}

// Failed reports whether the document analysis ended in the Unknown sentinel
func (d *DocumentReport) Failed() bool {
	return d.Error != ""
}

// DocumentType is the detector's verdict
type DocumentType string

const (
	TypeContract    DocumentType = "contract"
	TypeNonContract DocumentType = "non_contract"
)

// Detection is the document type detector result
type Detection struct {
	DocumentType  DocumentType `json:"document_type"`
	Confidence    float64      `json:"confidence"`
	Reason        string       `json:"reason"`
	ContractScore int          `json:"contract_score"`
	OtherScore    int          `json:"non_contract_score"`
}

// Status of a pipeline run
type Status string

const (
	StatusAnalyzed    Status = "analyzed"
	StatusNonContract Status = "non_contract"
	StatusFailed      Status = "failed"
)

// Report is the complete output of one pipeline run
type Report struct {
	Subject      string          `json:"subject"`
	Source       string          `json:"source"`
	AnalyzedAt   time.Time       `json:"analyzed_at"`
	Status       Status          `json:"status"`
	Message      string          `json:"message,omitempty"`
	Detection    Detection       `json:"detection"`
	Document     *DocumentReport `json:"document,omitempty"`
	Clauses      []ClauseReport  `json:"clauses,omitempty"`
	TotalClauses int             `json:"total_clauses"`
	FetchMeta    *FetchMeta      `json:"fetch_meta,omitempty"`
}

// ClauseReport pairs a clause's text with its analysis
type ClauseReport struct {
	Index    int          `json:"index"`
	Text     string       `json:"clause_text"`
	Analysis ClauseResult `json:"analysis"`
}

// FetchMeta contains HTTP metadata from fetching a remote source
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}
