package model

// TimeUnit is the canonical unit of a time constraint
type TimeUnit string

const (
	UnitHours  TimeUnit = "hours"
	UnitDays   TimeUnit = "days"
	UnitWeeks  TimeUnit = "weeks"
	UnitMonths TimeUnit = "months"
	UnitYears  TimeUnit = "years"
)

// DeadlineSeverity classifies how pressing a time constraint is
type DeadlineSeverity string

const (
	DeadlineUrgent DeadlineSeverity = "urgent"
	DeadlineShort  DeadlineSeverity = "short"
	DeadlineNormal DeadlineSeverity = "normal"
	DeadlineLong   DeadlineSeverity = "long"
)

// TimeConstraint is a time period found in contract text
type TimeConstraint struct {
	Value      int              `json:"value"`
	Unit       TimeUnit         `json:"unit"`
	RawText    string           `json:"raw_text"`
	Severity   DeadlineSeverity `json:"severity"`
	Obligation string           `json:"obligation,omitempty"` // e.g. "termination notice"
	AppliesTo  string           `json:"applies_to,omitempty"` // e.g. "Agreement termination"
	Trigger    string           `json:"trigger,omitempty"`
}

// PercentContext names what a percentage is charged for
type PercentContext string

const (
	ContextNone        PercentContext = ""
	ContextInterest    PercentContext = "interest"
	ContextPenalty     PercentContext = "penalty"
	ContextLatePayment PercentContext = "late_payment"
)

// Frequency is the period a rate applies to
type Frequency string

const (
	FrequencyNone     Frequency = ""
	FrequencyPerWeek  Frequency = "per_week"
	FrequencyPerMonth Frequency = "per_month"
	FrequencyPerYear  Frequency = "per_year"
)

// Percentage is a rate found in contract text
type Percentage struct {
	Value            float64        `json:"value"`
	RawText          string         `json:"raw_text"`
	Context          PercentContext `json:"context,omitempty"`
	Frequency        Frequency      `json:"frequency,omitempty"`
	AnnualEquivalent *float64       `json:"annual_equivalent,omitempty"`
	NormalizedUnit   Frequency      `json:"normalized_unit,omitempty"`
}

// Money is a currency amount found in contract text
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	RawText  string  `json:"raw_text"`
}

// Obligation is a coarse label for what a clause asks of a party
type Obligation string

const (
	ObligationNone        Obligation = ""
	ObligationTermination Obligation = "termination"
	ObligationPayment     Obligation = "payment"
	ObligationReporting   Obligation = "reporting"
	ObligationCure        Obligation = "cure"
	ObligationReturn      Obligation = "return"
	ObligationInsurance   Obligation = "insurance"
)

// Consequence is a practical outcome described by the text
type Consequence struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// TermMatch is an important term found in the text
type TermMatch struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Importance Importance `json:"importance"`
	Category   string     `json:"category"`
	Display    string     `json:"display,omitempty"`
	Matched    []string   `json:"matched"`
}
