package analyze

import (
	"fmt"
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

// Bucket trigger words, matched as substrings of the lowercased finding summary
var (
	deadlineWords    = []string{"within", "no later than", "by", "before", "after", "days", "months", "years"}
	paymentWords     = []string{"fee", "payment", "penalty", "interest", "charge", "cost"}
	obligationWords  = []string{"must", "required", "shall", "responsible", "obligated"}
	rightsLostWords  = []string{"waive", "arbitration", "class action", "jury trial", "rights"}
	terminationWords = []string{"terminate", "termination", "cancel", "suspend"}
	liabilityWords   = []string{"liability", "indemnify", "damages", "hold harmless"}
	privacyWords     = []string{"data", "privacy", "personal information", "tracking"}
)

func emptyBuckets() model.Buckets {
	return model.Buckets{
		Deadlines:          []model.Finding{},
		PaymentsAndFees:    []model.Finding{},
		YourObligations:    []model.Finding{},
		RightsYouLose:      []model.Finding{},
		TerminationAndExit: []model.Finding{},
		LiabilityExposure:  []model.Finding{},
		DataAndPrivacy:     []model.Finding{},
	}
}

// buildBuckets places each finding in every bucket whose trigger words appear in its summary
func buildBuckets(findings []model.Finding) model.Buckets {
	b := emptyBuckets()

	for _, f := range findings {
		text := strings.ToLower(f.Summary)

		if containsAny(text, deadlineWords) {
			b.Deadlines = append(b.Deadlines, f)
		}
		if containsAny(text, paymentWords) {
			b.PaymentsAndFees = append(b.PaymentsAndFees, f)
		}
		if containsAny(text, obligationWords) {
			b.YourObligations = append(b.YourObligations, f)
		}
		if containsAny(text, rightsLostWords) {
			b.RightsYouLose = append(b.RightsYouLose, f)
		}
		if containsAny(text, terminationWords) {
			b.TerminationAndExit = append(b.TerminationAndExit, f)
		}
		if containsAny(text, liabilityWords) {
			b.LiabilityExposure = append(b.LiabilityExposure, f)
		}
		if containsAny(text, privacyWords) {
			b.DataAndPrivacy = append(b.DataAndPrivacy, f)
		}
	}

	return b
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// buildChecklist collects suggestions from High then Medium findings, deduplicated
func buildChecklist(high, medium []model.Finding) []string {
	checklist := []string{}
	seen := make(map[string]bool)

	for _, group := range [][]model.Finding{high, medium} {
		for _, f := range group {
			if f.Suggestion == "" || seen[f.Suggestion] {
				continue
			}
			seen[f.Suggestion] = true
			checklist = append(checklist, f.Suggestion)
			if len(checklist) >= maxChecklist {
				return checklist
			}
		}
	}
	return checklist
}

// plainSummary renders the fixed sentence templates
func plainSummary(o model.RiskOverview, b model.Buckets) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "This document carries an overall %s level of risk. ", strings.ToLower(string(o.OverallRisk)))
	fmt.Fprintf(&sb, "It contains %d high-risk clauses, %d important obligations, and %d standard terms. ",
		o.HighCount, o.MediumCount, o.LowCount)

	if len(b.Deadlines) > 0 {
		fmt.Fprintf(&sb, "There are %d time-sensitive requirements. ", len(b.Deadlines))
	}
	if len(b.PaymentsAndFees) > 0 {
		sb.WriteString("Several clauses may result in fees or financial penalties. ")
	}
	if len(b.RightsYouLose) > 0 {
		sb.WriteString("You may be giving up important legal rights in some sections. ")
	}
	sb.WriteString("Review the highlighted items carefully before agreeing.")

	return sb.String()
}
