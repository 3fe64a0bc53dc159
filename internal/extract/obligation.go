package extract

import (
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

// obligationGroups are checked in order; the first group with a hit wins
var obligationGroups = []struct {
	label    model.Obligation
	keywords []string
	note     string
}{
	{
		label:    model.ObligationTermination,
		keywords: []string{"terminate", "terminates", "terminated", "termination", "cancel", "cancellation", "end this agreement"},
		note:     "This clause sets out how and when the agreement can be ended.",
	},
	{
		label:    model.ObligationPayment,
		keywords: []string{"pay", "pays", "paid", "payable", "payment", "payments", "invoice", "invoices", "fee", "fees", "compensation", "remit"},
		note:     "This clause requires money to be paid, usually by a deadline.",
	},
	{
		label:    model.ObligationReporting,
		keywords: []string{"report", "reports", "reporting", "notify", "disclose", "provide written notice"},
		note:     "This clause requires information to be reported or disclosed to the other party.",
	},
	{
		label:    model.ObligationCure,
		keywords: []string{"cure", "remedy the breach", "correct the default", "rectify"},
		note:     "This clause gives a window to fix a breach before further action is taken.",
	},
	{
		label:    model.ObligationReturn,
		keywords: []string{"return", "destroy", "deliver back", "surrender"},
		note:     "This clause requires property, data or materials to be returned or destroyed.",
	},
	{
		label:    model.ObligationInsurance,
		keywords: []string{"insurance", "insured", "coverage", "policy limits"},
		note:     "This clause requires insurance coverage to be kept in place.",
	},
}

// ObligationMatch is the classifier's result with an explicit found flag
type ObligationMatch struct {
	Found       bool
	Label       model.Obligation
	Keyword     string
	Explanation string
}

// ClassifyObligation returns the first obligation group whose keyword appears in text
func ClassifyObligation(text string) ObligationMatch {
	norm := Normalize(text)
	for _, g := range obligationGroups {
		for _, k := range g.keywords {
			if ContainsTerm(norm, Normalize(k)) {
				return ObligationMatch{Found: true, Label: g.label, Keyword: k, Explanation: g.note}
			}
		}
	}
	return ObligationMatch{}
}

// consequenceGroups map keywords onto one canonical sentence each
var consequenceGroups = []struct {
	label    string
	keywords []string
	message  string
}{
	{"termination", []string{"terminate", "termination", "terminated"},
		"The agreement may be ended, leaving you without the service or relationship it covers."},
	{"eviction", []string{"evict", "eviction", "vacate the premises", "repossess the premises"},
		"You may be required to leave the property."},
	{"service_suspension", []string{"suspend", "suspension", "disable access", "interrupt service"},
		"Your access to the service may be suspended."},
	{"repossession", []string{"repossess", "repossession", "reclaim the goods", "take possession"},
		"Goods or property may be taken back."},
	{"legal_action", []string{"legal action", "lawsuit", "sue", "court proceedings", "collection agency", "litigation"},
		"You may face legal action or collection proceedings."},
	{"penalty", []string{"penalty", "penalties", "late fee", "liquidated damages", "fine"},
		"You may have to pay additional fees or penalties."},
	{"data_loss", []string{"delete your data", "data will be deleted", "lose access to your data", "data loss", "permanently deleted"},
		"Your data may be deleted or become inaccessible."},
}

// ExtractConsequences lists every consequence named in text, one sentence per
// distinct message, in first-seen group order
func ExtractConsequences(text string) []model.Consequence {
	norm := Normalize(text)
	var out []model.Consequence
	seen := make(map[string]bool)

	for _, g := range consequenceGroups {
		for _, k := range g.keywords {
			if !ContainsTerm(norm, Normalize(k)) {
				continue
			}
			if !seen[g.message] {
				seen[g.message] = true
				out = append(out, model.Consequence{Label: g.label, Message: g.message})
			}
			break
		}
	}
	return out
}

// MatchTerms returns the important terms whose keywords appear in text
func MatchTerms(text string, terms []model.ImportantTerm) []model.TermMatch {
	norm := Normalize(text)
	var out []model.TermMatch

	for _, t := range terms {
		var matched []string
		for _, k := range t.Keywords {
			if ContainsTerm(norm, Normalize(k)) {
				matched = append(matched, strings.ToLower(k))
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, model.TermMatch{
			ID:         t.ID,
			Title:      t.Title,
			Importance: t.Importance,
			Category:   t.Category,
			Display:    t.Display,
			Matched:    matched,
		})
	}
	return out
}
