package catalog

import "github.com/ppiankov/clariscan/internal/model"

// builtinTerms are things worth knowing about a contract that are not risks
var builtinTerms = []model.ImportantTerm{
	{
		ID:          "EFFECTIVE_DATE",
		Title:       "Effective Date",
		Description: "The date the agreement starts to bind the parties.",
		Keywords:    []string{"effective date", "commencement date", "effective as of"},
		Importance:  model.ImportanceHigh,
		Display:     "date",
		Category:    "term",
	},
	{
		ID:          "INITIAL_TERM",
		Title:       "Length of Agreement",
		Description: "How long the agreement lasts before it ends or renews.",
		Keywords:    []string{"initial term", "term of this agreement", "shall commence on"},
		Importance:  model.ImportanceHigh,
		Display:     "duration",
		Category:    "term",
	},
	{
		ID:          "RENEWAL_DATE",
		Title:       "Renewal Date",
		Description: "When the agreement renews and what window exists to cancel.",
		Keywords:    []string{"renewal date", "anniversary of the effective date", "end of the then current term"},
		Importance:  model.ImportanceHigh,
		Display:     "date",
		Category:    "term",
	},
	{
		ID:          "PAYMENT_TERMS",
		Title:       "Payment Terms",
		Description: "When invoices are due and how payment must be made.",
		Keywords:    []string{"net 30", "net 60", "payment terms", "due upon receipt", "invoiced monthly"},
		Importance:  model.ImportanceHigh,
		Display:     "schedule",
		Category:    "payment",
	},
	{
		ID:          "PRICING_SCHEDULE",
		Title:       "Pricing Schedule",
		Description: "Where the fees and rates of the agreement are listed.",
		Keywords:    []string{"fee schedule", "pricing schedule", "order form", "statement of work"},
		Importance:  model.ImportanceMedium,
		Display:     "reference",
		Category:    "payment",
	},
	{
		ID:          "NOTICE_ADDRESS",
		Title:       "Notice Address",
		Description: "Where formal notices must be sent to be valid.",
		Keywords:    []string{"notice address", "notices to", "attention of", "addressed to"},
		Importance:  model.ImportanceMedium,
		Display:     "contact",
		Category:    "notices",
	},
	{
		ID:          "GOVERNING_LAW_CHOICE",
		Title:       "Chosen Law",
		Description: "Which jurisdiction's law interprets the agreement.",
		Keywords:    []string{"governed by", "construed in accordance with"},
		Importance:  model.ImportanceMedium,
		Display:     "jurisdiction",
		Category:    "disputes",
	},
	{
		ID:          "CONFIDENTIALITY_PERIOD",
		Title:       "Confidentiality Period",
		Description: "How long confidential information must be protected.",
		Keywords:    []string{"confidentiality period", "for a period of", "years following disclosure"},
		Importance:  model.ImportanceMedium,
		Display:     "duration",
		Category:    "confidentiality",
	},
	{
		ID:          "WARRANTY_PERIOD",
		Title:       "Warranty Period",
		Description: "How long defects are covered after delivery.",
		Keywords:    []string{"warranty period", "warrants that", "defects in materials"},
		Importance:  model.ImportanceMedium,
		Display:     "duration",
		Category:    "performance",
	},
	{
		ID:          "DELIVERY_SCHEDULE",
		Title:       "Delivery Schedule",
		Description: "Milestones and delivery dates the parties agreed to.",
		Keywords:    []string{"delivery date", "milestone", "acceptance testing", "deliverables"},
		Importance:  model.ImportanceMedium,
		Display:     "schedule",
		Category:    "performance",
	},
	{
		ID:          "DEFINITIONS",
		Title:       "Defined Terms",
		Description: "Capitalized words have the specific meanings given in the definitions section.",
		Keywords:    []string{"shall mean", "means any", "as defined in"},
		Importance:  model.ImportanceMedium,
		Display:     "reference",
		Category:    "general",
	},
	{
		ID:          "SIGNATURE_BLOCK",
		Title:       "Signatures",
		Description: "Who signs the agreement and in what capacity.",
		Keywords:    []string{"in witness whereof", "authorized representative", "duly executed"},
		Importance:  model.ImportanceMedium,
		Display:     "parties",
		Category:    "general",
	},
}
