package catalog

import "github.com/ppiankov/clariscan/internal/model"

// builtinRules is the consolidated rule table. Order is significant: it breaks
// ties between rules with equal risk level and confidence.
var builtinRules = []model.Rule{
	{
		ID:          "UNILATERAL_TERMINATION",
		Title:       "One-Sided Termination Rights",
		Summary:     "One party can terminate the agreement with minimal notice while the other party faces stricter or no termination rights.",
		Category:    "termination",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"terminate at any time", "sole discretion", "without cause", "only terminate", "may terminate this agreement"},
		Phrases:     []string{"for any reason or no reason", "terminate for convenience"},
		Suggestion:  "Seek mutual termination rights or equal notice periods for both parties.",
		Consequence: "The other party can end the agreement without giving you a reason.",
		Enforcement: model.EnforcementImmediate,
		AppliesTo:   []string{"termination"},
	},
	{
		ID:          "CURE_PERIOD_IMBALANCE",
		Title:       "Unbalanced Cure Period",
		Summary:     "One party is granted a long cure period to fix breaches while the other party has limited or no opportunity to cure.",
		Category:    "termination",
		RiskLevel:   model.RiskMedium,
		Keywords:    []string{"cure period", "material breach", "days to cure", "written notice and opportunity to cure"},
		Suggestion:  "Ensure both parties are granted a reasonable and equal cure period.",
		MinHits:     2,
		Consequence: "You may have little time to fix a breach before the agreement ends.",
		Enforcement: model.EnforcementAfterCure,
		AppliesTo:   []string{"termination"},
	},
	{
		ID:          "LIMITATION_OF_LIABILITY",
		Title:       "Liability Cap or Liability Exclusion",
		Summary:     "The agreement limits or excludes liability, which may prevent recovery of meaningful damages.",
		Category:    "liability",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"limitation of liability", "shall not be liable", "indirect damages", "consequential damages", "liability shall not exceed"},
		Suggestion:  "Review liability caps carefully and negotiate carve-outs for gross negligence or willful misconduct.",
		Consequence: "You may not recover your real losses if something goes wrong.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"liability"},
	},
	{
		ID:          "INDEMNIFICATION_OBLIGATION",
		Title:       "Broad Indemnification Obligation",
		Summary:     "One party agrees to indemnify the other for a wide range of claims, possibly including third-party actions.",
		Category:    "liability",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"indemnify", "hold harmless", "defend against", "claims arising from"},
		Suggestion:  "Limit indemnification scope and exclude indirect or unrelated claims.",
		Consequence: "You may have to pay for claims brought against the other party.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"liability"},
	},
	{
		ID:         "INTELLECTUAL_PROPERTY_OWNERSHIP",
		Title:      "Unfavorable Intellectual Property Ownership",
		Summary:    "All intellectual property is retained by one party, leaving the other with limited or revocable usage rights.",
		Category:   "intellectual_property",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"intellectual property", "sole property", "exclusive ownership", "revocable license", "non-transferable license"},
		Suggestion: "Clarify IP ownership and ensure sufficient rights for continued use.",
		MinHits:    2,
	},
	{
		ID:          "PAYMENT_PENALTIES_INTEREST",
		Title:       "Aggressive Late Payment Penalties",
		Summary:     "The contract imposes high interest rates or severe penalties for late payments.",
		Category:    "payment",
		RiskLevel:   model.RiskMedium,
		Keywords:    []string{"interest at", "interest per month", "interest per annum", "late payment interest", "finance charge of"},
		Suggestion:  "Negotiate lower interest rates and reasonable grace periods for late payments.",
		MinHits:     2,
		Consequence: "Late payments grow quickly through interest or finance charges.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"payment"},
	},
	{
		ID:          "AUTO_RENEWAL",
		Title:       "Automatic Renewal Without Clear Opt-Out",
		Summary:     "The agreement renews automatically unless terminated within a narrow notice window.",
		Category:    "renewal",
		RiskLevel:   model.RiskMedium,
		Keywords:    []string{"automatically renew", "auto-renewal", "renew for successive terms", "unless terminated"},
		Phrases:     []string{"successive renewal terms", "renewal term"},
		Suggestion:  "Add clear renewal reminders and broader termination windows.",
		MinHits:     2,
		Consequence: "You stay bound for another term unless you cancel in time.",
		Enforcement: model.EnforcementWithNotice,
		AppliesTo:   []string{"termination", "payment"},
	},
	{
		ID:         "GOVERNING_LAW_BIAS",
		Title:      "Unfavorable Governing Law or Venue",
		Summary:    "The governing law or jurisdiction favors one party and may increase litigation burden.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"governing law", "laws of the state", "exclusive jurisdiction", "venue shall be"},
		Suggestion: "Seek neutral governing law or a mutually acceptable jurisdiction.",
		MinHits:    2,
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "ASSIGNMENT_WITHOUT_CONSENT",
		Title:      "Assignment Without Consent",
		Summary:    "One party may assign the agreement without the other party's consent.",
		Category:   "assignment",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"assign this agreement", "without consent", "freely assignable", "assignment permitted"},
		Suggestion: "Require prior written consent for assignment, except in limited cases.",
	},
	{
		ID:         "AUDIT_RIGHTS",
		Title:      "Broad Audit or Inspection Rights",
		Summary:    "The contract allows one party to audit or inspect the other with minimal limits.",
		Category:   "compliance",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"audit", "inspection", "examine records", "access books"},
		Suggestion: "Limit audit frequency, scope, and require reasonable notice.",
	},
	{
		ID:         "CONFIDENTIALITY_SURVIVAL",
		Title:      "Confidentiality Obligations That Survive Indefinitely",
		Summary:    "Confidentiality obligations survive termination indefinitely or for an unreasonably long period.",
		Category:   "confidentiality",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"confidentiality shall survive", "survive termination", "perpetual confidentiality", "indefinitely"},
		Suggestion: "Limit confidentiality survival periods to a reasonable timeframe, such as 2-5 years.",
		MinHits:    2,
	},
	{
		ID:         "DATA_USAGE_RIGHTS",
		Title:      "Broad Data Usage or Data Sale Rights",
		Summary:    "The agreement allows one party to use, sell, or share data beyond what is necessary for the service.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"use data", "share data", "sell data", "data analytics", "data aggregation"},
		Phrases:    []string{"share your personal information", "sell your personal information"},
		Suggestion: "Restrict data usage strictly to service delivery and prohibit resale or secondary use.",
		AppliesTo:  []string{"data"},
	},
	{
		ID:          "UNILATERAL_AMENDMENTS",
		Title:       "Unilateral Contract Modification Rights",
		Summary:     "One party can modify the agreement unilaterally without explicit consent.",
		Category:    "amendments",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"may modify this agreement", "reserve the right to change", "amend at any time", "update terms without notice"},
		Suggestion:  "Require mutual written consent for any material contract changes.",
		Consequence: "Terms can change without your agreement.",
		Enforcement: model.EnforcementImmediate,
	},
	{
		ID:          "ARBITRATION_CLASS_WAIVER",
		Title:       "Mandatory Arbitration or Class Action Waiver",
		Summary:     "The contract forces arbitration or waives class action rights.",
		Category:    "dispute_resolution",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"binding arbitration", "class action waiver", "waive right to jury", "arbitration shall be"},
		Phrases:     []string{"on an individual basis", "opt out of arbitration"},
		Suggestion:  "Carefully review dispute resolution clauses and understand rights being waived.",
		Consequence: "You cannot take disputes to court or join a class action.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"disputes"},
	},
	{
		ID:         "FORCE_MAJEURE_OVERBROAD",
		Title:      "Overly Broad Force Majeure Clause",
		Summary:    "Force majeure is defined too broadly, excusing performance for avoidable events.",
		Category:   "performance",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"force majeure", "events beyond reasonable control", "acts of god", "government action"},
		Suggestion: "Narrow force majeure definitions and exclude foreseeable or controllable events.",
	},
	{
		ID:         "EMPLOYMENT_AT_WILL_OVERRIDE",
		Title:      "At-Will Employment Override or Hidden Termination",
		Summary:    "The agreement weakens or overrides statutory employment protections, allowing termination with minimal safeguards.",
		Category:   "employment",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"at-will employment", "terminate employment at any time", "without notice or cause", "sole discretion of employer"},
		Suggestion: "Confirm that statutory employment rights are not waived or restricted.",
	},
	{
		ID:         "NON_COMPETE_BREADTH",
		Title:      "Overly Broad Non-Compete Restriction",
		Summary:    "Non-compete obligations are excessively broad in scope, geography, or duration.",
		Category:   "employment",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"non-compete", "restrict competition", "any competing business", "worldwide", "for any reason"},
		Suggestion: "Limit non-compete clauses by geography, duration, and scope of activities.",
	},
	{
		ID:         "SURVEILLANCE_MONITORING",
		Title:      "Employee or User Surveillance Rights",
		Summary:    "The agreement permits monitoring, tracking, or surveillance of users or employees.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"monitor user activity", "record communications", "track employee behavior", "keystroke logging", "screen monitoring"},
		Suggestion: "Ensure monitoring is transparent, limited, and compliant with privacy laws.",
		MinHits:    2,
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "FEE_INCREASE_UNILATERAL",
		Title:      "Unilateral Fee or Price Increases",
		Summary:    "One party may increase fees or pricing without meaningful consent.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"increase fees", "change pricing", "adjust charges", "fees may be modified"},
		Suggestion: "Require advance notice and termination rights for fee increases.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "RIGHTS_WAIVER_GENERAL",
		Title:      "General Waiver of Legal Rights",
		Summary:    "The contract broadly waives legal rights, remedies, or statutory protections.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"waive all rights", "release of claims", "irrevocably waive", "no legal recourse"},
		Suggestion: "Avoid broad waivers and preserve statutory and consumer protection rights.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "REFUND_RESTRICTIONS",
		Title:      "No Refunds or Strict Refund Limitations",
		Summary:    "The agreement restricts refunds entirely or allows refunds only under very narrow conditions.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"no refunds", "non-refundable", "all sales are final", "refunds will not be issued"},
		Suggestion: "Ensure reasonable refund rights or clearly defined refund conditions.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "SUBSCRIPTION_CANCELLATION_BARRIERS",
		Title:      "Difficult Subscription Cancellation",
		Summary:    "The contract makes cancellation intentionally difficult or burdensome.",
		Category:   "termination",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"cancel only by", "written cancellation required", "phone cancellation", "account termination process"},
		Suggestion: "Require simple and accessible cancellation methods.",
		MinHits:    2,
		AppliesTo:  []string{"termination"},
	},
	{
		ID:         "JURISDICTION_EXCLUSIVE_FOREIGN",
		Title:      "Exclusive Foreign Jurisdiction",
		Summary:    "Disputes must be resolved in a foreign or distant jurisdiction.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"exclusive jurisdiction", "courts of", "venue shall lie exclusively", "foreign courts"},
		Suggestion: "Negotiate jurisdiction closer to your residence or business operations.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "DATA_RETENTION_INDEFINITE",
		Title:      "Indefinite Data Retention",
		Summary:    "The agreement allows indefinite retention of personal or business data.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"retain data indefinitely", "data retention period", "retain information", "store data permanently"},
		Suggestion: "Limit data retention to legally required or operationally necessary periods.",
		AppliesTo:  []string{"data"},
	},
	{
		ID:          "SERVICE_SUSPENSION_DISCRETION",
		Title:       "Service Suspension at Sole Discretion",
		Summary:     "One party may suspend services without clear standards or notice.",
		Category:    "service",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"suspend services at its discretion", "may disable access without notice", "immediately suspend services", "sole discretion to suspend"},
		Suggestion:  "Require notice, justification, and opportunity to cure before suspension.",
		Consequence: "Your access can be cut off without warning.",
		Enforcement: model.EnforcementImmediate,
	},
	{
		ID:          "TERMINATION_NOTICE_SHORT",
		Title:       "Unreasonably Short Termination Notice",
		Summary:     "The agreement allows termination with an unreasonably short notice period, creating operational or financial risk.",
		Category:    "termination",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"immediate termination", "terminate immediately", "without prior notice", "upon notice"},
		Suggestion:  "Negotiate a longer termination notice period to allow transition planning.",
		Consequence: "The agreement can end with little or no warning.",
		Enforcement: model.EnforcementImmediate,
		AppliesTo:   []string{"termination"},
	},
	{
		ID:         "ONE_SIDED_CONFIDENTIALITY",
		Title:      "One-Sided Confidentiality Obligations",
		Summary:    "Confidentiality obligations apply primarily or exclusively to one party.",
		Category:   "confidentiality",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"recipient shall keep confidential", "disclosing party", "obligations of recipient only"},
		Suggestion: "Ensure confidentiality obligations apply equally to both parties.",
		MinHits:    2,
	},
	{
		ID:         "NO_SERVICE_LEVEL_COMMITMENT",
		Title:      "No Service Level or Performance Commitment",
		Summary:    "The agreement lacks service levels, uptime commitments, or performance guarantees.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"no service level", "as is", "no warranty", "best efforts only"},
		Suggestion: "Add measurable service levels, uptime guarantees, or remedies for failure.",
		MinHits:    2,
	},
	{
		ID:         "WARRANTY_DISCLAIMER",
		Title:      "Broad Warranty Disclaimer",
		Summary:    "All warranties are disclaimed, limiting remedies for defective performance.",
		Category:   "liability",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"disclaims all warranties", "as is basis", "no warranties express or implied", "merchantability"},
		Suggestion: "Seek limited warranties covering performance, compliance, and non-infringement.",
		AppliesTo:  []string{"liability"},
	},
	{
		ID:         "COMPLIANCE_SHIFT",
		Title:      "Regulatory Compliance Shifted to User",
		Summary:    "The agreement shifts all regulatory or legal compliance responsibility to one party.",
		Category:   "compliance",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"user responsible for compliance", "sole responsibility", "applicable laws compliance", "at its own expense"},
		Suggestion: "Clarify shared compliance responsibilities and provider obligations.",
	},
	{
		ID:         "INSURANCE_REQUIREMENTS",
		Title:      "Missing or Inadequate Insurance Requirements",
		Summary:    "The contract lacks clear insurance requirements or minimum coverage levels.",
		Category:   "liability",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"insurance", "coverage", "policy limits", "certificate of insurance"},
		Suggestion: "Specify required insurance types and minimum coverage amounts.",
		AppliesTo:  []string{"liability"},
	},
	{
		ID:         "EXPENSE_REIMBURSEMENT_OPEN_ENDED",
		Title:      "Open-Ended Expense Reimbursement",
		Summary:    "One party is required to reimburse expenses without caps, approvals, or clear definitions.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"reimburse all expenses", "reasonable expenses incurred", "without limitation", "expense reimbursement"},
		Suggestion: "Add expense caps, approval requirements, and clear definitions of reimbursable costs.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "SURVIVAL_CLAUSE_OVERBROAD",
		Title:      "Overly Broad Survival Clause",
		Summary:    "Multiple obligations survive termination unnecessarily, extending liability indefinitely.",
		Category:   "termination",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"shall survive termination", "survive expiration", "continue in full force", "notwithstanding termination"},
		Suggestion: "Limit survival clauses to essential provisions like confidentiality and payment.",
		MinHits:    2,
		AppliesTo:  []string{"termination"},
	},
	{
		ID:          "LIQUIDATED_DAMAGES_PENALTY",
		Title:       "Punitive Liquidated Damages",
		Summary:     "The contract imposes liquidated damages that may function as penalties rather than estimates of loss.",
		Category:    "payment",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"liquidated damages", "penalty", "pre-estimated damages", "fixed damages amount"},
		Suggestion:  "Ensure liquidated damages are reasonable and proportionate to actual harm.",
		Consequence: "A fixed penalty is owed regardless of actual harm.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"payment"},
	},
	{
		ID:         "THIRD_PARTY_BENEFICIARY",
		Title:      "Unexpected Third-Party Beneficiaries",
		Summary:    "The agreement grants enforcement rights to third parties not directly involved in the contract.",
		Category:   "general",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"third-party beneficiary", "enforce this agreement", "benefit of third parties", "successors and assigns"},
		Suggestion: "Explicitly exclude unintended third-party beneficiaries.",
		MinHits:    2,
	},
	{
		ID:         "PUBLICITY_RIGHTS",
		Title:      "Unrestricted Publicity or Marketing Rights",
		Summary:    "One party may use the other's name, logo, or marks without consent.",
		Category:   "intellectual_property",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"use name", "use logo", "publicity", "marketing materials", "press release"},
		Suggestion: "Require prior written approval for any public or marketing use.",
	},
	{
		ID:         "UNILATERAL_OFFSET_RIGHTS",
		Title:      "Unilateral Setoff or Offset Rights",
		Summary:    "One party may offset payments or amounts owed without mutual agreement or dispute resolution.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"setoff", "offset amounts", "deduct from payments", "withhold payment"},
		Suggestion: "Require mutual agreement or final determination before exercising setoff rights.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "CHANGE_OF_CONTROL_TERMINATION",
		Title:      "Termination Upon Change of Control",
		Summary:    "The agreement allows termination solely due to a merger, acquisition, or ownership change.",
		Category:   "termination",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"change of control", "merger or acquisition", "ownership change", "control of the company"},
		Suggestion: "Limit termination rights to material adverse impacts, not ownership changes alone.",
		MinHits:    2,
		AppliesTo:  []string{"termination"},
	},
	{
		ID:         "NO_ASSIGNMENT_TO_CUSTOMER",
		Title:      "Customer Assignment Prohibited",
		Summary:    "One party is restricted from assigning the agreement, while the other party is not.",
		Category:   "assignment",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"may not assign", "assignment prohibited", "without prior written consent"},
		Suggestion: "Ensure assignment restrictions apply equally or allow assignment to affiliates.",
	},
	{
		ID:         "EXPORT_CONTROL_RISK",
		Title:      "Export Control and Sanctions Exposure",
		Summary:    "The agreement creates exposure to export control, sanctions, or trade compliance violations.",
		Category:   "compliance",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"export control", "sanctions", "restricted countries", "trade compliance"},
		Suggestion: "Clarify export responsibilities and ensure compliance obligations are shared.",
	},
	{
		ID:         "NO_ESCROW_SOURCE_CODE",
		Title:      "No Source Code Escrow for Critical Software",
		Summary:    "The agreement lacks source code escrow protections for essential software services.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"source code escrow", "no escrow", "software dependency", "business continuity"},
		Suggestion: "Add source code escrow provisions for mission-critical software.",
		MinHits:    2,
	},
	{
		ID:         "DATA_BREACH_NOTIFICATION_DELAY",
		Title:      "Delayed Data Breach Notification",
		Summary:    "The agreement allows excessive delay before notifying affected parties of a data breach.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"data breach notification", "notify within", "without undue delay", "security incident notice"},
		Suggestion: "Require prompt breach notification within a fixed and short timeframe (e.g., 48-72 hours).",
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "BACKGROUND_CHECK_CONSENT",
		Title:      "Broad Background Check Authorization",
		Summary:    "The agreement authorizes extensive background, credit, or identity checks without limits.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"background check", "credit check", "criminal history", "identity verification"},
		Suggestion: "Limit background checks to what is legally required and relevant to the role or service.",
		MinHits:    2,
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "POST_TERMINATION_FEES",
		Title:      "Post-Termination Fees or Charges",
		Summary:    "Fees or payment obligations continue after termination without clear justification.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"post-termination fees", "fees shall survive termination", "charges after termination", "continuing payment obligation"},
		Suggestion: "Ensure post-termination fees are limited to earned or unavoidable costs only.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "DATA_LOCATION_RESTRICTION",
		Title:      "Unrestricted Data Storage Location",
		Summary:    "The agreement permits data storage or processing in any country without restriction.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"data may be stored", "processed in any country", "global data centers", "international transfer"},
		Suggestion: "Restrict data storage to jurisdictions with adequate data protection laws.",
		MinHits:    2,
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "RIGHT_TO_INJUNCTIVE_RELIEF_ONE_SIDED",
		Title:      "One-Sided Injunctive Relief Rights",
		Summary:    "Only one party may seek injunctive or equitable relief in court.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"injunctive relief", "equitable relief", "without posting bond", "sole right to seek"},
		Suggestion: "Ensure injunctive relief rights apply equally to both parties.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:          "DATA_DELETION_AFTER_TERMINATION",
		Title:       "No Data Deletion After Termination",
		Summary:     "The agreement does not clearly require deletion or return of data after termination.",
		Category:    "data_privacy",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"retain data after termination", "data may be retained", "no obligation to delete", "data retention after termination"},
		Suggestion:  "Require clear data deletion or return obligations within a fixed timeframe after termination.",
		Consequence: "Your data may be kept after the relationship ends.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"data"},
	},
	{
		ID:         "UNLIMITED_SUBCONTRACTING",
		Title:      "Unrestricted Subcontracting",
		Summary:    "One party may subcontract obligations without disclosure or consent.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"subcontract", "third-party providers", "may engage subcontractors", "without prior consent"},
		Suggestion: "Require notice and consent for subcontracting, especially where data or IP is involved.",
		MinHits:    2,
	},
	{
		ID:          "NO_NOTICE_POLICY_CHANGES",
		Title:       "Policy Changes Without Notice",
		Summary:     "Policies or terms may be changed without advance notice to the user.",
		Category:    "amendments",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"policies may change", "without notice", "subject to change at any time", "we may update policies"},
		Suggestion:  "Require advance notice and opt-out rights for material policy changes.",
		Consequence: "Policies can change without you being told.",
		Enforcement: model.EnforcementImmediate,
	},
	{
		ID:         "EXCESSIVE_NOTICE_REQUIREMENTS",
		Title:      "Excessive Notice Formalities",
		Summary:    "The agreement requires overly burdensome notice methods that may invalidate user actions.",
		Category:   "general",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"notice shall be delivered", "certified mail only", "registered post", "hand delivered notice"},
		Suggestion: "Allow modern notice methods such as email with confirmation.",
		MinHits:    2,
	},
	{
		ID:         "NO_CONSUMER_PROTECTION_REFERENCE",
		Title:      "Missing Consumer Protection Acknowledgment",
		Summary:    "The agreement omits reference to mandatory consumer protection or statutory rights.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"to the fullest extent permitted", "waive statutory rights", "consumer protection", "mandatory law"},
		Suggestion: "Explicitly preserve mandatory consumer or statutory rights.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "NO_TERMINATION_ASSISTANCE",
		Title:      "No Transition or Termination Assistance",
		Summary:    "The agreement does not require assistance during transition or exit, creating operational risk after termination.",
		Category:   "termination",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"no transition assistance", "upon termination no obligation", "no support after termination", "as is upon termination"},
		Suggestion: "Add reasonable transition or termination assistance obligations.",
		MinHits:    2,
		AppliesTo:  []string{"termination"},
	},
	{
		ID:         "RESTRICTION_ON_DISPUTE_PUBLICITY",
		Title:      "Restriction on Discussing Disputes",
		Summary:    "The agreement restricts parties from publicly discussing disputes or outcomes.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"non-disparagement", "may not disclose dispute", "no public statements", "confidential dispute resolution"},
		Suggestion: "Limit non-disparagement obligations to false or malicious statements only.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "UNDEFINED_MATERIAL_BREACH",
		Title:      "Undefined Material Breach Standard",
		Summary:    "Material breach is referenced but not clearly defined, allowing subjective enforcement.",
		Category:   "termination",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"material breach", "in the event of breach", "breach of this agreement", "default under this agreement"},
		Suggestion: "Define material breach clearly or include objective thresholds.",
		MinHits:    2,
		AppliesTo:  []string{"termination"},
	},
	{
		ID:         "NO_DATA_PORTABILITY",
		Title:      "No Data Portability or Export Rights",
		Summary:    "The agreement does not guarantee access to or export of data upon request or termination.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"no obligation to provide data", "data export", "portability", "access to data upon termination"},
		Suggestion: "Require data export in a usable format during and after the agreement.",
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "SERVICE_DEPENDENCY_LOCK_IN",
		Title:      "Service Dependency or Vendor Lock-In",
		Summary:    "The agreement creates dependency on proprietary systems without exit safeguards.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"proprietary system", "exclusive platform", "no alternative provider", "dependency on service"},
		Suggestion: "Add exit rights, data portability, or interoperability protections.",
		MinHits:    2,
	},
	{
		ID:         "THIRD_PARTY_FEE_COLLECTION",
		Title:      "Mandatory Third-Party Fee or Payment Handling",
		Summary:    "Payments or fees are processed through third-party providers, which may introduce additional costs, delays, or disputes.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"third-party payment", "payment processor", "processed by a third party", "collection agent", "payment intermediary"},
		Suggestion: "Clarify responsibility for third-party fees and require transparency on all charges.",
		MinHits:    2,
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "NO_REFUND_ON_SERVICE_FAILURE",
		Title:      "No Refunds Even if Service Fails",
		Summary:    "The agreement denies refunds even when services are unavailable, defective, or terminated early.",
		Category:   "payment",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"no refunds under any circumstances", "no refund even if", "service failure", "downtime", "non-refundable fees"},
		Suggestion: "Ensure refunds or credits are available for service failures or non-performance.",
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "ONE_SIDED_EVIDENCE_STANDARD",
		Title:      "One-Sided Evidence or Proof Standard",
		Summary:    "Only one party's records or determinations are treated as conclusive evidence.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"conclusive evidence", "final and binding determination", "sole evidence", "records shall be deemed correct"},
		Suggestion: "Require neutral or mutually verifiable evidence standards.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "UNDEFINED_REASONABLE_STANDARD",
		Title:      "Undefined 'Reasonable' Standards",
		Summary:    "The contract repeatedly uses vague terms like 'reasonable' without definition, allowing subjective enforcement.",
		Category:   "general",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"reasonable efforts", "reasonably acceptable", "reasonable discretion", "commercially reasonable"},
		Suggestion: "Define objective standards or measurable criteria for reasonableness.",
		MinHits:    2,
	},
	{
		ID:          "RIGHTS_LOSS_BY_INACTION",
		Title:       "Loss of Rights Due to Inaction",
		Summary:     "Failure to act, respond, or object within short timelines may permanently waive rights.",
		Category:    "dispute_resolution",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"failure to respond", "shall be deemed accepted", "waive any objection", "if no response within"},
		Phrases:     []string{"deemed to have accepted"},
		Suggestion:  "Extend response timelines and avoid automatic waiver of rights.",
		Consequence: "Silence can be treated as acceptance and waive your objections.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"disputes"},
	},
	{
		ID:         "LONG_TERM_LOCK_IN",
		Title:      "Long-Term Contract Lock-In",
		Summary:    "The agreement commits one party to a long fixed term without flexible exit options.",
		Category:   "renewal",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"initial term of", "shall remain in effect for", "fixed term of", "multi-year term"},
		Suggestion: "Add early termination rights or shorter initial terms.",
		MinHits:    2,
		AppliesTo:  []string{"termination", "payment"},
	},
	{
		ID:          "SERVICE_SUSPENSION_FOR_NONPAYMENT",
		Title:       "Service Suspension for Non-Payment",
		Summary:     "Services may be suspended immediately for payment issues, disrupting operations.",
		Category:    "service",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"suspend services for non-payment", "failure to pay invoices", "non-payment of fees", "services may be suspended"},
		Suggestion:  "Require notice and cure period before service suspension.",
		Consequence: "A missed payment can stop the service.",
		Enforcement: model.EnforcementWithNotice,
	},
	{
		ID:         "IP_LICENSE_RESTRICTIONS",
		Title:      "Highly Restricted IP License",
		Summary:    "The license granted is limited, revocable, and restricts transfer or continued use.",
		Category:   "intellectual_property",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"limited license", "revocable", "non-transferable", "license granted"},
		Suggestion: "Seek broader, irrevocable, or perpetual usage rights where possible.",
		MinHits:    2,
	},

	// Short-form rules covering concepts the detailed rules above do not.
	{
		ID:          "AUTO_TERMINATION",
		Title:       "Auto Termination",
		Summary:     "Agreement ends automatically under certain conditions.",
		Category:    "termination",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"automatically terminates", "shall automatically terminate"},
		Suggestion:  "Clarify triggers and consequences.",
		Consequence: "The agreement ends by itself when a condition is met.",
		Enforcement: model.EnforcementImmediate,
		AppliesTo:   []string{"termination"},
	},
	{
		ID:         "SERVICE_SUSPENSION",
		Title:      "Service Suspension",
		Summary:    "Service can be suspended at any time.",
		Category:   "service",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"suspend services", "suspend access"},
		Suggestion: "Ask for notice and remediation period.",
	},
	{
		ID:          "ACCOUNT_TERMINATION",
		Title:       "Account Termination",
		Summary:     "Account can be closed unilaterally.",
		Category:    "termination",
		RiskLevel:   model.RiskHigh,
		Keywords:    []string{"terminate your account", "close your account"},
		Suggestion:  "Confirm refund or data export rights.",
		Consequence: "Your account can be closed unilaterally.",
		Enforcement: model.EnforcementImmediate,
		AppliesTo:   []string{"termination"},
	},
	{
		ID:         "LIABILITY_EXCLUSION",
		Title:      "Liability Exclusion",
		Summary:    "Other party disclaims liability entirely.",
		Category:   "liability",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"not liable", "no liability"},
		Suggestion: "Negotiate reasonable liability caps.",
		AppliesTo:  []string{"liability"},
	},
	{
		ID:         "WAIVE_JURY_TRIAL",
		Title:      "Waive Jury Trial",
		Summary:    "You waive the right to jury trial.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"waive jury trial"},
		Suggestion: "Understand dispute resolution impact.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "NO_APPEAL",
		Title:      "No Appeal",
		Summary:    "Decisions may be final with no appeal.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"no right to appeal"},
		Suggestion: "Confirm fairness of resolution process.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "DATA_OWNERSHIP_TRANSFER",
		Title:      "Data Ownership Transfer",
		Summary:    "You grant ownership or unlimited rights to your data.",
		Category:   "data_privacy",
		RiskLevel:  model.RiskHigh,
		Keywords:   []string{"own your data", "perpetual license"},
		Suggestion: "Limit scope and duration.",
		AppliesTo:  []string{"data"},
	},
	{
		ID:         "NOTICE_PERIOD",
		Title:      "Notice Period",
		Summary:    "Formal notice is required for actions.",
		Category:   "general",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"written notice", "notice period"},
		Suggestion: "Track deadlines carefully.",
	},
	{
		ID:          "LATE_FEES",
		Title:       "Late Fees",
		Summary:     "Late payments incur penalties.",
		Category:    "payment",
		RiskLevel:   model.RiskMedium,
		Keywords:    []string{"late fee", "penalty"},
		Suggestion:  "Confirm fee reasonableness.",
		Consequence: "Late payments cost extra.",
		Enforcement: model.EnforcementAlways,
		AppliesTo:   []string{"payment"},
	},
	{
		ID:         "INTEREST_CHARGES",
		Title:      "Interest Charges",
		Summary:    "Interest applies to unpaid balances.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"interest per month", "annual percentage"},
		Suggestion: "Calculate long-term cost.",
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "LIMITED_SUPPORT",
		Title:      "Limited Support",
		Summary:    "Support may be limited or unavailable.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"no obligation to support"},
		Suggestion: "Clarify support expectations.",
	},
	{
		ID:         "USAGE_LIMITS",
		Title:      "Usage Limits",
		Summary:    "Usage is restricted.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"usage limits", "fair use"},
		Suggestion: "Confirm limits meet needs.",
	},
	{
		ID:         "CONFIDENTIALITY_SCOPE",
		Title:      "Confidentiality Scope",
		Summary:    "Broad confidentiality obligations.",
		Category:   "confidentiality",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"confidential information"},
		Suggestion: "Ensure mutual obligations.",
	},
	{
		ID:         "SERVICE_CHANGES",
		Title:      "Service Changes",
		Summary:    "Features may change.",
		Category:   "service",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"change service features"},
		Suggestion: "Confirm core functionality protection.",
	},
	{
		ID:         "TERMINATION_FEES",
		Title:      "Termination Fees",
		Summary:    "Ending early incurs fees.",
		Category:   "payment",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"early termination fee"},
		Suggestion: "Calculate exit cost.",
		AppliesTo:  []string{"payment"},
	},
	{
		ID:         "CHANGE_CONTROL",
		Title:      "Change Control",
		Summary:    "Changes require approval process.",
		Category:   "amendments",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"change control"},
		Suggestion: "Understand flexibility.",
	},
	{
		ID:         "ESCALATION_PROCESS",
		Title:      "Escalation Process",
		Summary:    "Disputes must follow escalation path.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskMedium,
		Keywords:   []string{"escalation"},
		Suggestion: "Confirm timelines.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "ENTIRE_AGREEMENT",
		Title:      "Entire Agreement",
		Summary:    "Document represents entire agreement.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"entire agreement"},
		Suggestion: "No side agreements allowed.",
	},
	{
		ID:         "SEVERABILITY",
		Title:      "Severability",
		Summary:    "Invalid clauses won't void entire agreement.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"severable"},
		Suggestion: "Standard clause.",
	},
	{
		ID:         "HEADINGS",
		Title:      "Headings",
		Summary:    "Headings do not affect interpretation.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"headings are for convenience"},
		Suggestion: "Standard legal wording.",
	},
	{
		ID:         "COUNTERPARTS",
		Title:      "Counterparts",
		Summary:    "Agreement may be signed in parts.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"counterparts"},
		Suggestion: "Administrative detail.",
	},
	{
		ID:         "ELECTRONIC_SIGNATURES",
		Title:      "Electronic Signatures",
		Summary:    "Electronic signatures are valid.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"electronic signatures"},
		Suggestion: "Standard clause.",
	},
	{
		ID:         "NO_WAIVER",
		Title:      "No Waiver",
		Summary:    "Failure to enforce is not a waiver.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"no waiver"},
		Suggestion: "Standard protection.",
	},
	{
		ID:         "AMENDMENTS_IN_WRITING",
		Title:      "Amendments in Writing",
		Summary:    "Changes must be written.",
		Category:   "amendments",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"in writing"},
		Suggestion: "Standard clause.",
	},
	{
		ID:         "NOTICES",
		Title:      "Notices",
		Summary:    "Specifies notice method.",
		Category:   "general",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"notices shall be sent"},
		Suggestion: "Track contact details.",
	},
	{
		ID:         "RELATIONSHIP",
		Title:      "Relationship",
		Summary:    "Defines relationship.",
		Category:   "general",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"independent contractor"},
		Suggestion: "Clarifies legal status.",
	},
	{
		ID:         "COMPLIANCE_WITH_LAW",
		Title:      "Compliance With Law",
		Summary:    "Requires legal compliance.",
		Category:   "compliance",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"comply with laws"},
		Suggestion: "Standard obligation.",
	},
	{
		ID:         "WAIVER_DELAY",
		Title:      "Waiver Delay",
		Summary:    "Delays do not waive rights.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"delay in enforcement"},
		Suggestion: "Standard wording.",
	},
	{
		ID:         "TIME_OF_ESSENCE",
		Title:      "Time of Essence",
		Summary:    "Deadlines are strict.",
		Category:   "performance",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"time is of the essence"},
		Suggestion: "Watch timelines carefully.",
	},
	{
		ID:         "COUNTERCLAIMS",
		Title:      "Counterclaims",
		Summary:    "Limits counterclaims.",
		Category:   "dispute_resolution",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"counterclaims"},
		Suggestion: "Procedural note.",
		AppliesTo:  []string{"disputes"},
	},
	{
		ID:         "CUMULATIVE_REMEDIES",
		Title:      "Cumulative Remedies",
		Summary:    "Remedies are cumulative.",
		Category:   "boilerplate",
		RiskLevel:  model.RiskLow,
		Keywords:   []string{"cumulative remedies"},
		Suggestion: "Legal standard.",
	},
}
