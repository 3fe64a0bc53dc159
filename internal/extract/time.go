package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ppiankov/clariscan/internal/model"
)

// timePattern matches "<number|word> [(digit)] [business] <unit>"
var timePattern = regexp.MustCompile(`(?i)\b(?:(\d+)[\s-]*|([a-z]+(?:-[a-z]+)?)\s+)(?:\((\d+)\)\s*)?(?:(?:business|calendar|working)\s+)?(years?|yrs?|y|months?|mos?|mths?|mth|weeks?|wks?|w|days?|d|hours?|hrs?|hr|h)\b`)

// contextTokens is how many tokens on each side of a time match are searched for context
const contextTokens = 10

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// WordToNumber converts English number words up to ninety-nine,
// including hyphenated compounds like "twenty-one".
func WordToNumber(word string) (int, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	if n, ok := numberWords[w]; ok {
		return n, true
	}
	if n, ok := tensWords[w]; ok {
		return n, true
	}

	tens, ones, found := strings.Cut(w, "-")
	if !found {
		return 0, false
	}
	t, ok := tensWords[tens]
	if !ok {
		return 0, false
	}
	o, ok := numberWords[ones]
	if !ok || o == 0 || o > 9 {
		return 0, false
	}
	return t + o, true
}

// CanonicalUnit maps unit spellings onto the five canonical units
func CanonicalUnit(raw string) (model.TimeUnit, bool) {
	switch strings.ToLower(raw) {
	case "year", "years", "yr", "yrs", "y":
		return model.UnitYears, true
	case "month", "months", "mo", "mos", "mth", "mths":
		return model.UnitMonths, true
	case "week", "weeks", "wk", "wks", "w":
		return model.UnitWeeks, true
	case "day", "days", "d":
		return model.UnitDays, true
	case "hour", "hours", "hr", "hrs", "h":
		return model.UnitHours, true
	default:
		return "", false
	}
}

// ClassifyDeadline grades a time period by urgency. The three-or-fewer
// threshold counts days only, so two years stays long.
func ClassifyDeadline(value int, unit model.TimeUnit) model.DeadlineSeverity {
	switch {
	case unit == model.UnitHours || (unit == model.UnitDays && value <= 3):
		return model.DeadlineUrgent
	case unit == model.UnitDays && value <= 7:
		return model.DeadlineShort
	case unit == model.UnitDays && value <= 30:
		return model.DeadlineNormal
	default:
		return model.DeadlineLong
	}
}

// TimeCandidate is one regex hit, accepted or not
type TimeCandidate struct {
	Start      int
	End        int
	Raw        string
	Found      bool
	Reason     string // why a candidate was rejected
	Constraint model.TimeConstraint
}

// ScanTimes returns every time-like match with an explicit found flag
func ScanTimes(text string) []TimeCandidate {
	var out []TimeCandidate

	for _, m := range timePattern.FindAllStringSubmatchIndex(text, -1) {
		c := TimeCandidate{Start: m[0], End: m[1], Raw: strings.TrimSpace(text[m[0]:m[1]])}

		value, ok := 0, false
		switch {
		case m[6] >= 0:
			value, ok = atoi(text[m[6]:m[7]])
		case m[2] >= 0:
			value, ok = atoi(text[m[2]:m[3]])
		case m[4] >= 0:
			value, ok = WordToNumber(text[m[4]:m[5]])
			if !ok {
				c.Reason = "unrecognized number word"
			}
		}
		if !ok {
			if c.Reason == "" {
				c.Reason = "invalid number"
			}
			out = append(out, c)
			continue
		}

		unit, _ := CanonicalUnit(text[m[8]:m[9]])
		c.Found = true
		c.Constraint = model.TimeConstraint{
			Value:    value,
			Unit:     unit,
			RawText:  c.Raw,
			Severity: ClassifyDeadline(value, unit),
		}
		out = append(out, c)
	}

	return out
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractTimes returns accepted time constraints in order of appearance
func ExtractTimes(text string) []model.TimeConstraint {
	var out []model.TimeConstraint
	for _, c := range ScanTimes(text) {
		if c.Found {
			out = append(out, c.Constraint)
		}
	}
	return out
}

// timeContext annotates a time constraint with what it is for
type timeContext struct {
	obligation string
	appliesTo  string
	trigger    string
}

var (
	terminationContext = timeContext{"termination notice", "termination", "Agreement termination"}
	noticeContext      = timeContext{"notice period", "notice", "Formal notice"}
	cureContext        = timeContext{"cure period", "cure", "Breach of agreement"}
	reportContext      = timeContext{"reporting deadline", "reporting", "Report submission"}
	paymentContext     = timeContext{"payment deadline", "payment", "Invoice payment"}
	defaultContext     = timeContext{"contractual reference period", "general", "Contractual limitation or reference"}
)

// contextStems are searched in priority order; termination and notice beat payment
var contextStems = []struct {
	stems []string
	ctx   timeContext
}{
	{[]string{"terminat"}, terminationContext},
	{[]string{"notice"}, noticeContext},
	{[]string{"cure"}, cureContext},
	{[]string{"report"}, reportContext},
	{[]string{"pay", "invoice"}, paymentContext},
}

func (c timeContext) apply(tc *model.TimeConstraint) {
	tc.Obligation = c.obligation
	tc.AppliesTo = c.appliesTo
	tc.Trigger = c.trigger
}

// contextForObligation picks the context used for clause-level facts
func contextForObligation(ob model.Obligation) timeContext {
	switch ob {
	case model.ObligationTermination:
		return terminationContext
	case model.ObligationPayment:
		return paymentContext
	case model.ObligationCure:
		return cureContext
	default:
		return defaultContext
	}
}

// inferContext searches up to contextTokens tokens either side of a match
func inferContext(text string, start, end int) timeContext {
	before := strings.Fields(strings.ToLower(text[:start]))
	if len(before) > contextTokens {
		before = before[len(before)-contextTokens:]
	}
	after := strings.Fields(strings.ToLower(text[end:]))
	if len(after) > contextTokens {
		after = after[:contextTokens]
	}
	win := strings.Join(before, " ") + " " + strings.ToLower(text[start:end]) + " " + strings.Join(after, " ")

	for _, cs := range contextStems {
		for _, stem := range cs.stems {
			if HasWordPrefix(win, stem) {
				return cs.ctx
			}
		}
	}
	return defaultContext
}

// TimesWithContext extracts document-wide time constraints, annotates each
// from its surrounding tokens and drops repeats of (value, unit, applies_to).
func TimesWithContext(text string) []model.TimeConstraint {
	var out []model.TimeConstraint
	seen := make(map[string]bool)

	for _, c := range ScanTimes(text) {
		if !c.Found {
			continue
		}
		tc := c.Constraint
		inferContext(text, c.Start, c.End).apply(&tc)

		key := strconv.Itoa(tc.Value) + "|" + string(tc.Unit) + "|" + tc.AppliesTo
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tc)
	}
	return out
}

// TimesForObligation extracts clause-level time constraints annotated from
// the clause's own obligation label
func TimesForObligation(text string, ob model.Obligation) []model.TimeConstraint {
	ctx := contextForObligation(ob)
	times := ExtractTimes(text)
	for i := range times {
		ctx.apply(&times[i])
	}
	return times
}
