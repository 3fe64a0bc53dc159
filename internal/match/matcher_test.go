package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/clariscan/internal/catalog"
	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/model"
)

func catalogRule(t *testing.T, id string) model.Rule {
	t.Helper()
	r, ok := catalog.Default().Rule(id)
	require.True(t, ok, "rule %s missing from catalog", id)
	return r
}

func TestScore_MinHitsGate(t *testing.T) {
	rule := catalogRule(t, "IP_LICENSE_RESTRICTIONS")
	require.Equal(t, 2, rule.RequiredHits())

	one := Score(rule, extract.Normalize("The license granted is limited."))
	assert.Equal(t, 1, one.EffectiveHits)
	assert.False(t, one.Triggered)

	two := Score(rule, extract.Normalize("The license granted is limited. This is a revocable license granted to you."))
	assert.Equal(t, 2, two.KeywordHits)
	assert.True(t, two.Triggered)
	assert.ElementsMatch(t, []string{"revocable", "license granted"}, two.MatchedKeywords)
}

func TestScore_NegationSuppressesSingleWord(t *testing.T) {
	rule := model.Rule{ID: "LIABLE", RiskLevel: model.RiskHigh, Keywords: []string{"liable"}}

	res := Score(rule, extract.Normalize("This agreement is not liable for anything."))
	assert.Equal(t, 0, res.KeywordHits)
	assert.False(t, res.Triggered)
	assert.Equal(t, []string{"liable"}, res.NegatedKeywords)

	res = Score(rule, extract.Normalize("The supplier is liable for losses."))
	assert.Equal(t, 1, res.KeywordHits)
	assert.True(t, res.Triggered)
}

func TestScore_NegationWindow(t *testing.T) {
	rule := model.Rule{ID: "LIABLE", RiskLevel: model.RiskHigh, Keywords: []string{"liable"}}

	// four tokens between "not" and the keyword puts it outside the window
	res := Score(rule, extract.Normalize("Not the party in question liable."))
	assert.Equal(t, 1, res.KeywordHits)

	res = Score(rule, extract.Normalize("Never shall it be liable."))
	assert.Equal(t, 1, res.KeywordHits, "never is four tokens back")

	res = Score(rule, extract.Normalize("Never shall be liable."))
	assert.Equal(t, 0, res.KeywordHits)
}

func TestScore_NegationOnCatalogRule(t *testing.T) {
	rule := catalogRule(t, "LIQUIDATED_DAMAGES_PENALTY")

	res := Score(rule, extract.Normalize("There is no penalty for early payment."))
	assert.False(t, res.Triggered)
	assert.Contains(t, res.NegatedKeywords, "penalty")

	res = Score(rule, extract.Normalize("A penalty applies for late payment."))
	assert.True(t, res.Triggered)
}

func TestScore_OneNegatedOccurrenceDoesNotHideAnother(t *testing.T) {
	rule := model.Rule{ID: "AUDIT", RiskLevel: model.RiskLow, Keywords: []string{"audit"}}

	res := Score(rule, extract.Normalize("There is no audit this year. Next year an audit is required."))
	assert.Equal(t, 1, res.KeywordHits)
	assert.True(t, res.Triggered)
}

func TestScore_MultiWordMatchesInflections(t *testing.T) {
	rule := model.Rule{ID: "FEE", RiskLevel: model.RiskLow, Keywords: []string{"late fee"}}

	assert.True(t, Score(rule, extract.Normalize("Late fees apply to every overdue invoice.")).Triggered)
	assert.True(t, Score(rule, extract.Normalize("A LATE-FEE applies.")).Triggered)
	assert.False(t, Score(rule, extract.Normalize("Fees are late.")).Triggered)
}

func TestScore_CatalogMultiWordInflections(t *testing.T) {
	res := Score(catalogRule(t, "LATE_FEES"), extract.Normalize("Late fees apply to every overdue invoice."))
	assert.Equal(t, 1, res.KeywordHits)
	assert.True(t, res.Triggered)

	res = Score(catalogRule(t, "IP_LICENSE_RESTRICTIONS"), extract.Normalize("A revocable sublicense granted hereunder."))
	assert.Equal(t, 2, res.KeywordHits)
	assert.Equal(t, 1, res.ProximityBonus, "sublicense is one token after revocable")
	assert.Equal(t, 3, res.EffectiveHits)
	assert.True(t, res.Triggered)
}

func TestScore_PhraseIsSubstring(t *testing.T) {
	rule := model.Rule{ID: "CONV", RiskLevel: model.RiskHigh, Keywords: []string{"convenience"}, Phrases: []string{"terminate for convenience"}}

	res := Score(rule, extract.Normalize("Either side may terminate for conveniences of its own."))
	assert.Equal(t, 1, res.PhraseHits)
	assert.Equal(t, 0, res.KeywordHits)
}

func TestSubstringStarts(t *testing.T) {
	joined := "a revocable sublicense granted and license granted"
	assert.Equal(t, []int{2, 5}, substringStarts(joined, "license granted"))
	assert.Empty(t, substringStarts(joined, "granted license"))
}

func TestScore_Phrases(t *testing.T) {
	rule := model.Rule{
		ID:        "CONVENIENCE",
		RiskLevel: model.RiskHigh,
		Keywords:  []string{"sole discretion"},
		Phrases:   []string{"for any reason or no reason"},
	}

	res := Score(rule, extract.Normalize("We may end this for any reason, or no reason."))
	assert.Equal(t, 0, res.KeywordHits)
	assert.Equal(t, 1, res.PhraseHits)
	assert.Equal(t, 1, res.EffectiveHits)
	assert.Equal(t, 100, res.Confidence)
}

func TestScore_ProximityBonus(t *testing.T) {
	rule := model.Rule{ID: "P", RiskLevel: model.RiskMedium, Keywords: []string{"revocable", "non-transferable", "sublicense", "exclusive"}}

	near := Score(rule, extract.Normalize("a revocable and non-transferable license"))
	assert.Equal(t, 2, near.KeywordHits)
	assert.Equal(t, 1, near.ProximityBonus)
	assert.Equal(t, 3, near.EffectiveHits)
	assert.Equal(t, 75, near.Confidence)

	far := Score(rule, extract.Normalize("a revocable license that the customer may use internally and is non-transferable"))
	assert.Equal(t, 2, far.KeywordHits)
	assert.Equal(t, 0, far.ProximityBonus)
}

func TestScore_EndToEndTermination(t *testing.T) {
	rule := catalogRule(t, "UNILATERAL_TERMINATION")
	text := "1. Termination. Either party may terminate this agreement at any time without cause upon 5 days written notice."

	res := Score(rule, extract.Normalize(text))
	assert.True(t, res.Triggered)
	assert.Equal(t, 2, res.EffectiveHits)
	assert.Equal(t, 40, res.Confidence)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		hits, keywords, want int
	}{
		{0, 4, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 66},
		{5, 2, 100},
		{1, 0, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.hits, tt.keywords), "Confidence(%d, %d)", tt.hits, tt.keywords)
	}
}

func TestRank_SeverityDominatesConfidence(t *testing.T) {
	cands := []Candidate{
		{Rule: model.Rule{ID: "MEDIUM_95", RiskLevel: model.RiskMedium}, Result: Result{Confidence: 95}},
		{Rule: model.Rule{ID: "LOW_100", RiskLevel: model.RiskLow}, Result: Result{Confidence: 100}},
		{Rule: model.Rule{ID: "HIGH_60", RiskLevel: model.RiskHigh}, Result: Result{Confidence: 60}},
		{Rule: model.Rule{ID: "HIGH_80", RiskLevel: model.RiskHigh}, Result: Result{Confidence: 80}},
	}

	Rank(cands)

	var ids []string
	for _, c := range cands {
		ids = append(ids, c.Rule.ID)
	}
	assert.Equal(t, []string{"HIGH_80", "HIGH_60", "MEDIUM_95", "LOW_100"}, ids)
}

func TestRank_StableForTies(t *testing.T) {
	cands := []Candidate{
		{Rule: model.Rule{ID: "A", RiskLevel: model.RiskHigh}, Result: Result{Confidence: 50}},
		{Rule: model.Rule{ID: "B", RiskLevel: model.RiskHigh}, Result: Result{Confidence: 50}},
	}
	Rank(cands)
	assert.Equal(t, "A", cands[0].Rule.ID)
}

func TestEvaluate_KeepsOnlyTriggered(t *testing.T) {
	rules := []model.Rule{
		{ID: "HIT", RiskLevel: model.RiskLow, Keywords: []string{"indemnify"}},
		{ID: "MISS", RiskLevel: model.RiskLow, Keywords: []string{"arbitration"}},
		{ID: "GATED", RiskLevel: model.RiskLow, Keywords: []string{"indemnify", "defend"}, MinHits: 2},
	}

	got := Evaluate(rules, extract.Normalize("You shall indemnify the company."))
	require.Len(t, got, 1)
	assert.Equal(t, "HIT", got[0].Rule.ID)
}

func TestOccurs(t *testing.T) {
	norm := extract.Normalize("Late fees apply. The penalty-free period ends.")

	assert.True(t, KeywordOccurs(norm, "late fee"))
	assert.True(t, KeywordOccurs(norm, "penalty"))
	assert.False(t, KeywordOccurs(norm, "pen"))
	assert.False(t, KeywordOccurs(norm, ""))
	assert.True(t, PhraseOccurs(norm, "fees apply"))
	assert.False(t, PhraseOccurs(norm, "  "))
}
