// Package match scores catalog rules against normalized text.
package match

import (
	"sort"
	"strings"

	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/model"
)

const (
	// NegationWindow is how many preceding tokens can negate a single-word keyword
	NegationWindow = 3
	// ProximityWindow is the maximum token distance between two occurrences that earns the bonus
	ProximityWindow = 6
)

var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"without": true,
	"never":   true,
	"none":    true,
}

// Result is the transparent outcome of scoring one rule against one text
type Result struct {
	KeywordHits     int      `json:"keyword_hits"`
	PhraseHits      int      `json:"phrase_hits"`
	ProximityBonus  int      `json:"proximity_bonus"`
	EffectiveHits   int      `json:"effective_hits"`
	Confidence      int      `json:"confidence"`
	Triggered       bool     `json:"triggered"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MatchedPhrases  []string `json:"matched_phrases,omitempty"`
	NegatedKeywords []string `json:"negated_keywords,omitempty"`
}

// Candidate pairs a triggered rule with its score
type Candidate struct {
	Rule   model.Rule
	Result Result
}

// Score evaluates a rule against text that has already been normalized
func Score(rule model.Rule, normText string) Result {
	tokens := strings.Fields(normText)
	joined := strings.Join(tokens, " ")
	var res Result
	var positions []int

	for _, kw := range rule.Keywords {
		normKw := extract.Normalize(kw)
		kwTokens := strings.Fields(normKw)

		switch len(kwTokens) {
		case 0:
			continue
		case 1:
			hits, negated := singleWordHits(tokens, kwTokens[0])
			if len(hits) == 0 {
				if negated {
					res.NegatedKeywords = append(res.NegatedKeywords, kw)
				}
				continue
			}
			res.KeywordHits++
			res.MatchedKeywords = append(res.MatchedKeywords, kw)
			positions = append(positions, hits...)
		default:
			starts := substringStarts(joined, strings.Join(kwTokens, " "))
			if len(starts) == 0 {
				continue
			}
			res.KeywordHits++
			res.MatchedKeywords = append(res.MatchedKeywords, kw)
			positions = append(positions, starts...)
		}
	}

	for _, ph := range rule.Phrases {
		if PhraseOccurs(normText, ph) {
			res.PhraseHits++
			res.MatchedPhrases = append(res.MatchedPhrases, ph)
		}
	}

	if withinProximity(positions) {
		res.ProximityBonus = 1
	}

	res.EffectiveHits = max(0, res.KeywordHits+res.PhraseHits+res.ProximityBonus)
	res.Triggered = res.EffectiveHits > 0 && res.EffectiveHits >= rule.RequiredHits()
	res.Confidence = Confidence(res.EffectiveHits, len(rule.Keywords))

	return res
}

// KeywordOccurs reports whether a keyword occurs in normalized text the way
// Score looks for it, ignoring negation
func KeywordOccurs(normText, keyword string) bool {
	normKw := extract.Normalize(keyword)
	if normKw == "" {
		return false
	}
	if !strings.Contains(normKw, " ") {
		return extract.ContainsTerm(normText, normKw)
	}
	return strings.Contains(normText, normKw)
}

// PhraseOccurs reports whether a rule phrase is a substring of normalized text
func PhraseOccurs(normText, phrase string) bool {
	normPh := extract.Normalize(phrase)
	return normPh != "" && strings.Contains(normText, normPh)
}

// Confidence is min(100, floor(effective / max(1, keywords) * 100))
func Confidence(effectiveHits, keywordCount int) int {
	c := effectiveHits * 100 / max(1, keywordCount)
	return min(100, max(0, c))
}

// singleWordHits returns the positions of non-negated occurrences and whether
// any occurrence was suppressed by a negation
func singleWordHits(tokens []string, word string) ([]int, bool) {
	var hits []int
	negated := false

	for i, tok := range tokens {
		if tok != word {
			continue
		}
		if isNegated(tokens, i) {
			negated = true
			continue
		}
		hits = append(hits, i)
	}
	return hits, negated
}

func isNegated(tokens []string, i int) bool {
	for j := max(0, i-NegationWindow); j < i; j++ {
		if negations[tokens[j]] {
			return true
		}
	}
	return false
}

// substringStarts returns the token index of every occurrence of phrase in
// joined, counting an occurrence that begins mid-token at that token
func substringStarts(joined, phrase string) []int {
	var starts []int
	for off := 0; off < len(joined); {
		i := strings.Index(joined[off:], phrase)
		if i < 0 {
			break
		}
		at := off + i
		starts = append(starts, strings.Count(joined[:at], " "))
		off = at + 1
	}
	return starts
}

// withinProximity reports whether two distinct positions are at most ProximityWindow apart
func withinProximity(positions []int) bool {
	if len(positions) < 2 {
		return false
	}
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		d := sorted[i] - sorted[i-1]
		if d > 0 && d <= ProximityWindow {
			return true
		}
	}
	return false
}

// Evaluate scores every rule and returns the triggered ones in rule order
func Evaluate(rules []model.Rule, normText string) []Candidate {
	var out []Candidate
	for _, r := range rules {
		res := Score(r, normText)
		if res.Triggered {
			out = append(out, Candidate{Rule: r, Result: res})
		}
	}
	return out
}

// Rank orders candidates by risk level then confidence, both descending.
// The sort is stable, so equal candidates keep rule order.
func Rank(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		ri, rj := cands[i].Rule.RiskLevel.Rank(), cands[j].Rule.RiskLevel.Rank()
		if ri != rj {
			return ri > rj
		}
		return cands[i].Result.Confidence > cands[j].Result.Confidence
	})
}
