// Package catalog holds the read-only table of risk rules and important terms.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ppiankov/clariscan/internal/extract"
	"github.com/ppiankov/clariscan/internal/model"
)

// ErrInvalidRule is wrapped by every validation failure
var ErrInvalidRule = errors.New("invalid rule")

// Catalog is an immutable, order-preserving set of rules and terms.
// It is safe for concurrent use without locking.
type Catalog struct {
	rules []model.Rule
	terms []model.ImportantTerm
	index map[string]int
	fp    string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, constructed once per process
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinRules, builtinTerms)
		if err != nil {
			panic(fmt.Sprintf("built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New validates and copies the given rules and terms into a catalog
func New(rules []model.Rule, terms []model.ImportantTerm) (*Catalog, error) {
	c := &Catalog{
		rules: make([]model.Rule, 0, len(rules)),
		terms: make([]model.ImportantTerm, 0, len(terms)),
		index: make(map[string]int, len(rules)),
	}

	for _, r := range rules {
		if err := c.add(r); err != nil {
			return nil, err
		}
	}

	seenTerms := make(map[string]bool, len(terms))
	for _, t := range terms {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: important term without id", ErrInvalidRule)
		}
		if seenTerms[t.ID] {
			return nil, fmt.Errorf("%w: duplicate important term %s", ErrInvalidRule, t.ID)
		}
		if !hasPattern(t.Keywords) {
			return nil, fmt.Errorf("%w: important term %s has no usable keywords", ErrInvalidRule, t.ID)
		}
		seenTerms[t.ID] = true
		t.Keywords = slices.Clone(t.Keywords)
		c.terms = append(c.terms, t)
	}

	fp, err := fingerprint(c.rules, c.terms)
	if err != nil {
		return nil, err
	}
	c.fp = fp
	return c, nil
}

// Fingerprint identifies the catalog contents. Catalogs with equal rules and
// terms in the same order share a fingerprint.
func (c *Catalog) Fingerprint() string {
	return c.fp
}

func fingerprint(rules []model.Rule, terms []model.ImportantTerm) (string, error) {
	data, err := json.Marshal(struct {
		Rules []model.Rule          `json:"rules"`
		Terms []model.ImportantTerm `json:"terms"`
	}{rules, terms})
	if err != nil {
		return "", fmt.Errorf("fingerprint catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}

// Extend returns a new catalog with extra rules appended. The receiver is unchanged.
func (c *Catalog) Extend(rules ...model.Rule) (*Catalog, error) {
	all := make([]model.Rule, 0, len(c.rules)+len(rules))
	all = append(all, c.rules...)
	all = append(all, rules...)
	return New(all, c.terms)
}

func (c *Catalog) add(r model.Rule) error {
	if r.ID == "" {
		return fmt.Errorf("%w: rule without id", ErrInvalidRule)
	}
	if _, dup := c.index[r.ID]; dup {
		return fmt.Errorf("%w: duplicate rule id %s", ErrInvalidRule, r.ID)
	}
	if !r.RiskLevel.Valid() {
		return fmt.Errorf("%w: rule %s has risk level %q", ErrInvalidRule, r.ID, r.RiskLevel)
	}
	if !hasPattern(r.Keywords) {
		return fmt.Errorf("%w: rule %s has no usable keywords", ErrInvalidRule, r.ID)
	}
	if r.MinHits < 0 {
		return fmt.Errorf("%w: rule %s has negative min_hits", ErrInvalidRule, r.ID)
	}
	if r.MinHits == 0 {
		r.MinHits = 1
	}

	r.Keywords = slices.Clone(r.Keywords)
	r.Phrases = slices.Clone(r.Phrases)
	r.AppliesTo = slices.Clone(r.AppliesTo)

	c.index[r.ID] = len(c.rules)
	c.rules = append(c.rules, r)
	return nil
}

// hasPattern reports whether at least one keyword survives normalization
func hasPattern(keywords []string) bool {
	for _, k := range keywords {
		if extract.Normalize(k) != "" {
			return true
		}
	}
	return false
}

// Rules returns the rules in catalog order. Callers must not mutate nested slices.
func (c *Catalog) Rules() []model.Rule {
	return slices.Clone(c.rules)
}

// Terms returns the important terms in catalog order
func (c *Catalog) Terms() []model.ImportantTerm {
	return slices.Clone(c.terms)
}

// Rule looks up a rule by id
func (c *Catalog) Rule(id string) (model.Rule, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Rule{}, false
	}
	return c.rules[i], true
}

// Position returns the catalog order of a rule, or -1
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Len returns the number of rules
func (c *Catalog) Len() int {
	return len(c.rules)
}
