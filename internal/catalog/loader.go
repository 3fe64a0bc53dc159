package catalog

import (
	"fmt"
	"os"

	"github.com/ppiankov/clariscan/internal/model"
	"gopkg.in/yaml.v3"
)

// RuleFile is the YAML layout of an extra rule pack
type RuleFile struct {
	Rules []model.Rule          `yaml:"rules"`
	Terms []model.ImportantTerm `yaml:"terms,omitempty"`
}

// LoadRuleFile reads a YAML rule pack
func LoadRuleFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}
	return &rf, nil
}

// WithFiles returns the built-in catalog extended by the given rule packs.
// Rules from packs are appended after the built-in ones, in file order.
func WithFiles(paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return Default(), nil
	}

	base := Default()
	rules := base.Rules()
	terms := base.Terms()

	for _, path := range paths {
		rf, err := LoadRuleFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rf.Rules...)
		terms = append(terms, rf.Terms...)
	}

	c, err := New(rules, terms)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return c, nil
}
