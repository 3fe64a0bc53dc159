package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/clariscan/internal/format"
	"github.com/ppiankov/clariscan/internal/model"
)

var (
	rulesTerms    bool
	rulesMarkdown bool
	rulesLevel    string
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog",
	Long: `Rules prints every rule in the active catalog, including rules added
through analysis.rule_files, in evaluation order.

Example:
  clariscan rules
  clariscan rules --risk-level high
  clariscan rules --terms --markdown > TERMS.md`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().BoolVar(&rulesTerms, "terms", false, "list important terms instead of risk rules")
	rulesCmd.Flags().BoolVar(&rulesMarkdown, "markdown", false, "render as a Markdown table")
	rulesCmd.Flags().StringVar(&rulesLevel, "risk-level", "", "only list rules of this risk level")
}

func runRules(cmd *cobra.Command, args []string) error {
	_, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}
	cat := p.Analyzer().Catalog()

	mode := format.ASCII
	if rulesMarkdown {
		mode = format.Markdown
	}

	var out string
	if rulesTerms {
		out = termsTable(mode, cat.Terms())
	} else {
		rules := cat.Rules()
		if rulesLevel != "" {
			want, err := model.ParseRiskLevel(rulesLevel)
			if err != nil {
				return err
			}
			rules = filterRules(rules, want)
		}
		out = rulesTable(mode, rules)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func filterRules(rules []model.Rule, level model.RiskLevel) []model.Rule {
	var out []model.Rule
	for _, r := range rules {
		if r.RiskLevel == level {
			out = append(out, r)
		}
	}
	return out
}

func rulesTable(mode format.Mode, rules []model.Rule) string {
	t := format.NewTable(mode)
	t.Header("ID", "Risk", "Category", "Min hits", "Keywords")
	t.Columns(format.Column{Number: 5, MaxWidth: 60}, format.Column{Number: 4, Align: format.AlignRight})
	for _, r := range rules {
		t.Row(r.ID, r.RiskLevel, r.Category, r.RequiredHits(), format.Truncate(strings.Join(r.Keywords, ", "), 120))
	}
	t.Footer("", "", "", "Total", len(rules))
	return t.String()
}

func termsTable(mode format.Mode, terms []model.ImportantTerm) string {
	t := format.NewTable(mode)
	t.Header("ID", "Title", "Importance", "Category", "Keywords")
	t.Columns(format.Column{Number: 5, MaxWidth: 60})
	for _, term := range terms {
		t.Row(term.ID, term.Title, term.Importance, term.Category, format.Truncate(strings.Join(term.Keywords, ", "), 120))
	}
	t.Footer("", "", "", "Total", len(terms))
	return t.String()
}
