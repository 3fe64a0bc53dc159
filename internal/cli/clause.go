package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/clariscan/internal/format"
	"github.com/ppiankov/clariscan/internal/model"
)

var clauseJSON bool

// clauseCmd represents the clause command
var clauseCmd = &cobra.Command{
	Use:   "clause <text|->",
	Short: "Analyze a single clause",
	Long: `Clause scores one clause against the rule catalog and prints the best
matching rule with its explanation, suggestion and extracted facts.
Pass - to read the clause from stdin.

Example:
  clariscan clause "Either party may terminate at any time without notice."
  pbpaste | clariscan clause - --json`,
	Args: cobra.ExactArgs(1),
	RunE: runClause,
}

func init() {
	rootCmd.AddCommand(clauseCmd)
	clauseCmd.Flags().BoolVar(&clauseJSON, "json", false, "print the full result as JSON")
}

func runClause(cmd *cobra.Command, args []string) error {
	text := args[0]
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("clause text is empty")
	}

	_, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}
	res := p.Analyzer().AnalyzeClause(text)

	if clauseJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printClause(cmd.OutOrStdout(), res)
	return nil
}

func printClause(w io.Writer, res model.ClauseResult) {
	t := format.NewTable(format.ASCII)
	t.Columns(format.Column{Number: 2, MaxWidth: 80})
	t.Row("Risk", format.RiskMark(res.RiskLevel))
	t.Row("Clause type", res.ClauseType)
	if res.RuleID != "" {
		t.Row("Rule", res.RuleID)
	}
	t.Row("Confidence", format.Percent(res.Confidence))
	t.Row("Explanation", res.Explanation)
	if res.Suggestion != "" {
		t.Row("Suggestion", res.Suggestion)
	}
	for _, tc := range res.TimeConstraints {
		t.Row("Deadline", format.Deadline(tc))
	}
	for _, pc := range res.Percentages {
		t.Row("Rate", format.Rate(pc))
	}
	for _, m := range res.Money {
		t.Row("Amount", m.RawText)
	}
	if res.Consequence != "" {
		t.Row("What could happen", res.Consequence)
	}
	fmt.Fprintln(w, t.String())
}
