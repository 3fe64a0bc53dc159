package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a local contract (PDF, HTML or text)",
	Long: `Analyze reads a contract from disk, checks that it reads like an
agreement, splits it into numbered clauses and reports:
- Overall risk, risk score and findings grouped by severity
- Deadlines, rates and money amounts with their context
- A plain-English summary and an action checklist

Example:
  clariscan analyze lease.pdf
  clariscan analyze terms.txt --json report.json --md report.md
  clariscan analyze terms.html --json - | jq .document.overview`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addOutputFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	_, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n\n", path)
	}

	report, err := p.AnalyzeFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		printProgress(report)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
