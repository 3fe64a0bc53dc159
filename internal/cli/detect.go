package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/clariscan/internal/format"
	"github.com/ppiankov/clariscan/internal/source"
)

var detectJSON bool

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Classify a document as contract or non-contract",
	Long: `Detect runs only the document type check that gates every analysis and
prints the contract and non-contract keyword scores behind the decision.

Example:
  clariscan detect resume.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "print the detection as JSON")
}

func runDetect(cmd *cobra.Command, args []string) error {
	doc, err := source.LoadFile(args[0])
	if err != nil {
		return err
	}

	_, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}
	det := p.Detector().Detect(doc.Text)

	if detectJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(det)
	}

	t := format.NewTable(format.ASCII)
	t.Title(doc.Name)
	t.Row("Document type", det.DocumentType)
	t.Row("Confidence", fmt.Sprintf("%.2f", det.Confidence))
	t.Row("Contract score", det.ContractScore)
	t.Row("Non-contract score", det.OtherScore)
	t.Row("Reason", det.Reason)
	t.Row("Extracted with", doc.Adapter)
	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
