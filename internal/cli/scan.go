package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noClauses   bool
	insecureTLS bool
	noRobots    bool
	httpProxy   string
	httpsProxy  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a terms or policy page and analyze it",
	Long: `Scan fetches a published agreement (terms of service, privacy policy,
rental terms) and analyzes it like a local file:
- Respect robots.txt and per-domain rate limits
- Extract the visible text of HTML or PDF responses
- Reject pages that do not read like a contract
- Flag risky clauses and extract deadlines, rates and amounts

Example:
  clariscan scan https://example.com/terms
  clariscan scan https://example.com/terms --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	addOutputFlags(scanCmd)
	addHTTPFlags(scanCmd)
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall scan timeout")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (- for stdout)")
	cmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	cmd.Flags().BoolVar(&noClauses, "no-clauses", false, "omit per-clause details from Markdown reports")
}

func addHTTPFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent (default from config)")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read (default from config)")
	cmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	cmd.Flags().BoolVar(&noRobots, "no-robots", false, "do not consult robots.txt")
	cmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	cmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(cmd *cobra.Command, cfg *model.Config) {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	if changed("no-cache") {
		cfg.Cache.Enabled = !noCache
	}
	if changed("no-footer") {
		cfg.Output.IncludeFooter = !noFooter
	}
	if changed("no-clauses") {
		cfg.Output.IncludeClauses = !noClauses
	}
	if changed("ua") {
		cfg.HTTP.UserAgent = userAgent
	}
	if changed("max-bytes") {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if changed("insecure") {
		cfg.HTTP.InsecureTLS = insecureTLS
	}
	if changed("no-robots") {
		cfg.HTTP.RespectRobots = !noRobots
	}
	if changed("http-proxy") {
		cfg.HTTP.HTTPProxy = httpProxy
	}
	if changed("https-proxy") {
		cfg.HTTP.HTTPSProxy = httpsProxy
	}
}

// setupPipeline loads configuration, applies flags and builds the pipeline
func setupPipeline(cmd *cobra.Command) (*model.Config, *pipeline.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	applyFlags(cmd, cfg)

	p, err := newPipeline(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	return p, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	cfg, p, err := setupPipeline(cmd)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintf(os.Stderr, "Robots: %v\n", cfg.HTTP.RespectRobots)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "⚙️  Fetching...\n")
	}

	report, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		printProgress(report)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// printProgress reports what the pipeline found on stderr
func printProgress(report *model.Report) {
	fmt.Fprintf(os.Stderr, "✓ Detected %s (confidence %.2f)\n", report.Detection.DocumentType, report.Detection.Confidence)
	if report.Status != model.StatusAnalyzed {
		fmt.Fprintf(os.Stderr, "✗ %s\n", report.Message)
		fmt.Fprintln(os.Stderr)
		return
	}
	fmt.Fprintf(os.Stderr, "✓ Analyzed %d clauses\n", report.TotalClauses)
	if doc := report.Document; doc != nil {
		fmt.Fprintf(os.Stderr, "✓ Triggered %d rules\n", len(doc.Findings()))
		fmt.Fprintf(os.Stderr, "✓ Risk score: %d/100\n", doc.Overview.RiskScore)
	}
	fmt.Fprintln(os.Stderr)
}
