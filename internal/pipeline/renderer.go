package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/clariscan/internal/format"
	"github.com/ppiankov/clariscan/internal/model"
)

// Renderer writes reports as JSON, Markdown and terminal summaries
type Renderer struct {
	includeFooter  bool
	includeClauses bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter, includeClauses bool) *Renderer {
	return &Renderer{includeFooter: includeFooter, includeClauses: includeClauses}
}

// WriteJSON encodes the report as indented JSON
func (r *Renderer) WriteJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderJSON writes the report to path, or stdout when path is "-"
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	if path == "-" {
		return r.WriteJSON(os.Stdout, report)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.WriteJSON(f, report); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// RenderMarkdown writes the Markdown report to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	if err := os.WriteFile(path, []byte(r.Markdown(report)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Markdown renders the report as a Markdown document
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# ClariScan Report: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "- **Source:** %s\n", report.Source)
	fmt.Fprintf(&b, "- **Analyzed:** %s\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- **Document type:** %s (confidence %.2f)\n\n", report.Detection.DocumentType, report.Detection.Confidence)

	if report.Status == model.StatusNonContract {
		fmt.Fprintf(&b, "> %s\n\n%s\n", report.Message, report.Detection.Reason)
		r.footer(&b, "")
		return b.String()
	}

	doc := report.Document
	if doc == nil {
		r.footer(&b, "")
		return b.String()
	}

	o := doc.Overview
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "| Overall risk | Risk score | Weighted count | High | Medium | Low |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d/100 | %d | %d | %d | %d |\n\n", o.OverallRisk, o.RiskScore, o.WeightedCount, o.HighCount, o.MediumCount, o.LowCount)

	b.WriteString("## Summary\n\n")
	b.WriteString(doc.PlainEnglishSummary + "\n\n")

	if len(doc.ReviewNow) > 0 {
		b.WriteString("## Review Now\n\n")
		b.WriteString(format.FindingsTable(format.Markdown, doc.ReviewNow) + "\n\n")
	}
	if len(doc.ReviewSoon) > 0 {
		b.WriteString("## Review Soon\n\n")
		b.WriteString(format.FindingsTable(format.Markdown, doc.ReviewSoon) + "\n\n")
	}

	if len(doc.ActionChecklist) > 0 {
		b.WriteString("## Action Checklist\n\n")
		for _, item := range doc.ActionChecklist {
			fmt.Fprintf(&b, "- [ ] %s\n", item)
		}
		b.WriteString("\n")
	}

	r.facts(&b, doc)

	if r.includeClauses && len(report.Clauses) > 0 {
		b.WriteString("## Clauses\n\n")
		t := format.NewTable(format.Markdown)
		t.Header("#", "Type", "Risk", "Confidence", "Clause")
		for _, c := range report.Clauses {
			t.Row(c.Index, c.Analysis.ClauseType, c.Analysis.RiskLevel, format.Percent(c.Analysis.Confidence), format.Truncate(c.Text, 80))
		}
		b.WriteString(t.String() + "\n\n")
	}

	r.footer(&b, doc.Disclaimer)
	return b.String()
}

func (r *Renderer) facts(b *strings.Builder, doc *model.DocumentReport) {
	if len(doc.TimeConstraints) > 0 {
		b.WriteString("## Deadlines\n\n")
		for _, tc := range doc.TimeConstraints {
			fmt.Fprintf(b, "- %s: %s\n", tc.RawText, format.Deadline(tc))
		}
		b.WriteString("\n")
	}
	if len(doc.Percentages) > 0 {
		b.WriteString("## Rates\n\n")
		for _, p := range doc.Percentages {
			fmt.Fprintf(b, "- %s\n", format.Rate(p))
		}
		b.WriteString("\n")
	}
	if len(doc.Money) > 0 {
		b.WriteString("## Amounts\n\n")
		for _, m := range doc.Money {
			fmt.Fprintf(b, "- %s\n", m.RawText)
		}
		b.WriteString("\n")
	}
	if len(doc.Consequences) > 0 {
		b.WriteString("## What Could Happen\n\n")
		for _, c := range doc.Consequences {
			fmt.Fprintf(b, "- %s\n", c.Message)
		}
		b.WriteString("\n")
	}
	if len(doc.ImportantTerms) > 0 {
		b.WriteString("## Important Terms\n\n")
		for _, t := range doc.ImportantTerms {
			fmt.Fprintf(b, "- **%s** (%s): %s\n", t.Title, t.Importance, strings.Join(t.Matched, ", "))
		}
		b.WriteString("\n")
	}
}

func (r *Renderer) footer(b *strings.Builder, disclaimer string) {
	if !r.includeFooter {
		return
	}
	b.WriteString("---\n\n")
	if disclaimer != "" {
		fmt.Fprintf(b, "_%s_\n\n", disclaimer)
	}
	b.WriteString("_Generated by ClariScan (deterministic rule engine)._\n")
}

// RenderSummary prints a short terminal summary
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "\n%s\n", report.Subject)
	fmt.Fprintf(w, "Document type: %s (%.2f)\n", report.Detection.DocumentType, report.Detection.Confidence)

	switch report.Status {
	case model.StatusNonContract:
		fmt.Fprintf(w, "✗ %s\n", report.Message)
		return
	case model.StatusFailed:
		fmt.Fprintf(w, "✗ Analysis failed: %s\n", report.Message)
		return
	}

	doc := report.Document
	o := doc.Overview
	fmt.Fprintf(w, "Overall risk: %s  (risk score %d/100, weighted %d)\n", format.RiskMark(o.OverallRisk), o.RiskScore, o.WeightedCount)
	fmt.Fprintf(w, "Findings: %d high, %d medium, %d low across %d clauses\n\n", o.HighCount, o.MediumCount, o.LowCount, report.TotalClauses)

	if top := append(append([]model.Finding{}, doc.ReviewNow...), doc.ReviewSoon...); len(top) > 0 {
		fmt.Fprintln(w, format.FindingsTable(format.ASCII, top))
	}
	fmt.Fprintf(w, "\n%s\n", doc.PlainEnglishSummary)
}

// RenderReport writes the requested outputs and prints the summary to stdout
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose && jsonPath != "-" {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if jsonPath != "-" {
		p.renderer.RenderSummary(os.Stdout, report)
	}
	return nil
}
