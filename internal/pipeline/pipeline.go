// Package pipeline runs detection, document analysis and per-clause
// analysis over one input and assembles the report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/clariscan/internal/analyze"
	"github.com/ppiankov/clariscan/internal/cache"
	"github.com/ppiankov/clariscan/internal/catalog"
	"github.com/ppiankov/clariscan/internal/doctype"
	"github.com/ppiankov/clariscan/internal/logging"
	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/source"
	"github.com/ppiankov/clariscan/internal/util"
	"github.com/ppiankov/clariscan/internal/worker"
)

// reportRevision is part of the report cache key; bump it whenever matching
// or scoring changes
const reportRevision = 2

var (
	// ErrTooShort is returned for inputs below analysis.min_chars
	ErrTooShort = errors.New("document too short to analyze")
	// ErrDisallowed is returned when robots.txt forbids fetching a URL
	ErrDisallowed = errors.New("disallowed by robots.txt")
	// ErrExtract wraps failures turning bytes into text
	ErrExtract = errors.New("extract text")
)

// Input is one document to analyze
type Input struct {
	Subject   string
	Source    string
	Text      string
	FetchMeta *model.FetchMeta
}

// Pipeline orchestrates detection, analysis and report assembly
type Pipeline struct {
	analyzer *analyze.Analyzer
	detector *doctype.Detector
	sources  *source.Registry
	fetcher  *Fetcher
	robots   *util.RobotsChecker
	limiter  *worker.Limiter
	cache    cache.Cache
	renderer *Renderer
	config   *model.Config
	logger   *slog.Logger
	now      func() time.Time

	document func(string) (model.DocumentReport, error)
}

// Option customizes a Pipeline
type Option func(*Pipeline)

// WithCache replaces the cache built from configuration
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) { p.cache = c }
}

// WithAnalyzer replaces the analyzer built from configuration
func WithAnalyzer(a *analyze.Analyzer) Option {
	return func(p *Pipeline) {
		p.analyzer = a
		p.document = a.AnalyzeDocument
	}
}

// WithClock sets the time source for AnalyzedAt
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// NewPipeline creates a pipeline from configuration. Extra rule packs named
// in analysis.rule_files are loaded here.
func NewPipeline(cfg *model.Config, opts ...Option) (*Pipeline, error) {
	cat, err := catalog.WithFiles(cfg.Analysis.RuleFiles...)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a := analyze.NewAnalyzer(cat)

	fetcher := NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
		cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy).
		WithAttempts(cfg.HTTP.MaxRetries)

	p := &Pipeline{
		analyzer: a,
		detector: doctype.NewDetector(),
		sources:  source.NewRegistry(),
		fetcher:  fetcher,
		limiter:  worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		cache:    cache.New(cfg.Cache),
		renderer: NewRenderer(cfg.Output.IncludeFooter, cfg.Output.IncludeClauses),
		config:   cfg,
		logger:   logging.New("pipeline"),
		now:      time.Now,
		document: a.AnalyzeDocument,
	}
	if cfg.HTTP.RespectRobots {
		p.robots = util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Analyzer returns the analyzer the pipeline scores with
func (p *Pipeline) Analyzer() *analyze.Analyzer {
	return p.analyzer
}

// Detector returns the document type detector
func (p *Pipeline) Detector() *doctype.Detector {
	return p.detector
}

// Renderer returns the report renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Analyze runs the full analysis on one document. A non-contract or a failed
// document analysis is reported through Report.Status, not as an error.
func (p *Pipeline) Analyze(ctx context.Context, in Input) (*model.Report, error) {
	text := strings.TrimSpace(in.Text)
	if n := len([]rune(text)); n < p.config.Analysis.MinChars {
		return nil, fmt.Errorf("%w: %d characters, need at least %d", ErrTooShort, n, p.config.Analysis.MinChars)
	}

	key := cache.ContentKey(fmt.Sprintf("report-v%d-%s", reportRevision, p.analyzer.Catalog().Fingerprint()), text)
	var cached model.Report
	if cache.GetJSON(p.cache, key, &cached) {
		p.logger.Debug("cache hit", "subject", in.Subject)
		cached.Subject = in.Subject
		cached.Source = in.Source
		cached.FetchMeta = in.FetchMeta
		return &cached, nil
	}

	outcome, err := p.run(ctx, text)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Subject:    in.Subject,
		Source:     in.Source,
		AnalyzedAt: p.now().UTC(),
		FetchMeta:  in.FetchMeta,
	}
	model.Apply(report, outcome)

	p.logger.Info("analyzed",
		"subject", in.Subject,
		"status", report.Status,
		"clauses", report.TotalClauses)

	if report.Status != model.StatusFailed {
		if err := cache.SetJSON(p.cache, key, report, 0); err != nil {
			p.logger.Warn("cache store failed", "error", err)
		}
	}
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, text string) (model.Outcome, error) {
	det := p.detector.Detect(text)
	if det.DocumentType == model.TypeNonContract {
		return model.NonContract{Detection: det}, nil
	}

	doc, err := p.document(text)
	if err != nil {
		p.logger.Error("document analysis failed", "error", err)
		return model.Failed{Detection: det, Document: analyze.FailedReport(err), Err: err}, nil
	}

	clauses, err := p.AnalyzeClauses(ctx, SplitClauses(text, p.config.Analysis.ClauseMinChars))
	if err != nil {
		return nil, err
	}

	return model.Analyzed{Detection: det, Document: doc, Clauses: clauses}, nil
}

// AnalyzeClauses classifies clauses in parallel, keeping input order
func (p *Pipeline) AnalyzeClauses(ctx context.Context, clauses []string) ([]model.ClauseReport, error) {
	out := make([]model.ClauseReport, len(clauses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.config.Concurrency.ClauseWorkers))

	for i, clause := range clauses {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = model.ClauseReport{
				Index:    i + 1,
				Text:     clause,
				Analysis: p.analyzer.AnalyzeClause(clause),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze clauses: %w", err)
	}
	return out, nil
}

// AnalyzeBytes extracts text from an upload or file and analyzes it
func (p *Pipeline) AnalyzeBytes(ctx context.Context, name, contentType string, data []byte) (*model.Report, error) {
	if contentType == "" {
		contentType = source.DetectContentType(name, data)
	}
	doc, err := p.sources.Extract(name, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtract, err)
	}
	return p.Analyze(ctx, Input{Subject: name, Source: name, Text: doc.Text})
}

// AnalyzeFile loads a local PDF, HTML or text file and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	doc, err := source.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Analyze(ctx, Input{Subject: doc.Name, Source: path, Text: doc.Text})
}

// ScanURL fetches a remote contract or policy page and analyzes it
func (p *Pipeline) ScanURL(ctx context.Context, rawURL string) (*model.Report, error) {
	var delay time.Duration
	if p.robots != nil {
		allowed, crawlDelay, err := p.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %s", ErrDisallowed, rawURL)
		}
		delay = crawlDelay
	}

	if err := p.limiter.WaitWithDelay(ctx, rawURL, delay); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	res, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := p.sources.Extract(res.FinalURL, res.ContentType, res.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtract, err)
	}

	meta := res.Meta
	return p.Analyze(ctx, Input{
		Subject:   res.Subject,
		Source:    res.FinalURL,
		Text:      doc.Text,
		FetchMeta: &meta,
	})
}

// Target analyzes either a URL or a local file path
func (p *Pipeline) Target(ctx context.Context, target string) (*model.Report, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return p.ScanURL(ctx, target)
	}
	return p.AnalyzeFile(ctx, target)
}
