package worker

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/clariscan/internal/logging"
	"github.com/ppiankov/clariscan/internal/model"
)

// Analyzer analyzes one URL or file path
type Analyzer interface {
	Target(ctx context.Context, target string) (*model.Report, error)
}

// AnalyzeJob analyzes a single target
type AnalyzeJob struct {
	Target   string
	Analyzer Analyzer
}

// Execute runs the analysis and times it
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	start := time.Now()
	report, err := j.Analyzer.Target(ctx, j.Target)
	return &AnalyzeResult{
		Target:   j.Target,
		Report:   report,
		Error:    err,
		Duration: time.Since(start),
	}
}

// AnalyzeResult is the outcome of one target in a batch
type AnalyzeResult struct {
	Target   string
	Report   *model.Report
	Error    error
	Duration time.Duration
}

// GetError returns the analysis error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// Batch is one batch run
type Batch struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Results   []*AnalyzeResult
}

// BatchSummary counts results by outcome
type BatchSummary struct {
	Total       int
	Analyzed    int
	NonContract int
	Failed      int
	Errors      int
}

// Summary counts the batch results
func (b *Batch) Summary() BatchSummary {
	s := BatchSummary{Total: len(b.Results)}
	for _, r := range b.Results {
		if r.Error != nil || r.Report == nil {
			s.Errors++
			continue
		}
		switch r.Report.Status {
		case model.StatusAnalyzed:
			s.Analyzed++
		case model.StatusNonContract:
			s.NonContract++
		case model.StatusFailed:
			s.Failed++
		}
	}
	return s
}

// BatchProcessor analyzes many targets concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
	logger      *slog.Logger
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		logger:      logging.New("batch"),
	}
}

// Process analyzes targets and returns results in input order
func (b *BatchProcessor) Process(ctx context.Context, targets []string) *Batch {
	batch := &Batch{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Results:   []*AnalyzeResult{},
	}
	if len(targets) == 0 {
		return batch
	}

	logger := b.logger.With("run_id", batch.RunID)
	logger.Info("batch started", "targets", len(targets), "workers", b.concurrency)

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	for _, target := range targets {
		if !pool.Submit(&AnalyzeJob{Target: target, Analyzer: b.analyzer}) {
			break
		}
	}

	for _, res := range pool.Wait() {
		r := res.(*AnalyzeResult)
		if r.Error != nil {
			logger.Warn("target failed", "target", r.Target, "error", r.Error)
		}
		batch.Results = append(batch.Results, r)
	}

	batch.Duration = time.Since(batch.StartedAt)
	s := batch.Summary()
	logger.Info("batch finished",
		"analyzed", s.Analyzed,
		"non_contract", s.NonContract,
		"failed", s.Failed,
		"errors", s.Errors,
		"duration", batch.Duration)
	return batch
}

// ProcessFile reads targets from a file and processes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) (*Batch, error) {
	targets, err := ReadTargetsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	return b.Process(ctx, targets), nil
}

// ReadTargetsFromFile reads URLs or file paths, one per line. Blank lines and
// # comments are skipped and repeats dropped.
func ReadTargetsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var targets []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			targets = append(targets, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return targets, nil
}
