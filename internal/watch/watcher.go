// Package watch analyzes contracts dropped into a directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ppiankov/clariscan/internal/cache"
	"github.com/ppiankov/clariscan/internal/logging"
	"github.com/ppiankov/clariscan/internal/model"
)

const resultBuffer = 100

// Analyzer turns a local file into a report
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// ReportWriter persists a finished report
type ReportWriter interface {
	RenderJSON(report *model.Report, path string) error
}

// Result is emitted once per analyzed file
type Result struct {
	Path     string
	Output   string
	Report   *model.Report
	Err      error
	Duration time.Duration
}

// DirWatcher analyzes new or changed files in one directory
type DirWatcher struct {
	dir        string
	outputDir  string
	debounce   time.Duration
	extensions map[string]bool

	analyzer Analyzer
	writer   ReportWriter
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]time.Time
	now       func() time.Time

	hashes  map[string]string
	results chan Result
}

// NewDirWatcher validates the directory and opens an fsnotify watcher
func NewDirWatcher(cfg model.WatchConfig, dir string, analyzer Analyzer, writer ReportWriter) (*DirWatcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch dir: %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(dir, "reports")
	}

	return &DirWatcher{
		dir:        dir,
		outputDir:  outputDir,
		debounce:   debounce,
		extensions: extensionSet(cfg.Extensions),
		analyzer:   analyzer,
		writer:     writer,
		watcher:    fsw,
		logger:     logging.New("watch"),
		pending:    make(map[string]time.Time),
		now:        time.Now,
		hashes:     make(map[string]string),
		results:    make(chan Result, resultBuffer),
	}, nil
}

func extensionSet(exts []string) map[string]bool {
	if len(exts) == 0 {
		exts = []string{".pdf", ".txt", ".html", ".htm"}
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

// Results returns analyzed files. The channel closes when Run returns.
func (w *DirWatcher) Results() <-chan Result {
	return w.results
}

// OutputDir is where JSON reports are written
func (w *DirWatcher) OutputDir() string {
	return w.outputDir
}

// Run watches until ctx is canceled. Files already present are analyzed
// first when includeExisting is set.
func (w *DirWatcher) Run(ctx context.Context, includeExisting bool) error {
	defer close(w.results)
	defer func() { _ = w.watcher.Close() }()

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	if includeExisting {
		if err := w.queueExisting(); err != nil {
			return err
		}
	}

	w.logger.Info("watching directory",
		"dir", w.dir,
		"output_dir", w.outputDir,
		"debounce", w.debounce)

	ticker := time.NewTicker(max(w.debounce/2, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *DirWatcher) queueExisting() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read watch dir: %w", err)
	}
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	for _, e := range entries {
		path := filepath.Join(w.dir, e.Name())
		if !e.IsDir() && w.accepts(path) {
			w.pending[path] = time.Time{}
		}
	}
	return nil
}

// accepts filters by extension and skips hidden and editor temp files
func (w *DirWatcher) accepts(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return w.extensions[strings.ToLower(filepath.Ext(base))]
}

func (w *DirWatcher) handleEvent(event fsnotify.Event) {
	if !w.accepts(event.Name) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] = w.now()
	w.pendingMu.Unlock()

	w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
}

// flush analyzes every path that has been quiet for one debounce interval.
// Paths with a more recent event stay pending.
func (w *DirWatcher) flush(ctx context.Context) {
	now := w.now()
	var ready []string

	w.pendingMu.Lock()
	for path, last := range w.pending {
		if now.Sub(last) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.pendingMu.Unlock()
	slices.Sort(ready)

	for _, path := range ready {
		if ctx.Err() != nil {
			return
		}
		w.process(ctx, path)
	}
}

func (w *DirWatcher) process(ctx context.Context, path string) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		w.logger.Warn("read failed", "path", path, "error", err)
		return
	}
	if len(content) == 0 {
		return
	}

	hash := cache.ContentKey("watch", string(content))
	if w.hashes[path] == hash {
		return
	}
	w.hashes[path] = hash

	start := time.Now()
	res := Result{Path: path}
	res.Report, res.Err = w.analyzer.AnalyzeFile(ctx, path)
	if res.Err == nil {
		res.Output = filepath.Join(w.outputDir, reportName(path))
		if err := w.writer.RenderJSON(res.Report, res.Output); err != nil {
			res.Err = fmt.Errorf("write report: %w", err)
		}
	}
	res.Duration = time.Since(start)

	if res.Err != nil {
		w.logger.Warn("analysis failed", "path", path, "error", res.Err)
	} else {
		w.logger.Info("analyzed", "path", path, "status", res.Report.Status, "output", res.Output)
	}

	select {
	case w.results <- res:
	default:
		w.logger.Warn("result channel full, dropping result", "path", path)
	}
}

// reportName maps "lease.pdf" to "lease.pdf.json" so that files differing
// only by extension do not overwrite each other
func reportName(path string) string {
	return filepath.Base(path) + ".json"
}
