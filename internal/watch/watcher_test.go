package watch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ppiankov/clariscan/internal/model"
	"github.com/ppiankov/clariscan/internal/pipeline"
)

type fakeAnalyzer struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	f.mu.Lock()
	f.calls = append(f.calls, filepath.Base(path))
	f.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.Contains(string(data), "broken") {
		return nil, errors.New("cannot analyze")
	}
	return &model.Report{Subject: filepath.Base(path), Source: path, Status: model.StatusAnalyzed}, nil
}

func (f *fakeAnalyzer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testConfig(out string) model.WatchConfig {
	return model.WatchConfig{
		Debounce:   20 * time.Millisecond,
		Extensions: []string{".txt", "pdf"},
		OutputDir:  out,
	}
}

func newWatcher(t *testing.T, analyzer Analyzer) (*DirWatcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewDirWatcher(testConfig(filepath.Join(t.TempDir(), "out")), dir, analyzer, pipeline.NewRenderer(true, false))
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	return w, dir
}

func waitResult(t *testing.T, w *DirWatcher) Result {
	t.Helper()
	select {
	case res, ok := <-w.Results():
		if !ok {
			t.Fatal("results channel closed")
		}
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for result")
	}
	return Result{}
}

func TestNewDirWatcher_Errors(t *testing.T) {
	if _, err := NewDirWatcher(model.WatchConfig{}, filepath.Join(t.TempDir(), "missing"), &fakeAnalyzer{}, nil); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewDirWatcher(model.WatchConfig{}, file, &fakeAnalyzer{}, nil); err == nil {
		t.Error("expected error for a file path")
	}
}

func TestDirWatcher_Accepts(t *testing.T) {
	w, dir := newWatcher(t, &fakeAnalyzer{})
	defer func() { _ = w.watcher.Close() }()

	tests := []struct {
		name string
		want bool
	}{
		{"lease.txt", true},
		{"LEASE.PDF", true},
		{"page.html", false},
		{".hidden.txt", false},
		{"draft.txt~", false},
		{"notes.md", false},
	}
	for _, tt := range tests {
		if got := w.accepts(filepath.Join(dir, tt.name)); got != tt.want {
			t.Errorf("accepts(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDirWatcher_HandleEventIgnoresRemoves(t *testing.T) {
	w, dir := newWatcher(t, &fakeAnalyzer{})
	defer func() { _ = w.watcher.Close() }()

	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "a.txt"), Op: fsnotify.Remove})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "b.md"), Op: fsnotify.Create})
	w.handleEvent(fsnotify.Event{Name: filepath.Join(dir, "c.txt"), Op: fsnotify.Write})

	if len(w.pending) != 1 {
		t.Fatalf("pending = %v, want only c.txt", w.pending)
	}
}

func TestDirWatcher_FlushSkipsUnchangedContent(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	w, dir := newWatcher(t, analyzer)
	defer func() { _ = w.watcher.Close() }()
	if err := os.MkdirAll(w.OutputDir(), 0o755); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(path, []byte("lease v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }
	settle := func() {
		clock = clock.Add(w.debounce)
		w.flush(ctx)
	}

	for range 2 {
		w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
		settle()
	}
	if analyzer.count() != 1 {
		t.Errorf("analyzed %d times, want 1 for unchanged content", analyzer.count())
	}

	if err := os.WriteFile(path, []byte("lease v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	settle()
	if analyzer.count() != 2 {
		t.Errorf("analyzed %d times, want 2 after content change", analyzer.count())
	}
}

func TestDirWatcher_FlushWaitsForQuietPeriod(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	w, dir := newWatcher(t, analyzer)
	defer func() { _ = w.watcher.Close() }()
	if err := os.MkdirAll(w.OutputDir(), 0o755); err != nil {
		t.Fatal(err)
	}

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }
	ctx := context.Background()

	path := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(path, []byte("lease v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create})

	clock = clock.Add(w.debounce / 2)
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})
	clock = clock.Add(w.debounce / 2)
	w.flush(ctx)
	if analyzer.count() != 0 {
		t.Fatalf("analyzed %d times while the file was still changing", analyzer.count())
	}
	if len(w.pending) != 1 {
		t.Fatalf("pending = %v, want lease.txt still pending", w.pending)
	}

	clock = clock.Add(w.debounce / 2)
	w.flush(ctx)
	if analyzer.count() != 1 {
		t.Errorf("analyzed %d times, want 1 once quiet", analyzer.count())
	}
	if len(w.pending) != 0 {
		t.Errorf("pending = %v, want empty", w.pending)
	}
}

func TestDirWatcher_Run(t *testing.T) {
	w, dir := newWatcher(t, &fakeAnalyzer{})

	existing := filepath.Join(dir, "existing.txt")
	if err := os.WriteFile(existing, []byte("already here"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, true) }()

	res := waitResult(t, w)
	if res.Path != existing || res.Err != nil {
		t.Fatalf("first result = %+v, want existing.txt without error", res)
	}

	data, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid report JSON: %v", err)
	}
	if report.Subject != "existing.txt" {
		t.Errorf("Subject = %q, want existing.txt", report.Subject)
	}
	if filepath.Base(res.Output) != "existing.txt.json" {
		t.Errorf("Output = %q", res.Output)
	}

	staged := filepath.Join(t.TempDir(), "broken.txt")
	if err := os.WriteFile(staged, []byte("broken upload"), 0o644); err != nil {
		t.Fatal(err)
	}
	dropped := filepath.Join(dir, "broken.txt")
	if err := os.Rename(staged, dropped); err != nil {
		t.Fatal(err)
	}
	res = waitResult(t, w)
	if res.Path != dropped || res.Err == nil {
		t.Errorf("second result = %+v, want broken.txt with error", res)
	}
	if res.Output != "" {
		t.Errorf("Output = %q, want empty on failure", res.Output)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if _, ok := <-w.Results(); ok {
		t.Error("results channel should be closed")
	}
}
