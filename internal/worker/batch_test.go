package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/clariscan/internal/model"
)

// mockAnalyzer implements Analyzer
type mockAnalyzer struct {
	fail map[string]bool
}

func (m *mockAnalyzer) Target(ctx context.Context, target string) (*model.Report, error) {
	time.Sleep(5 * time.Millisecond)
	if m.fail[target] {
		return nil, errors.New("analysis error")
	}
	status := model.StatusAnalyzed
	if strings.Contains(target, "resume") {
		status = model.StatusNonContract
	}
	return &model.Report{Subject: target, Source: target, Status: status}, nil
}

func writeTargets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_Process(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	targets := []string{"https://example.com/terms", "lease.pdf", "resume.txt"}
	batch := processor.Process(context.Background(), targets)

	if _, err := uuid.Parse(batch.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", batch.RunID, err)
	}
	if len(batch.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(batch.Results))
	}
	for i, res := range batch.Results {
		if res.Target != targets[i] {
			t.Errorf("result %d is %q, want %q", i, res.Target, targets[i])
		}
		if res.Error != nil || res.Report == nil {
			t.Errorf("unexpected failure for %s: %v", res.Target, res.Error)
		}
	}

	s := batch.Summary()
	if s.Total != 3 || s.Analyzed != 2 || s.NonContract != 1 || s.Errors != 0 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestBatchProcessor_Process_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{fail: map[string]bool{"broken.pdf": true}}, 2)

	batch := processor.Process(context.Background(), []string{"ok.txt", "broken.pdf"})
	if len(batch.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(batch.Results))
	}
	if batch.Results[1].GetError() == nil {
		t.Error("expected error for broken.pdf")
	}
	if s := batch.Summary(); s.Errors != 1 || s.Analyzed != 1 {
		t.Errorf("unexpected summary %+v", s)
	}
}

func TestBatchProcessor_Process_Empty(t *testing.T) {
	batch := NewBatchProcessor(&mockAnalyzer{}, 2).Process(context.Background(), nil)
	if len(batch.Results) != 0 {
		t.Errorf("expected 0 results, got %d", len(batch.Results))
	}
}

func TestReadTargetsFromFile(t *testing.T) {
	path := writeTargets(t, "https://example.com/terms\n\n# comment\n  contracts/lease.pdf  \nhttps://example.com/terms\n")

	targets, err := ReadTargetsFromFile(path)
	if err != nil {
		t.Fatalf("ReadTargetsFromFile failed: %v", err)
	}
	want := []string{"https://example.com/terms", "contracts/lease.pdf"}
	if len(targets) != len(want) {
		t.Fatalf("expected %v, got %v", want, targets)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Errorf("target %d = %q, want %q", i, targets[i], want[i])
		}
	}
}

func TestReadTargetsFromFile_NonExistent(t *testing.T) {
	if _, err := ReadTargetsFromFile("no_such_file.txt"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := writeTargets(t, "a.txt\nb.txt\n# skipped\n\nc.txt\n")

	batch, err := NewBatchProcessor(&mockAnalyzer{}, 2).ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(batch.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(batch.Results))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	if _, err := NewBatchProcessor(&mockAnalyzer{}, 2).ProcessFile(context.Background(), "no_such_file.txt"); err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestAnalyzeResult_GetError(t *testing.T) {
	if r := (&AnalyzeResult{Target: "a.txt"}); r.GetError() != nil {
		t.Errorf("expected nil error, got %v", r.GetError())
	}

	expected := errors.New("analysis failed")
	if r := (&AnalyzeResult{Target: "a.txt", Error: expected}); r.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, r.GetError())
	}
}
