package filesystem_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/testutil"
)

func TestWatcher_DetectsArtifactWrite(t *testing.T) {
	tmpDir := t.TempDir()

	var runCount atomic.Int32
	w, err := filesystem.NewWatcher(tmpDir, 100*time.Millisecond, &testutil.NoopLogger{}, func() {
		runCount.Add(1)
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()
	w.Start()

	if err := os.WriteFile(filepath.Join(tmpDir, "estimates.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Wait for debounce + processing.
	time.Sleep(500 * time.Millisecond)

	if runCount.Load() < 1 {
		t.Error("expected at least one re-run")
	}
}

func TestWatcher_SingleFileMode(t *testing.T) {
	tmpDir := t.TempDir()
	report := filepath.Join(tmpDir, "cobertura.xml")
	if err := os.WriteFile(report, []byte("<coverage/>"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var runCount atomic.Int32
	w, err := filesystem.NewWatcher(report, 100*time.Millisecond, &testutil.NoopLogger{}, func() {
		runCount.Add(1)
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()
	w.Start()

	// A sibling file must not trigger a re-run.
	if err := os.WriteFile(filepath.Join(tmpDir, "other.xml"), []byte("<x/>"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if runCount.Load() != 0 {
		t.Fatalf("sibling write triggered %d re-runs", runCount.Load())
	}

	// Rewriting the watched artifact does.
	if err := os.WriteFile(report, []byte(`<coverage line-rate="1"/>`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	time.Sleep(500 * time.Millisecond)
	if runCount.Load() < 1 {
		t.Error("expected a re-run after rewriting the watched artifact")
	}
}

func TestWatcher_MissingPath(t *testing.T) {
	_, err := filesystem.NewWatcher(filepath.Join(t.TempDir(), "missing"), time.Millisecond, &testutil.NoopLogger{}, func() {})
	if err == nil {
		t.Error("expected error for missing artifact path")
	}
}
