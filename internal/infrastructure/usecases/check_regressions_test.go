package usecases_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/usecases"
	"github.com/sophialabs/gatecheck/internal/testutil"
)

func writeBenchmark(t *testing.T, root, rel string, mean float64) {
	t.Helper()
	dir := filepath.Join(root, rel, "new")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	content := fmt.Sprintf(`{"Mean": {"point_estimate": %g}}`, mean)
	if err := os.WriteFile(filepath.Join(dir, "estimates.json"), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func newRegressionUC(root string) *usecases.CheckRegressionsUseCase {
	return usecases.NewCheckRegressionsUseCase(
		filesystem.NewCriterionLoader(root),
		benchmark.DefaultThresholds(),
		&testutil.NoopLogger{},
	)
}

func TestCheckRegressions_FlagsAndSkips(t *testing.T) {
	root := t.TempDir()
	// foo regressed: 100 -> 115 against a 10% threshold.
	writeBenchmark(t, root, "foo/base", 100)
	writeBenchmark(t, root, "foo", 115)
	// bar within threshold: 100 -> 105.
	writeBenchmark(t, root, "bar/base", 100)
	writeBenchmark(t, root, "bar", 105)
	// baz has no baseline snapshot.
	writeBenchmark(t, root, "baz", 50)
	// The baseline container itself is never a benchmark.
	writeBenchmark(t, root, "base", 1)

	outcome, err := newRegressionUC(root).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !outcome.HasRegressions {
		t.Fatal("HasRegressions = false, want true")
	}
	if len(outcome.Regressions) != 1 {
		t.Fatalf("Regressions = %+v, want only foo", outcome.Regressions)
	}

	reg := outcome.Regressions[0]
	if reg.Benchmark != "foo" {
		t.Errorf("Benchmark = %q, want foo", reg.Benchmark)
	}
	if !reg.Comparison.TimeRegression {
		t.Error("TimeRegression = false, want true")
	}
	if got := reg.Comparison.TimeChange; got < 0.1499 || got > 0.1501 {
		t.Errorf("TimeChange = %v, want 0.15", got)
	}
}

func TestCheckRegressions_CleanRun(t *testing.T) {
	root := t.TempDir()
	writeBenchmark(t, root, "bar/base", 100)
	writeBenchmark(t, root, "bar", 105)

	outcome, err := newRegressionUC(root).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if outcome.HasRegressions {
		t.Errorf("HasRegressions = true, regressions: %+v", outcome.Regressions)
	}
	if outcome.Text != "no performance regressions detected\n" {
		t.Errorf("Text = %q", outcome.Text)
	}
}

func TestCheckRegressions_EmptyTree(t *testing.T) {
	outcome, err := newRegressionUC(t.TempDir()).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if outcome.HasRegressions {
		t.Error("empty tree must not regress")
	}
}

func TestCheckRegressions_MissingRoot(t *testing.T) {
	uc := newRegressionUC(filepath.Join(t.TempDir(), "missing"))
	if _, err := uc.Execute(context.Background()); err == nil {
		t.Error("expected error for missing results root")
	}
}

func TestCheckRegressions_StructuredShape(t *testing.T) {
	root := t.TempDir()
	writeBenchmark(t, root, "foo/base", 100)
	writeBenchmark(t, root, "foo", 120)

	outcome, err := newRegressionUC(root).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := json.Marshal(outcome)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, key := range []string{"has_regressions", "regressions", "thresholds"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing top-level key %q in %s", key, data)
		}
	}

	regs := doc["regressions"].([]any)
	entry := regs[0].(map[string]any)
	if entry["benchmark"] != "foo" {
		t.Errorf("benchmark = %v", entry["benchmark"])
	}
	cmp := entry["comparison"].(map[string]any)
	for _, key := range []string{"time_regression", "memory_regression", "time_change", "memory_change", "details"} {
		if _, ok := cmp[key]; !ok {
			t.Errorf("missing comparison key %q in %s", key, data)
		}
	}
}
