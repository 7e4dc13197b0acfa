package app_test

import (
	"reflect"
	"testing"

	"github.com/sophialabs/gatecheck/internal/app"
)

func TestDefaultCoverageConfig(t *testing.T) {
	cfg := app.DefaultCoverageConfig()

	if cfg.CoverageFile != "cobertura.xml" {
		t.Errorf("CoverageFile = %q", cfg.CoverageFile)
	}
	if cfg.Targets.Overall != 80 || cfg.Targets.Line != 80 || cfg.Targets.Branch != 75 || cfg.Targets.Function != 85 {
		t.Errorf("Targets = %+v", cfg.Targets)
	}
	if cfg.LogLevel == "" {
		t.Error("LogLevel should not be empty")
	}
	if cfg.WatchDebounce == 0 {
		t.Error("WatchDebounce should not be zero")
	}
	if cfg.JSON || cfg.Watch {
		t.Error("JSON and Watch should default off")
	}
}

func TestDefaultRegressionConfig(t *testing.T) {
	cfg := app.DefaultRegressionConfig()

	if cfg.CriterionDir != "target/criterion" {
		t.Errorf("CriterionDir = %q", cfg.CriterionDir)
	}
	if cfg.Thresholds.Time != 0.10 || cfg.Thresholds.Memory != 0.15 {
		t.Errorf("Thresholds = %+v", cfg.Thresholds)
	}
	if cfg.WatchDebounce == 0 {
		t.Error("WatchDebounce should not be zero")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , b ,", []string{"a", "b"}},
		{",,", nil},
	}

	for _, tt := range tests {
		if got := app.SplitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
