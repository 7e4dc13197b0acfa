package app

import (
	"strings"
	"time"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/domain/coverage"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
)

// CoverageConfig holds all configurable parameters for the coverage gate.
type CoverageConfig struct {
	CoverageFile string
	ConfigFile   string

	Targets      coverage.ThresholdSet
	CorePrefixes []string
	Rules        []services.Rule

	JSON     bool
	Template string
	LogLevel string

	Watch         bool
	WatchDebounce time.Duration

	// SetFlags records which flags were given explicitly, so config file
	// values only fill in what the invocation left untouched.
	SetFlags map[string]bool
}

// DefaultCoverageConfig returns a CoverageConfig with the standard defaults.
func DefaultCoverageConfig() CoverageConfig {
	return CoverageConfig{
		CoverageFile:  "cobertura.xml",
		Targets:       coverage.DefaultThresholds(),
		LogLevel:      "info",
		WatchDebounce: 500 * time.Millisecond,
	}
}

// RegressionConfig holds all configurable parameters for the regression gate.
type RegressionConfig struct {
	CriterionDir string
	ConfigFile   string

	Thresholds benchmark.Thresholds

	JSON     bool
	Template string
	LogLevel string

	Watch         bool
	WatchDebounce time.Duration

	SetFlags map[string]bool
}

// DefaultRegressionConfig returns a RegressionConfig with the standard defaults.
func DefaultRegressionConfig() RegressionConfig {
	return RegressionConfig{
		CriterionDir:  "target/criterion",
		Thresholds:    benchmark.DefaultThresholds(),
		LogLevel:      "info",
		WatchDebounce: 500 * time.Millisecond,
	}
}

// SplitList splits a comma-separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *CoverageConfig) explicit(name string) bool { return c.SetFlags[name] }

// applyFile fills in configuration from the YAML file for every value the
// invocation did not set explicitly. Rules only come from the file.
func (c *CoverageConfig) applyFile(file *filesystem.ConfigFile) {
	t := file.Coverage.Targets
	if t.Overall != nil && !c.explicit("overall-target") {
		c.Targets.Overall = *t.Overall
	}
	if t.Line != nil && !c.explicit("line-target") {
		c.Targets.Line = *t.Line
	}
	if t.Branch != nil && !c.explicit("branch-target") {
		c.Targets.Branch = *t.Branch
	}
	if t.Function != nil && !c.explicit("function-target") {
		c.Targets.Function = *t.Function
	}
	if len(file.Coverage.CorePrefixes) > 0 && !c.explicit("core-prefix") {
		c.CorePrefixes = file.Coverage.CorePrefixes
	}
	for _, r := range file.Coverage.Rules {
		c.Rules = append(c.Rules, services.Rule{Name: r.Name, Expr: r.Expr})
	}
}

func (c *RegressionConfig) explicit(name string) bool { return c.SetFlags[name] }

func (c *RegressionConfig) applyFile(file *filesystem.ConfigFile) {
	t := file.Regression.Thresholds
	if t.Time != nil && !c.explicit("time-threshold") {
		c.Thresholds.Time = *t.Time
	}
	if t.Memory != nil && !c.explicit("memory-threshold") {
		c.Thresholds.Memory = *t.Memory
	}
}
