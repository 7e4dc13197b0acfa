package services

import (
	"fmt"
	"strings"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/domain/coverage"
)

// RenderCoverage formats the operator-facing coverage report. Section order
// is part of the output contract: banner, overall coverage, per-package
// coverage, failures, warnings.
func RenderCoverage(r *coverage.Report, res *coverage.CheckResult, t coverage.ThresholdSet) string {
	var b strings.Builder

	if res.Passed {
		b.WriteString("PASS: coverage check passed\n")
	} else {
		b.WriteString("FAIL: coverage check failed\n")
	}
	b.WriteString("\n")

	b.WriteString("Overall coverage:\n")
	fmt.Fprintf(&b, "  line coverage: %.1f%% (target: %.1f%%)\n", r.LineCoverage(), t.Line)
	fmt.Fprintf(&b, "  branch coverage: %.1f%% (target: %.1f%%)\n", r.BranchCoverage(), t.Branch)
	b.WriteString("\n")

	if len(r.Packages) > 0 {
		b.WriteString("Package coverage:\n")
		for _, p := range r.Packages {
			fmt.Fprintf(&b, "  %s: %.1f%% line, %.1f%% branch\n", p.Name, p.LineCoverage(), p.BranchCoverage())
		}
		b.WriteString("\n")
	}

	if len(res.Failures) > 0 {
		b.WriteString("Failures:\n")
		for _, f := range res.Failures {
			fmt.Fprintf(&b, "  - %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(res.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderRegressions formats the regression report. Entries keep the order
// the scan produced. Change percentages use two decimals, thresholds one.
func RenderRegressions(set []benchmark.Regression) string {
	if len(set) == 0 {
		return "no performance regressions detected\n"
	}

	var b strings.Builder
	b.WriteString("performance regressions detected:\n\n")

	for _, reg := range set {
		fmt.Fprintf(&b, "%s:\n", reg.Benchmark)
		if reg.Comparison.TimeRegression {
			d := reg.Comparison.Details["time"]
			fmt.Fprintf(&b, "  time: +%.2f%% (threshold: %.1f%%)\n", d.ChangePercent, d.Threshold)
		}
		if reg.Comparison.MemoryRegression {
			d := reg.Comparison.Details["memory"]
			fmt.Fprintf(&b, "  memory: +%.2f%% (threshold: %.1f%%)\n", d.ChangePercent, d.Threshold)
		}
		b.WriteString("\n")
	}

	return b.String()
}
