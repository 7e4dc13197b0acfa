package coverage

import (
	"fmt"
	"strings"
)

// warnBand is how far (in percentage points) a passing value may sit above
// its target before a proximity warning is still raised.
const warnBand = 5.0

// CheckDetail records one check's measured value against its target.
type CheckDetail struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Passed  bool    `json:"passed"`
}

// CheckResult is the outcome of evaluating a report against thresholds.
// Failures and Warnings keep the order the checks ran in.
type CheckResult struct {
	Passed   bool                   `json:"passed"`
	Failures []string               `json:"failures"`
	Warnings []string               `json:"warnings"`
	Details  map[string]CheckDetail `json:"details"`
}

// Evaluate runs the coverage checks in fixed order: overall line coverage,
// overall branch coverage, then per-package coverage. Packages whose name
// starts with one of corePrefixes are held to the Function target, all
// others to Line. Package shortfalls produce warnings only; the gate can
// fail on the two overall checks alone.
func Evaluate(r *Report, t ThresholdSet, corePrefixes []string) *CheckResult {
	res := &CheckResult{
		Passed:   true,
		Failures: []string{},
		Warnings: []string{},
		Details:  map[string]CheckDetail{},
	}

	line := r.LineCoverage()
	res.Details["line_coverage"] = CheckDetail{
		Current: line,
		Target:  t.Line,
		Passed:  line >= t.Line,
	}
	switch {
	case line < t.Line:
		res.Passed = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("line coverage below target: %.1f%% < %.1f%%", line, t.Line))
	case line < t.Line+warnBand:
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("line coverage close to target: %.1f%%", line))
	}

	branch := r.BranchCoverage()
	res.Details["branch_coverage"] = CheckDetail{
		Current: branch,
		Target:  t.Branch,
		Passed:  branch >= t.Branch,
	}
	switch {
	case branch < t.Branch:
		res.Passed = false
		res.Failures = append(res.Failures,
			fmt.Sprintf("branch coverage below target: %.1f%% < %.1f%%", branch, t.Branch))
	case branch < t.Branch+warnBand:
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("branch coverage close to target: %.1f%%", branch))
	}

	for _, p := range r.Packages {
		target := t.Line
		if isCore(p.Name, corePrefixes) {
			target = t.Function
		}
		cur := p.LineCoverage()
		res.Details["package_"+p.Name] = CheckDetail{
			Current: cur,
			Target:  target,
			Passed:  cur >= target,
		}
		if cur < target {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("package %s coverage below target: %.1f%% < %.1f%%", p.Name, cur, target))
		}
	}

	return res
}

func isCore(name string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
