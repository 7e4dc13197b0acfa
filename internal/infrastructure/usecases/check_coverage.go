package usecases

import (
	"context"

	"github.com/sophialabs/gatecheck/internal/domain/coverage"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
)

// CoverageData is the structured form of a parsed coverage report. Field
// names are part of the --json output contract.
type CoverageData struct {
	OverallLineCoverage   float64                    `json:"overall_line_coverage"`
	OverallBranchCoverage float64                    `json:"overall_branch_coverage"`
	Packages              map[string]PackageCoverage `json:"packages"`
	Raw                   RawRates                   `json:"raw"`
}

// PackageCoverage holds one package's coverage percentages.
type PackageCoverage struct {
	LineCoverage   float64 `json:"line_coverage"`
	BranchCoverage float64 `json:"branch_coverage"`
}

// RawRates are the unscaled fractions from the report.
type RawRates struct {
	LineRate   float64 `json:"line_rate"`
	BranchRate float64 `json:"branch_rate"`
}

// CoverageTargets echoes the thresholds a run was evaluated against.
type CoverageTargets struct {
	Overall  float64 `json:"overall"`
	Line     float64 `json:"line"`
	Branch   float64 `json:"branch"`
	Function float64 `json:"function"`
}

// CoverageOutcome is everything the CLI boundary needs to finish a run:
// the pass flag, the rendered text report, and the structured document.
type CoverageOutcome struct {
	Passed       bool                  `json:"passed"`
	CoverageData CoverageData          `json:"coverage_data"`
	CheckResults *coverage.CheckResult `json:"check_results"`
	Targets      CoverageTargets       `json:"targets"`

	Text string `json:"-"`
}

// CheckCoverageUseCase runs the coverage gate pipeline: load the report,
// evaluate thresholds and configured rules, render the report.
type CheckCoverageUseCase struct {
	loader       *filesystem.CoberturaLoader
	thresholds   coverage.ThresholdSet
	corePrefixes []string
	rules        *services.RuleSet
	logger       ports.Logger
}

// NewCheckCoverageUseCase creates the use case. rules may be empty.
func NewCheckCoverageUseCase(
	loader *filesystem.CoberturaLoader,
	thresholds coverage.ThresholdSet,
	corePrefixes []string,
	rules *services.RuleSet,
	logger ports.Logger,
) *CheckCoverageUseCase {
	return &CheckCoverageUseCase{
		loader:       loader,
		thresholds:   thresholds,
		corePrefixes: corePrefixes,
		rules:        rules,
		logger:       logger,
	}
}

// Execute runs the gate once. Load failures (coverage.ErrNotFound,
// coverage.ErrMalformed) propagate to the caller; everything else resolves
// into the outcome.
func (uc *CheckCoverageUseCase) Execute(_ context.Context) (*CoverageOutcome, error) {
	report, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("coverage report loaded",
		"path", uc.loader.Path(), "packages", len(report.Packages))

	result := coverage.Evaluate(report, uc.thresholds, uc.corePrefixes)
	for _, failure := range uc.rules.Evaluate(report) {
		result.Passed = false
		result.Failures = append(result.Failures, failure)
	}

	outcome := &CoverageOutcome{
		Passed:       result.Passed,
		CoverageData: buildCoverageData(report),
		CheckResults: result,
		Targets: CoverageTargets{
			Overall:  uc.thresholds.Overall,
			Line:     uc.thresholds.Line,
			Branch:   uc.thresholds.Branch,
			Function: uc.thresholds.Function,
		},
		Text: services.RenderCoverage(report, result, uc.thresholds),
	}
	return outcome, nil
}

func buildCoverageData(r *coverage.Report) CoverageData {
	packages := map[string]PackageCoverage{}
	for _, p := range r.Packages {
		packages[p.Name] = PackageCoverage{
			LineCoverage:   p.LineCoverage(),
			BranchCoverage: p.BranchCoverage(),
		}
	}
	return CoverageData{
		OverallLineCoverage:   r.LineCoverage(),
		OverallBranchCoverage: r.BranchCoverage(),
		Packages:              packages,
		Raw: RawRates{
			LineRate:   r.LineRate,
			BranchRate: r.BranchRate,
		},
	}
}
