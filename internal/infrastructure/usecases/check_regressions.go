package usecases

import (
	"context"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
)

// RegressionOutcome is the regression gate's result: the flag, the rendered
// text report, and the structured document.
type RegressionOutcome struct {
	HasRegressions bool                   `json:"has_regressions"`
	Regressions    []benchmark.Regression `json:"regressions"`
	Thresholds     benchmark.Thresholds   `json:"thresholds"`

	Text string `json:"-"`
}

// CheckRegressionsUseCase runs the regression gate pipeline: enumerate
// benchmarks, load each baseline/current pair, compare, collect regressions.
type CheckRegressionsUseCase struct {
	loader     *filesystem.CriterionLoader
	thresholds benchmark.Thresholds
	logger     ports.Logger
}

// NewCheckRegressionsUseCase creates the use case.
func NewCheckRegressionsUseCase(
	loader *filesystem.CriterionLoader,
	thresholds benchmark.Thresholds,
	logger ports.Logger,
) *CheckRegressionsUseCase {
	return &CheckRegressionsUseCase{
		loader:     loader,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Execute runs the gate once. A benchmark missing either side of its pair
// is skipped, never failed. Result order follows the loader's enumeration,
// which is stable within a run.
func (uc *CheckRegressionsUseCase) Execute(_ context.Context) (*RegressionOutcome, error) {
	names, err := uc.loader.Benchmarks()
	if err != nil {
		return nil, err
	}

	regressions := []benchmark.Regression{}
	for _, name := range names {
		baseline, current := uc.loader.LoadPair(name)
		if baseline.IsEmpty() || current.IsEmpty() {
			uc.logger.Debug("skipping benchmark without a usable pair", "benchmark", name)
			continue
		}

		cmp := benchmark.Compare(baseline, current, uc.thresholds)
		if cmp.Regressed() {
			uc.logger.Warn("regression detected", "benchmark", name,
				"time_change", cmp.TimeChange, "memory_change", cmp.MemoryChange)
			regressions = append(regressions, benchmark.Regression{
				Benchmark:  name,
				Comparison: cmp,
			})
		}
	}

	return &RegressionOutcome{
		HasRegressions: len(regressions) > 0,
		Regressions:    regressions,
		Thresholds:     uc.thresholds,
		Text:           services.RenderRegressions(regressions),
	}, nil
}
