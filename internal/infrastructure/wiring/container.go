package wiring

import (
	"fmt"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/domain/coverage"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
	"github.com/sophialabs/gatecheck/internal/infrastructure/usecases"
)

// Params holds the configuration the container needs to construct the gate
// pipelines. Both gates are cheap to build, so the container always wires
// both; each binary uses whichever it needs.
type Params struct {
	CoverageFile       string
	CoverageThresholds coverage.ThresholdSet
	CorePrefixes       []string
	Rules              []services.Rule

	CriterionDir         string
	RegressionThresholds benchmark.Thresholds

	Logger ports.Logger
}

// Container owns the construction of the gate pipelines.
type Container struct {
	logger       ports.Logger
	coverageUC   *usecases.CheckCoverageUseCase
	regressionUC *usecases.CheckRegressionsUseCase
}

// New constructs the gate pipelines. Rule compilation is the only fallible
// step; loaders touch the filesystem at Execute time, not here.
func New(p Params) (*Container, error) {
	rules, err := services.NewRuleSet(p.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to compile coverage rules: %w", err)
	}

	coverageLoader := filesystem.NewCoberturaLoader(p.CoverageFile)
	criterionLoader := filesystem.NewCriterionLoader(p.CriterionDir)

	return &Container{
		logger: p.Logger,
		coverageUC: usecases.NewCheckCoverageUseCase(
			coverageLoader, p.CoverageThresholds, p.CorePrefixes, rules, p.Logger),
		regressionUC: usecases.NewCheckRegressionsUseCase(
			criterionLoader, p.RegressionThresholds, p.Logger),
	}, nil
}

// Logger returns the container's logger.
func (c *Container) Logger() ports.Logger { return c.logger }

// CheckCoverageUseCase returns the coverage gate pipeline.
func (c *Container) CheckCoverageUseCase() *usecases.CheckCoverageUseCase { return c.coverageUC }

// CheckRegressionsUseCase returns the regression gate pipeline.
func (c *Container) CheckRegressionsUseCase() *usecases.CheckRegressionsUseCase {
	return c.regressionUC
}
