package wiring_test

import (
	"testing"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
	"github.com/sophialabs/gatecheck/internal/domain/coverage"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
	"github.com/sophialabs/gatecheck/internal/infrastructure/wiring"
	"github.com/sophialabs/gatecheck/internal/testutil"
)

func TestNew_WiresBothGates(t *testing.T) {
	c, err := wiring.New(wiring.Params{
		CoverageFile:         "cobertura.xml",
		CoverageThresholds:   coverage.DefaultThresholds(),
		CriterionDir:         "target/criterion",
		RegressionThresholds: benchmark.DefaultThresholds(),
		Logger:               &testutil.NoopLogger{},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.CheckCoverageUseCase() == nil {
		t.Error("CheckCoverageUseCase is nil")
	}
	if c.CheckRegressionsUseCase() == nil {
		t.Error("CheckRegressionsUseCase is nil")
	}
	if c.Logger() == nil {
		t.Error("Logger is nil")
	}
}

func TestNew_BadRuleFails(t *testing.T) {
	_, err := wiring.New(wiring.Params{
		Rules:  []services.Rule{{Name: "broken", Expr: ">="}},
		Logger: &testutil.NoopLogger{},
	})
	if err == nil {
		t.Error("expected error for uncompilable rule")
	}
}
