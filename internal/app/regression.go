package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/logging"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
	"github.com/sophialabs/gatecheck/internal/infrastructure/wiring"
)

// RegressionApp is the regression gate's lifecycle manager, symmetric to
// CoverageApp.
type RegressionApp struct {
	cfg       RegressionConfig
	logger    ports.Logger
	container *wiring.Container
	template  *services.ReportTemplate
	stdout    io.Writer
}

// NewRegression merges file configuration into cfg, compiles the optional
// report template, and wires the gate.
func NewRegression(cfg RegressionConfig) (*RegressionApp, error) {
	if cfg.ConfigFile != "" {
		file, err := filesystem.LoadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.applyFile(file)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	container, err := wiring.New(wiring.Params{
		CriterionDir:         cfg.CriterionDir,
		RegressionThresholds: cfg.Thresholds,
		Logger:               logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire regression gate: %w", err)
	}

	var tpl *services.ReportTemplate
	if cfg.Template != "" {
		tpl, err = services.LoadReportTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
	}

	return &RegressionApp{
		cfg:       cfg,
		logger:    logger,
		container: container,
		template:  tpl,
		stdout:    os.Stdout,
	}, nil
}

// SetStdout redirects report output, for tests.
func (a *RegressionApp) SetStdout(w io.Writer) { a.stdout = w }

// Run executes the gate and returns the process exit code: 0 when no
// regression was found, 1 otherwise. With Watch set it re-runs on result
// tree changes until interrupted.
func (a *RegressionApp) Run(ctx context.Context) int {
	return runGate(ctx, a.cfg.Watch, a.cfg.CriterionDir, a.cfg.WatchDebounce, a.logger, a.runOnce)
}

func (a *RegressionApp) runOnce(ctx context.Context) int {
	outcome, err := a.container.CheckRegressionsUseCase().Execute(ctx)
	if err != nil {
		a.logger.Error("regression check failed", "dir", a.cfg.CriterionDir, "error", err)
		return 1
	}

	if err := emit(a.stdout, a.cfg.JSON, a.template, outcome, outcome.Text); err != nil {
		a.logger.Error("failed to write report", "error", err)
		return 1
	}

	if outcome.HasRegressions {
		return 1
	}
	return 0
}
