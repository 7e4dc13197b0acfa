package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sophialabs/gatecheck/internal/domain/coverage"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/filesystem"
	"github.com/sophialabs/gatecheck/internal/infrastructure/outbound/logging"
	"github.com/sophialabs/gatecheck/internal/infrastructure/ports"
	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
	"github.com/sophialabs/gatecheck/internal/infrastructure/wiring"
)

// CoverageApp is the coverage gate's thin lifecycle manager: it resolves
// configuration, wires the pipeline, runs it, and maps the outcome to an
// exit code.
type CoverageApp struct {
	cfg       CoverageConfig
	logger    ports.Logger
	container *wiring.Container
	template  *services.ReportTemplate
	stdout    io.Writer
}

// NewCoverage merges file configuration into cfg, compiles rules and the
// optional report template, and wires the gate.
func NewCoverage(cfg CoverageConfig) (*CoverageApp, error) {
	if cfg.ConfigFile != "" {
		file, err := filesystem.LoadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.applyFile(file)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	container, err := wiring.New(wiring.Params{
		CoverageFile:       cfg.CoverageFile,
		CoverageThresholds: cfg.Targets,
		CorePrefixes:       cfg.CorePrefixes,
		Rules:              cfg.Rules,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to wire coverage gate: %w", err)
	}

	var tpl *services.ReportTemplate
	if cfg.Template != "" {
		tpl, err = services.LoadReportTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
	}

	return &CoverageApp{
		cfg:       cfg,
		logger:    logger,
		container: container,
		template:  tpl,
		stdout:    os.Stdout,
	}, nil
}

// SetStdout redirects report output, for tests.
func (a *CoverageApp) SetStdout(w io.Writer) { a.stdout = w }

// Run executes the gate and returns the process exit code: 0 when the gate
// passed, 1 on failure or when the report cannot be loaded. With Watch set
// it re-runs on artifact changes until interrupted.
func (a *CoverageApp) Run(ctx context.Context) int {
	return runGate(ctx, a.cfg.Watch, a.cfg.CoverageFile, a.cfg.WatchDebounce, a.logger, a.runOnce)
}

func (a *CoverageApp) runOnce(ctx context.Context) int {
	outcome, err := a.container.CheckCoverageUseCase().Execute(ctx)
	if err != nil {
		switch {
		case errors.Is(err, coverage.ErrNotFound):
			a.logger.Error("coverage report not found", "path", a.cfg.CoverageFile)
		case errors.Is(err, coverage.ErrMalformed):
			a.logger.Error("coverage report cannot be used", "path", a.cfg.CoverageFile, "error", err)
		default:
			a.logger.Error("coverage check failed", "error", err)
		}
		return 1
	}

	if err := emit(a.stdout, a.cfg.JSON, a.template, outcome, outcome.Text); err != nil {
		a.logger.Error("failed to write report", "error", err)
		return 1
	}

	if !outcome.Passed {
		return 1
	}
	return 0
}
