package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sophialabs/gatecheck/internal/app"
)

func main() {
	cfg := app.DefaultCoverageConfig()
	flag.StringVar(&cfg.CoverageFile, "coverage-file", cfg.CoverageFile, "path to the cobertura coverage report")
	flag.Float64Var(&cfg.Targets.Overall, "overall-target", cfg.Targets.Overall, "overall coverage target (percent)")
	flag.Float64Var(&cfg.Targets.Line, "line-target", cfg.Targets.Line, "line coverage target (percent)")
	flag.Float64Var(&cfg.Targets.Branch, "branch-target", cfg.Targets.Branch, "branch coverage target (percent)")
	flag.Float64Var(&cfg.Targets.Function, "function-target", cfg.Targets.Function, "core package coverage target (percent)")
	corePrefixes := flag.String("core-prefix", "", "comma-separated package name prefixes held to the function target")
	flag.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit the structured JSON result instead of text")
	flag.StringVar(&cfg.Template, "template", cfg.Template, "render the report through a custom template file")
	flag.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "optional YAML gate configuration file")
	flag.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the gate when the report changes")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	cfg.CorePrefixes = app.SplitList(*corePrefixes)
	cfg.SetFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { cfg.SetFlags[f.Name] = true })

	a, err := app.NewCoverage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	os.Exit(a.Run(context.Background()))
}
