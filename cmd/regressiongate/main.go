package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sophialabs/gatecheck/internal/app"
)

func main() {
	cfg := app.DefaultRegressionConfig()
	flag.StringVar(&cfg.CriterionDir, "criterion-dir", cfg.CriterionDir, "benchmark results directory")
	flag.Float64Var(&cfg.Thresholds.Time, "time-threshold", cfg.Thresholds.Time, "relative time regression threshold (fraction)")
	flag.Float64Var(&cfg.Thresholds.Memory, "memory-threshold", cfg.Thresholds.Memory, "relative memory regression threshold (fraction)")
	flag.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit the structured JSON result instead of text")
	flag.StringVar(&cfg.Template, "template", cfg.Template, "render the report through a custom template file")
	flag.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "optional YAML gate configuration file")
	flag.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the gate when the results change")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	cfg.SetFlags = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { cfg.SetFlags[f.Name] = true })

	a, err := app.NewRegression(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}

	os.Exit(a.Run(context.Background()))
}
