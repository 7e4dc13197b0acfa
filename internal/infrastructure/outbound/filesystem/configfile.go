package filesystem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile mirrors the optional YAML gate configuration. Pointer fields
// distinguish "not set" from explicit zeros so flag and default merging
// stays unambiguous.
type ConfigFile struct {
	Coverage   CoverageSection   `yaml:"coverage"`
	Regression RegressionSection `yaml:"regression"`
}

// CoverageSection configures the coverage gate.
type CoverageSection struct {
	Targets      CoverageTargets `yaml:"targets"`
	CorePrefixes []string        `yaml:"core_prefixes"`
	Rules        []Rule          `yaml:"rules"`
}

// CoverageTargets are percentage targets, all optional.
type CoverageTargets struct {
	Overall  *float64 `yaml:"overall"`
	Line     *float64 `yaml:"line"`
	Branch   *float64 `yaml:"branch"`
	Function *float64 `yaml:"function"`
}

// Rule is a named boolean expression evaluated against the coverage data.
type Rule struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// RegressionSection configures the regression gate.
type RegressionSection struct {
	Thresholds RegressionThresholds `yaml:"thresholds"`
}

// RegressionThresholds are fractional limits, all optional.
type RegressionThresholds struct {
	Time   *float64 `yaml:"time"`
	Memory *float64 `yaml:"memory"`
}

// LoadConfigFile reads and parses the YAML gate configuration at path.
func LoadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
