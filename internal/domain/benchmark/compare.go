package benchmark

// MetricDetail records the inputs behind one computed change. Percentages,
// not fractions, for operator-facing output.
type MetricDetail struct {
	Baseline      float64 `json:"baseline"`
	Current       float64 `json:"current"`
	ChangePercent float64 `json:"change_percent"`
	Threshold     float64 `json:"threshold"`
}

// Comparison is the outcome of comparing one benchmark's baseline and
// current estimates. Changes are relative deltas (current-baseline)/baseline.
// A metric missing from either side, or with a non-positive baseline, is
// excluded: its change stays zero, its flag stays false, and no detail
// record is written.
type Comparison struct {
	TimeRegression   bool                    `json:"time_regression"`
	MemoryRegression bool                    `json:"memory_regression"`
	TimeChange       float64                 `json:"time_change"`
	MemoryChange     float64                 `json:"memory_change"`
	Details          map[string]MetricDetail `json:"details"`
}

// Regressed reports whether either metric regressed.
func (c Comparison) Regressed() bool { return c.TimeRegression || c.MemoryRegression }

// Regression pairs a benchmark name with its comparison.
type Regression struct {
	Benchmark  string     `json:"benchmark"`
	Comparison Comparison `json:"comparison"`
}

// Compare evaluates current against baseline under the given thresholds.
// A regression is flagged when the relative change strictly exceeds the
// metric's threshold.
func Compare(baseline, current Estimate, th Thresholds) Comparison {
	cmp := Comparison{Details: map[string]MetricDetail{}}

	if baseline.Time != nil && current.Time != nil && *baseline.Time > 0 {
		change := (*current.Time - *baseline.Time) / *baseline.Time
		cmp.TimeChange = change
		cmp.TimeRegression = change > th.Time
		cmp.Details["time"] = MetricDetail{
			Baseline:      *baseline.Time,
			Current:       *current.Time,
			ChangePercent: change * 100,
			Threshold:     th.Time * 100,
		}
	}

	if baseline.Memory != nil && current.Memory != nil && *baseline.Memory > 0 {
		change := (*current.Memory - *baseline.Memory) / *baseline.Memory
		cmp.MemoryChange = change
		cmp.MemoryRegression = change > th.Memory
		cmp.Details["memory"] = MetricDetail{
			Baseline:      *baseline.Memory,
			Current:       *current.Memory,
			ChangePercent: change * 100,
			Threshold:     th.Memory * 100,
		}
	}

	return cmp
}
