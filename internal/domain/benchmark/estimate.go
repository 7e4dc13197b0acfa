package benchmark

// Estimate holds one benchmark's measured point estimates for a single run
// variant (baseline or current). A nil metric was not measured; an entirely
// empty estimate means the result artifact was absent or unusable.
type Estimate struct {
	Time   *float64
	Memory *float64
}

// IsEmpty reports whether the estimate carries no measurements at all.
func (e Estimate) IsEmpty() bool { return e.Time == nil && e.Memory == nil }

// Thresholds are the relative fractional increases permitted per metric
// before a regression is flagged.
type Thresholds struct {
	Time   float64 `json:"time"`
	Memory float64 `json:"memory"`
}

// DefaultThresholds returns the standard pipeline regression limits.
func DefaultThresholds() Thresholds {
	return Thresholds{Time: 0.10, Memory: 0.15}
}
