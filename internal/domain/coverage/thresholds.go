package coverage

// ThresholdSet holds coverage targets as percentages in [0,100].
// Function is the stricter tier applied to core packages.
type ThresholdSet struct {
	Overall  float64
	Line     float64
	Branch   float64
	Function float64
}

// DefaultThresholds returns the standard pipeline targets.
func DefaultThresholds() ThresholdSet {
	return ThresholdSet{
		Overall:  80,
		Line:     80,
		Branch:   75,
		Function: 85,
	}
}
