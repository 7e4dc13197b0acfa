package coverage

import "errors"

// ErrNotFound indicates the coverage report artifact does not exist.
var ErrNotFound = errors.New("coverage report not found")

// ErrMalformed indicates the coverage report exists but cannot be used.
var ErrMalformed = errors.New("coverage report malformed")

// Report is the parsed coverage summary for a single run. Rates are
// fractions in [0,1] as emitted by the instrumentation tool.
type Report struct {
	LineRate   float64
	BranchRate float64
	Packages   []Package
}

// Package holds one package's own coverage rates.
type Package struct {
	Name       string
	LineRate   float64
	BranchRate float64
}

// LineCoverage returns the overall line rate as a percentage.
func (r *Report) LineCoverage() float64 { return r.LineRate * 100 }

// BranchCoverage returns the overall branch rate as a percentage.
func (r *Report) BranchCoverage() float64 { return r.BranchRate * 100 }

// LineCoverage returns the package line rate as a percentage.
func (p Package) LineCoverage() float64 { return p.LineRate * 100 }

// BranchCoverage returns the package branch rate as a percentage.
func (p Package) BranchCoverage() float64 { return p.BranchRate * 100 }
