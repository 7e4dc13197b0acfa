package filesystem

import (
	"fmt"
	"os"
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/sophialabs/gatecheck/internal/domain/coverage"
)

// CoberturaLoader reads a cobertura-style XML coverage summary.
type CoberturaLoader struct {
	path string
}

// NewCoberturaLoader creates a loader for the given report path.
func NewCoberturaLoader(path string) *CoberturaLoader {
	return &CoberturaLoader{path: path}
}

// Path returns the report location the loader reads.
func (l *CoberturaLoader) Path() string { return l.path }

// Load parses the report. Returns coverage.ErrNotFound when the file does
// not exist, and coverage.ErrMalformed when it cannot be parsed as XML or
// lacks a coverage element. Packages keep document order.
func (l *CoberturaLoader) Load() (*coverage.Report, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", coverage.ErrNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to open coverage report: %w", err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", coverage.ErrMalformed, err)
	}

	root := xmlquery.FindOne(doc, "//coverage")
	if root == nil {
		return nil, fmt.Errorf("%w: no coverage element in %s", coverage.ErrMalformed, l.path)
	}

	report := &coverage.Report{
		LineRate:   attrFloat(root, "line-rate", 0),
		BranchRate: attrFloat(root, "branch-rate", 0),
	}

	for _, pkg := range xmlquery.Find(root, ".//package") {
		report.Packages = append(report.Packages, coverage.Package{
			Name:       attrString(pkg, "name", "unknown"),
			LineRate:   attrFloat(pkg, "line-rate", 0),
			BranchRate: attrFloat(pkg, "branch-rate", 0),
		})
	}

	return report, nil
}

// attrFloat returns the named attribute parsed as a float, or def when the
// attribute is absent or not numeric.
func attrFloat(n *xmlquery.Node, name string, def float64) float64 {
	raw := n.SelectAttr(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func attrString(n *xmlquery.Node, name, def string) string {
	if raw := n.SelectAttr(name); raw != "" {
		return raw
	}
	return def
}
