package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"

	"github.com/sophialabs/gatecheck/internal/domain/benchmark"
)

const (
	// baseDirName is the reserved baseline container, both at the top of
	// the result tree and inside each benchmark directory.
	baseDirName = "base"

	newRunDirName     = "new"
	estimatesFileName = "estimates.json"
)

// CriterionLoader reads benchmark point estimates from a criterion-style
// result tree: `<root>/<name>/new/estimates.json` for the current run and
// `<root>/<name>/base/new/estimates.json` for the baseline snapshot.
type CriterionLoader struct {
	root string
}

// NewCriterionLoader creates a loader rooted at the given result directory.
func NewCriterionLoader(root string) *CriterionLoader {
	return &CriterionLoader{root: root}
}

// Root returns the result tree the loader reads.
func (l *CriterionLoader) Root() string { return l.root }

// Benchmarks lists the benchmark entries under the root, excluding the
// reserved base container. os.ReadDir returns entries sorted by name, which
// keeps the scan order stable within a run.
func (l *CriterionLoader) Benchmarks() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark results directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || e.Name() == baseDirName {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// LoadPair loads the baseline and current estimates for one benchmark.
// A missing or unusable artifact on either side yields an empty estimate,
// never an error.
func (l *CriterionLoader) LoadPair(name string) (baseline, current benchmark.Estimate) {
	baseline = l.loadEstimate(filepath.Join(name, baseDirName))
	current = l.loadEstimate(name)
	return baseline, current
}

func (l *CriterionLoader) loadEstimate(rel string) benchmark.Estimate {
	path := filepath.Join(l.root, rel, newRunDirName, estimatesFileName)
	f, err := os.Open(path)
	if err != nil {
		return benchmark.Estimate{}
	}
	defer f.Close()

	var doc any
	if err := decodeJSON(f, &doc); err != nil {
		return benchmark.Estimate{}
	}

	return benchmark.Estimate{
		Time:   pointEstimate(doc, "$.Mean.point_estimate"),
		Memory: pointEstimate(doc, "$.memory.point_estimate"),
	}
}

// pointEstimate extracts a numeric point estimate from a decoded document,
// or nil when the path is absent or non-numeric.
func pointEstimate(doc any, path string) *float64 {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}
