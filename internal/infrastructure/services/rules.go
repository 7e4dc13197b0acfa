package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/sophialabs/gatecheck/internal/domain/coverage"
)

// Rule is a named boolean expression over the coverage data, e.g.
// `overall_line_coverage >= 85`.
type Rule struct {
	Name string
	Expr string
}

// RuleSet holds compiled coverage rules.
type RuleSet struct {
	rules []compiledRule
}

type compiledRule struct {
	name    string
	source  string
	program *vm.Program
}

// NewRuleSet compiles the configured rule expressions. Compilation failures
// surface at startup rather than mid-evaluation.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	rs := &RuleSet{}
	for _, r := range rules {
		program, err := expr.Compile(r.Expr, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %q: %w", r.Name, err)
		}
		rs.rules = append(rs.rules, compiledRule{name: r.Name, source: r.Expr, program: program})
	}
	return rs, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Evaluate runs every rule against the coverage data, returning one failure
// message per rule that does not hold. A rule that errors at runtime counts
// as a failure: a rule that cannot be checked must not silently pass.
func (rs *RuleSet) Evaluate(r *coverage.Report) []string {
	if rs.Len() == 0 {
		return nil
	}

	env := ruleEnv(r)
	var failures []string
	for _, cr := range rs.rules {
		out, err := expr.Run(cr.program, env)
		if err != nil {
			failures = append(failures, fmt.Sprintf("rule %s failed to evaluate: %v", cr.name, err))
			continue
		}
		if ok, _ := out.(bool); !ok {
			failures = append(failures, fmt.Sprintf("rule %s not satisfied: %s", cr.name, cr.source))
		}
	}
	return failures
}

// ruleEnv exposes the coverage data under the same names as the structured
// JSON output, so rules and templates share one vocabulary.
func ruleEnv(r *coverage.Report) map[string]any {
	packages := map[string]any{}
	for _, p := range r.Packages {
		packages[p.Name] = map[string]any{
			"line_coverage":   p.LineCoverage(),
			"branch_coverage": p.BranchCoverage(),
		}
	}
	return map[string]any{
		"overall_line_coverage":   r.LineCoverage(),
		"overall_branch_coverage": r.BranchCoverage(),
		"packages":                packages,
	}
}
