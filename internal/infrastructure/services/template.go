package services

import (
	"encoding/json"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// ReportTemplate renders a structured gate result through a user-supplied
// pongo2 template, replacing the built-in text report.
type ReportTemplate struct {
	tpl *pongo2.Template
}

// LoadReportTemplate compiles the template file at path.
func LoadReportTemplate(path string) (*ReportTemplate, error) {
	tpl, err := pongo2.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to compile report template %s: %w", path, err)
	}
	return &ReportTemplate{tpl: tpl}, nil
}

// Render executes the template with the given context.
func (t *ReportTemplate) Render(ctx map[string]any) (string, error) {
	out, err := t.tpl.Execute(pongo2.Context(ctx))
	if err != nil {
		return "", fmt.Errorf("report template render failed: %w", err)
	}
	return out, nil
}

// TemplateContext converts a structured result into a template context via
// its JSON form, so templates see exactly the field names --json emits.
func TemplateContext(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template context: %w", err)
	}
	var ctx map[string]any
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("failed to decode template context: %w", err)
	}
	return ctx, nil
}
