package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sophialabs/gatecheck/internal/infrastructure/services"
)

// emit writes the outcome in the configured format: structured JSON, a
// custom template, or the built-in text report.
func emit(w io.Writer, asJSON bool, tpl *services.ReportTemplate, outcome any, text string) error {
	if asJSON {
		data, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if tpl != nil {
		ctx, err := services.TemplateContext(outcome)
		if err != nil {
			return err
		}
		out, err := tpl.Render(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	_, err := fmt.Fprint(w, text)
	return err
}
