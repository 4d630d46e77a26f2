package commands

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid/internal/core/config"
	"github.com/hay-kot/randid/internal/core/validate"
	"github.com/hay-kot/randid/pkg/tmpl"
)

// resolveGenerateFlags fills unset length/count/template flags from config
// and validates the resulting values. Explicitly set flags are taken as-is,
// so an explicit zero fails validation instead of falling back to config.
func resolveGenerateFlags(cfg *config.Config, c *cli.Command, length, count int, tmplStr string) (int, int, string, error) {
	if !c.IsSet("length") {
		length = cfg.Defaults.Length
	}
	if !c.IsSet("count") {
		count = cfg.Defaults.Count
	}
	if !c.IsSet("template") {
		tmplStr = cfg.Defaults.Template
	}

	if err := validate.Length(length); err != nil {
		return 0, 0, "", fmt.Errorf("invalid length: %w", err)
	}
	if err := validate.Count(count); err != nil {
		return 0, 0, "", fmt.Errorf("invalid count: %w", err)
	}

	return length, count, tmplStr, nil
}

// emit writes one line per generated ID, optionally rendered through an
// output template.
func emit(w io.Writer, ids []string, tmplStr string) error {
	for i, id := range ids {
		line := id
		if tmplStr != "" {
			rendered, err := tmpl.Render(tmplStr, config.TemplateData{ID: id, Index: i})
			if err != nil {
				return fmt.Errorf("render template: %w", err)
			}
			line = rendered
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
