package config

import (
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/randid/internal/core/validate"
)

// TemplateData defines available fields for output templates.
type TemplateData struct {
	ID    string
	Index int
}

// Validate checks that configuration values are in range. Template syntax
// is not checked here; see ValidateDeep.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.Length(c.Defaults.Length); err != nil {
		errs = errs.Append("defaults.length", err)
	}
	if err := validate.Count(c.Defaults.Count); err != nil {
		errs = errs.Append("defaults.count", err)
	}

	// nanoid length is bounded by its alphabet size (255) rather than
	// the shared MaxLength
	if c.Nanoid.Length < 2 || c.Nanoid.Length > 255 {
		errs = errs.Append("nanoid.length", fmt.Errorf("length must be between 2 and 255"))
	}

	return errs.ToError()
}

// ValidateDeep performs comprehensive validation of the configuration.
// Unlike Validate(), this also checks output template syntax and dry-runs
// templates against the available fields.
func (c *Config) ValidateDeep() error {
	var errs criterio.FieldErrorsBuilder

	if err := c.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs = errs.Append(fe.Field, fe.Err)
			}
		} else {
			errs = errs.Append("config", err)
		}
	}

	if c.Defaults.Template != "" {
		if err := ValidateTemplate(c.Defaults.Template); err != nil {
			errs = errs.Append("defaults.template", fmt.Errorf("template error: %w", err))
		}
	}

	return errs.ToError()
}

// ValidateTemplate checks if a template string is valid against TemplateData.
func ValidateTemplate(tmplStr string) error {
	t, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return err
	}

	// Dry-run execute to catch missing key errors
	return t.Execute(io.Discard, TemplateData{})
}
