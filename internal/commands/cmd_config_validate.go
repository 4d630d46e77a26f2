package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid/internal/printer"
)

// checkedFields are the config fields reported by config validate, in
// display order.
var checkedFields = []string{
	"defaults.length",
	"defaults.count",
	"defaults.template",
	"nanoid.length",
}

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "randid config validate [options]",
				Description: "Validates the configuration file, checking value ranges and output template syntax.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	err := cmd.flags.Config.ValidateDeep()

	if cmd.format == "json" {
		return cmd.outputJSON(c, err)
	}

	if cmd.flags.ConfigPath != "" {
		if _, statErr := os.Stat(cmd.flags.ConfigPath); os.IsNotExist(statErr) {
			p.Warnf("config file %s not found, validating defaults", cmd.flags.ConfigPath)
		}
	}

	return cmd.outputText(p, err)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, validationErr error) error {
	type fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	out := struct {
		Valid  bool         `json:"valid"`
		Errors []fieldError `json:"errors,omitempty"`
	}{
		Valid: validationErr == nil,
	}

	for _, fe := range extractFieldErrors(validationErr) {
		out.Errors = append(out.Errors, fieldError{Field: fe.Field, Message: fe.Err.Error()})
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// extractFieldErrors extracts field errors from a validation error.
func extractFieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

func (cmd *ConfigValidateCmd) outputText(p *printer.Printer, validationErr error) error {
	fieldErrs := extractFieldErrors(validationErr)

	failed := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field
		if field == "" {
			field = "config"
		}
		failed[field] = fe.Err.Error()
	}

	p.Section("Config")

	printed := make(map[string]bool, len(checkedFields))
	for _, field := range checkedFields {
		printed[field] = true
		if msg, ok := failed[field]; ok {
			p.FailItem(field, msg)
		} else {
			p.CheckItem(field, "")
		}
	}

	// Errors outside the known field list
	for _, fe := range fieldErrs {
		field := fe.Field
		if field == "" {
			field = "config"
		}
		if !printed[field] {
			p.FailItem(field, fe.Err.Error())
		}
	}

	p.Printf("")
	if validationErr == nil {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s)", len(fieldErrs))
	return cli.Exit("", 1)
}
