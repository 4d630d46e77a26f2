package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid"
)

type NumCmd struct {
	flags    *Flags
	length   int
	count    int
	template string
}

// NewNumCmd creates a new num command
func NewNumCmd(flags *Flags) *NumCmd {
	return &NumCmd{flags: flags}
}

// Register adds the num command to the application
func (cmd *NumCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "num",
		Usage:     "Generate random fixed-width numeric IDs",
		UsageText: "randid num [options]",
		Description: `Generates decimal strings of an exact width. Leading zeros are
preserved, so a length of 5 can yield "00396". The output is a string,
not a number; widths beyond 18 digits will not fit in an int64.

Example:
  randid num -l 5
  randid num -l 6 -n 20`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "width of each generated ID (defaults to config)",
				Destination: &cmd.length,
			},
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of IDs to generate (defaults to config)",
				Destination: &cmd.count,
			},
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "output template with {{ .ID }} and {{ .Index }} fields",
				Destination: &cmd.template,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NumCmd) run(_ context.Context, c *cli.Command) error {
	length, count, tmplStr, err := resolveGenerateFlags(cmd.flags.Config, c, cmd.length, cmd.count, cmd.template)
	if err != nil {
		return err
	}

	log.Debug().Int("length", length).Int("count", count).Msg("generating numeric ids")

	ids := make([]string, count)
	for i := range ids {
		ids[i] = randid.Numeric(length)
	}

	return emit(c.Root().Writer, ids, tmplStr)
}
