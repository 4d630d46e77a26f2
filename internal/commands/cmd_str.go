package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid"
)

type StrCmd struct {
	flags    *Flags
	length   int
	count    int
	template string
}

// NewStrCmd creates a new str command
func NewStrCmd(flags *Flags) *StrCmd {
	return &StrCmd{flags: flags}
}

// Register adds the str command to the application
func (cmd *StrCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "str",
		Usage:     "Generate random alphanumeric IDs",
		UsageText: "randid str [options]",
		Description: `Generates base62 strings (digits, uppercase, lowercase) of an exact
length. Base62 keeps IDs URL-safe without escaping.

There is no uniqueness guarantee; use longer IDs where collisions matter.

Example:
  randid str -l 5
  randid str -l 8 -n 10 -t 'https://example.com/{{ .ID }}'`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "length of each generated ID (defaults to config)",
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

func (cmd *StrCmd) run(_ context.Context, c *cli.Command) error {
	length, count, tmplStr, err := resolveGenerateFlags(cmd.flags.Config, c, cmd.length, cmd.count, cmd.template)
	if err != nil {
		return err
	}

	log.Debug().Int("length", length).Int("count", count).Msg("generating alphanumeric ids")

	ids := make([]string, count)
	for i := range ids {
		ids[i] = randid.String(length)
	}

	return emit(c.Root().Writer, ids, tmplStr)
}
