package commands

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid/internal/core/validate"
)

type NanoidCmd struct {
	flags  *Flags
	length int
	count  int
}

// NewNanoidCmd creates a new nanoid command
func NewNanoidCmd(flags *Flags) *NanoidCmd {
	return &NanoidCmd{flags: flags}
}

// Register adds the nanoid command to the application
func (cmd *NanoidCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "nanoid",
		Usage:     "Generate Nano IDs",
		UsageText: "randid nanoid [options]",
		Description: `Generates Nano IDs: URL-safe identifiers drawn from a 64-character
alphabet using a cryptographic random source. The canonical length of 21
gives collision resistance comparable to UUID v4.

Example:
  randid nanoid
  randid nanoid -l 12 -n 5`,
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
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NanoidCmd) run(_ context.Context, c *cli.Command) error {
	length := cmd.length
	if !c.IsSet("length") {
		length = cmd.flags.Config.Nanoid.Length
	}
	count := cmd.count
	if !c.IsSet("count") {
		count = cmd.flags.Config.Defaults.Count
	}

	if length < 2 || length > 255 {
		return fmt.Errorf("invalid length: must be between 2 and 255")
	}
	if err := validate.Count(count); err != nil {
		return fmt.Errorf("invalid count: %w", err)
	}

	log.Debug().Int("length", length).Int("count", count).Msg("generating nano ids")

	ids := make([]string, count)
	for i := range ids {
		id, err := gonanoid.New(length)
		if err != nil {
			return fmt.Errorf("generate nanoid: %w", err)
		}
		ids[i] = id
	}

	return emit(c.Root().Writer, ids, "")
}
