package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/randid/internal/core/validate"
)

type UUIDCmd struct {
	flags *Flags
	count int
}

// NewUUIDCmd creates a new uuid command
func NewUUIDCmd(flags *Flags) *UUIDCmd {
	return &UUIDCmd{flags: flags}
}

// Register adds the uuid command to the application
func (cmd *UUIDCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "uuid",
		Usage:     "Generate UUID v4 identifiers",
		UsageText: "randid uuid [options]",
		Description: `Generates random (version 4) UUIDs for callers that need a standard,
collision-resistant identifier rather than a short one.

Example:
  randid uuid
  randid uuid -n 5`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of UUIDs to generate (defaults to config)",
				Destination: &cmd.count,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *UUIDCmd) run(_ context.Context, c *cli.Command) error {
	count := cmd.count
	if !c.IsSet("count") {
		count = cmd.flags.Config.Defaults.Count
	}

	if err := validate.Count(count); err != nil {
		return fmt.Errorf("invalid count: %w", err)
	}

	log.Debug().Int("count", count).Msg("generating uuids")

	ids := make([]string, count)
	for i := range ids {
		ids[i] = uuid.NewString()
	}

	return emit(c.Root().Writer, ids, "")
}
