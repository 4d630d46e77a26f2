package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/randid"
	"github.com/hay-kot/randid/internal/core/validate"
	"github.com/hay-kot/randid/internal/styles"
)

// Generator kinds offered by the interactive form.
const (
	kindAlphanumeric = "str"
	kindNumeric      = "num"
	kindNanoid       = "nanoid"
	kindUUID         = "uuid"
)

type InteractiveCmd struct {
	flags *Flags
}

// NewInteractiveCmd creates the interactive generator used as the default
// action when no subcommand is given.
func NewInteractiveCmd(flags *Flags) *InteractiveCmd {
	return &InteractiveCmd{flags: flags}
}

// Run prompts for a generator kind, length, and count, then prints the
// generated IDs. Requires stdin to be a terminal.
func (cmd *InteractiveCmd) Run(_ context.Context, c *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal. Run 'randid --help' for usage")
	}

	var (
		kind      = kindAlphanumeric
		lengthStr = strconv.Itoa(cmd.flags.Config.Defaults.Length)
		countStr  = strconv.Itoa(cmd.flags.Config.Defaults.Count)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Alphanumeric (base62)", kindAlphanumeric),
					huh.NewOption("Numeric (zero-padded)", kindNumeric),
					huh.NewOption("Nano ID", kindNanoid),
					huh.NewOption("UUID v4", kindUUID),
				).
				Value(&kind),
			huh.NewInput().
				Title("Length").
				Description("Ignored for UUIDs").
				Value(&lengthStr).
				Validate(validateNumber),
			huh.NewInput().
				Title("Count").
				Value(&countStr).
				Validate(validateNumber),
		),
	).WithTheme(styles.FormTheme())

	if err := form.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	// Validated by the form
	length, _ := strconv.Atoi(lengthStr)
	count, _ := strconv.Atoi(countStr)

	if err := validate.Count(count); err != nil {
		return fmt.Errorf("invalid count: %w", err)
	}
	if kind != kindUUID {
		if err := validate.Length(length); err != nil {
			return fmt.Errorf("invalid length: %w", err)
		}
	}

	ids := make([]string, count)
	for i := range ids {
		id, err := generate(kind, length)
		if err != nil {
			return err
		}
		ids[i] = id
	}

	return writeInteractiveResult(c.Root().Writer, ids, kind)
}

// writeInteractiveResult prints the generated IDs followed by a gray hint
// line summarizing what was generated.
func writeInteractiveResult(w io.Writer, ids []string, kind string) error {
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, styles.IDStyle.Render(id)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	hint := fmt.Sprintf("generated %d %s id(s)", len(ids), kind)
	if _, err := fmt.Fprintln(w, styles.HintStyle.Render(hint)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// generate produces a single ID of the given kind.
func generate(kind string, length int) (string, error) {
	switch kind {
	case kindAlphanumeric:
		return randid.String(length), nil
	case kindNumeric:
		return randid.Numeric(length), nil
	case kindNanoid:
		id, err := gonanoid.New(length)
		if err != nil {
			return "", fmt.Errorf("generate nanoid: %w", err)
		}
		return id, nil
	case kindUUID:
		return uuid.NewString(), nil
	default:
		return "", fmt.Errorf("unknown generator kind %q", kind)
	}
}

func validateNumber(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
