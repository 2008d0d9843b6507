package grades

import (
	"context"
	"io"
	"os"

	"github.com/thomas-vilte/spicalc/internal/config"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/urfave/cli/v3"
)

type GradesCommand struct {
	out io.Writer
}

func NewGradesCommand() *GradesCommand {
	return &GradesCommand{out: os.Stdout}
}

func (c *GradesCommand) WithOutput(w io.Writer) *GradesCommand {
	c.out = w
	return c
}

func (c *GradesCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "grades",
		Usage: t.GetMessage("grades.usage", 0, nil),
		Action: func(_ context.Context, _ *cli.Command) error {
			ui.RenderGradeTable(c.out, t)
			ui.PrintInfo(c.out, t.GetMessage("grades.unassigned_hint", 0, nil))
			return nil
		},
	}
}
