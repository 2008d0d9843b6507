package interactive

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/commands/completion_helper"
	"github.com/thomas-vilte/spicalc/internal/config"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/thomas-vilte/spicalc/internal/session"
	"github.com/thomas-vilte/spicalc/internal/tui"
	"github.com/urfave/cli/v3"
)

// Runner drives a bubbletea model until it quits.
type Runner func(ctx context.Context, model tea.Model) (tea.Model, error)

type InteractiveCommandFactory struct {
	catalogs catalog.Provider
	run      Runner
}

func NewInteractiveCommandFactory(catalogs catalog.Provider) *InteractiveCommandFactory {
	return &InteractiveCommandFactory{
		catalogs: catalogs,
		run:      runProgram,
	}
}

// WithRunner replaces the terminal program, mainly for tests.
func (f *InteractiveCommandFactory) WithRunner(run Runner) *InteractiveCommandFactory {
	f.run = run
	return f
}

func runProgram(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
}

func (f *InteractiveCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "interactive",
		Aliases:       []string{"i"},
		Usage:         t.GetMessage("interactive.usage", 0, nil),
		ShellComplete: completion_helper.CatalogComplete(f.catalogs),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   t.GetMessage("calc.flag_branch", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   t.GetMessage("interactive.flag_watch", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := f.catalogs(ctx)
			if err != nil {
				return err
			}

			sess := session.New(ctx, cat)
			branch := cmd.String("branch")
			if branch == "" {
				branch = cfg.Branch()
			}
			if branch != "" {
				if !cat.HasBranch(branch) {
					logger.Warn(ctx, t.GetMessage("calc.unknown_branch", 0, map[string]interface{}{
						"Branch": branch,
					}), "branch", branch)
				}
				sess.SelectBranch(branch)
			}

			var opts []tui.Option
			if cmd.Bool("watch") {
				watcher, err := catalog.NewWatcher(cfg.Catalog())
				if err != nil {
					return err
				}
				defer func() {
					if err := watcher.Close(); err != nil {
						logger.Error(ctx, "closing catalog watcher", err)
					}
				}()
				if err := watcher.Start(ctx); err != nil {
					return err
				}
				opts = append(opts, tui.WithReloads(watcher.Updates()))
			}

			final, err := f.run(ctx, tui.New(sess, t, opts...))
			if err != nil {
				return apperrors.ErrTerminal.WithError(err)
			}

			if m, ok := final.(tui.Model); ok {
				r := m.Report()
				logger.Debug(ctx, "interactive session finished",
					"branch", r.Branch,
					"semester", r.Semester,
					"spi", r.SPI,
					"cpi", r.CPI)
			}
			return nil
		},
	}
}
