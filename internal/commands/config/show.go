package config

import (
	"context"
	"strconv"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/config"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(_ context.Context, _ *cli.Command) error {
			catalogPath := cfg.Catalog()
			if catalogPath == "" {
				catalogPath = catalog.SourceEmbedded
			}
			branch := cfg.Branch()
			if branch == "" {
				branch = t.GetMessage("config.first_branch", 0, nil)
			}

			ui.PrintSectionBanner(c.out, t.GetMessage("current_config", 0, nil))
			ui.PrintKeyValue(c.out, t.GetMessage("config.file_label", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(c.out, t.GetMessage("language_label", 0, nil), cfg.Lang())
			ui.PrintKeyValue(c.out, t.GetMessage("config.catalog_label", 0, nil), catalogPath)
			ui.PrintKeyValue(c.out, t.GetMessage("config.color_label", 0, nil), strconv.FormatBool(cfg.Color()))
			ui.PrintKeyValue(c.out, t.GetMessage("config.default_branch_label", 0, nil), branch)
			return nil
		},
	}
}
