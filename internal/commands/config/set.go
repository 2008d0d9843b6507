package config

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/config"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: t.GetMessage("config_set_args_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if command.Args().Len() < 2 {
				ui.PrintError(c.out, t.GetMessage("config_set_error_args", 0, nil))
				return apperrors.ErrMissingArguments
			}

			key := strings.ToLower(command.Args().Get(0))
			value := strings.TrimSpace(command.Args().Get(1))

			switch key {
			case "lang", "language":
				if !config.IsSupportedLanguage(value) {
					return apperrors.ErrUnsupportedLanguage.WithContext("language", value)
				}
				cfg.Language = value
			case "catalog", "catalog-path", "catalog_path":
				switch value {
				case "", catalog.SourceEmbedded:
					value = ""
				default:
					if _, err := catalog.LoadFile(value); err != nil {
						return err
					}
					abs, err := filepath.Abs(value)
					if err != nil {
						return apperrors.ErrCatalogRead.WithError(err).WithContext("path", value)
					}
					value = abs
				}
				cfg.CatalogPath = value
			case "color", "use_color":
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return apperrors.ErrInvalidBool.WithError(err).WithContext("value", value)
				}
				cfg.UseColor = enabled
			case "default-branch", "default_branch", "branch":
				cfg.DefaultBranch = value
			default:
				return apperrors.ErrUnknownConfigKey.WithContext("key", key)
			}

			if err := config.SaveConfig(cfg); err != nil {
				ui.PrintError(c.out, t.GetMessage("ui_error.error_saving_config", 0, nil))
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("config_set_success", 0, map[string]interface{}{
				"Key":   key,
				"Value": value,
			}))
			return nil
		},
	}
}
