package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/spicalc/internal/catalog"
	"github.com/thomas-vilte/spicalc/internal/cli/registry"
	"github.com/thomas-vilte/spicalc/internal/commands/calc"
	catalogcmd "github.com/thomas-vilte/spicalc/internal/commands/catalog"
	configcmd "github.com/thomas-vilte/spicalc/internal/commands/config"
	"github.com/thomas-vilte/spicalc/internal/commands/grades"
	"github.com/thomas-vilte/spicalc/internal/commands/interactive"
	cfg "github.com/thomas-vilte/spicalc/internal/config"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/thomas-vilte/spicalc/internal/logger"
	"github.com/thomas-vilte/spicalc/internal/ui"
	"github.com/thomas-vilte/spicalc/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(false, false)

	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("error starting spi-calc: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Lang(), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	ui.SetColor(cfgApp.Color())

	catalogs := catalog.NewProvider(cfgApp.Catalog())

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("calc", calc.NewCalcCommandFactory(catalogs)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("interactive", interactive.NewInteractiveCommandFactory(catalogs)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("catalog", catalogcmd.NewCatalogCommandFactory(catalogs)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("grades", grades.NewGradesCommand()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, nil, err
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	var debug, verbose bool
	setupLogger := func(context.Context, *cli.Command, bool) error {
		logger.Initialize(debug, verbose)
		return nil
	}

	return &cli.Command{
		Name:        "spi-calc",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       translations.GetMessage("flag_debug", 0, nil),
				Destination: &debug,
				Action:      setupLogger,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       translations.GetMessage("flag_verbose", 0, nil),
				Destination: &verbose,
				Action:      setupLogger,
			},
		},
		EnableShellCompletion: true,
	}, translations, nil
}
