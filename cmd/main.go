package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/monorepo-tools/monokit/internal/cli/command/ci"
	configcmd "github.com/monorepo-tools/monokit/internal/cli/command/config"
	"github.com/monorepo-tools/monokit/internal/cli/command/label"
	"github.com/monorepo-tools/monokit/internal/cli/command/migrate"
	"github.com/monorepo-tools/monokit/internal/cli/registry"
	cfg "github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/monorepo-tools/monokit/internal/infrastructure/git"
	"github.com/monorepo-tools/monokit/internal/logger"
	"github.com/monorepo-tools/monokit/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(
		slices.Contains(os.Args, "--debug"),
		slices.Contains(os.Args, "--verbose"),
	)

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	configPath := os.Getenv("MONOKIT_CONFIG")
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
		}
		configPath = homeDir
	}

	cfgApp, err := cfg.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	gitService := git.NewGitService()

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("label", label.NewLabelCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'label': %w", err)
	}

	if err := registerCommand.Register("ci", ci.NewCICommandFactory(gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'ci': %w", err)
	}

	if err := registerCommand.Register("migrate", migrate.NewMigrateCommandFactory(gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'migrate': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	if err := registerCommand.Register("doctor", configcmd.NewDoctorCommand(gitService)); err != nil {
		return nil, fmt.Errorf("error al registrar el comando 'doctor': %w", err)
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

	return &cli.Command{
		Name:        "monokit",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log informational messages to stderr",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log debug messages with source locations",
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
