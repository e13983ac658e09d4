package migrate

import (
	"context"
	"errors"
	"fmt"

	cfg "github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/monorepo-tools/monokit/internal/services"
	"github.com/urfave/cli/v3"
)

type MigrateCommandFactory struct {
	gitService ports.GitService
}

func NewMigrateCommandFactory(gitService ports.GitService) *MigrateCommandFactory {
	return &MigrateCommandFactory{gitService: gitService}
}

func (c *MigrateCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: t.GetMessage("migrate.command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newImportCommand(t),
			c.newVerifyCommand(t),
		},
	}
}

func (c *MigrateCommandFactory) newImportCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: t.GetMessage("migrate.import_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repo",
				Usage:    t.GetMessage("migrate.repo_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:     "prefix",
				Usage:    t.GetMessage("migrate.prefix_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "branch",
				Usage: t.GetMessage("migrate.branch_usage", 0, nil),
				Value: "main",
			},
			&cli.BoolFlag{
				Name:  "squash",
				Usage: t.GetMessage("migrate.squash_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("migrate.dry_run_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			spec := models.MigrationSpec{
				RepoURL: command.String("repo"),
				Prefix:  command.String("prefix"),
				Branch:  command.String("branch"),
				Squash:  command.Bool("squash"),
			}

			service := services.NewMigrationService(c.gitService)
			result, err := service.Import(ctx, spec, command.Bool("dry-run"))
			if err != nil {
				return err
			}

			if result.DryRun {
				fmt.Println(t.GetMessage("migrate.dry_run_header", 0, nil))
				for _, cmd := range result.Commands {
					fmt.Printf("  %s\n", cmd)
				}
				return nil
			}

			fmt.Println(t.GetMessage("migrate.imported", 0, map[string]interface{}{
				"Repo":   spec.RepoURL,
				"Prefix": command.String("prefix"),
				"Remote": result.Remote,
			}))
			return nil
		},
	}
}

func (c *MigrateCommandFactory) newVerifyCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: t.GetMessage("migrate.verify_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prefix",
				Usage:    t.GetMessage("migrate.prefix_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			prefix := command.String("prefix")

			service := services.NewMigrationService(c.gitService)
			ok, err := service.Verify(prefix)
			if err != nil {
				return err
			}

			if !ok {
				return errors.New(t.GetMessage("migrate.verify_empty", 0, map[string]interface{}{
					"Prefix": prefix,
				}))
			}

			fmt.Println(t.GetMessage("migrate.verify_ok", 0, map[string]interface{}{
				"Prefix": prefix,
			}))
			return nil
		},
	}
}
