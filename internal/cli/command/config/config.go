package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t, cfg),
			c.newShowCommand(t, cfg),
			c.newSetRepoCommand(t, cfg),
			c.newSetTokenCommand(t, cfg),
		},
	}
}

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.LabelRules = models.DefaultLabelRules()
			if cfg.PipelinesFile == "" {
				cfg.PipelinesFile = ".monokit/pipelines.yaml"
			}
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config.init_success", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("config.language_label", 0, map[string]interface{}{"Lang": cfg.Language}))

			if cfg.VCS.Owner != "" && cfg.VCS.Repo != "" {
				fmt.Printf("%s\n", t.GetMessage("config.repo_label", 0, map[string]interface{}{
					"Owner": cfg.VCS.Owner,
					"Repo":  cfg.VCS.Repo,
				}))
			} else {
				fmt.Println(t.GetMessage("config.repo_not_set", 0, nil))
			}

			if cfg.VCS.Token != "" {
				fmt.Println(t.GetMessage("config.token_set", 0, nil))
			} else {
				fmt.Println(t.GetMessage("config.token_not_set", 0, nil))
			}

			fmt.Println(t.GetMessage("config.rules_label", 0, nil))
			for _, rule := range cfg.LabelRules {
				fmt.Printf("- %s: %s\n", rule.Label, strings.Join(rule.Prefixes, ", "))
			}

			fmt.Printf("%s\n", t.GetMessage("config.pipelines_label", 0, map[string]interface{}{
				"Path": cfg.PipelinesFile,
			}))

			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetRepoCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-repo",
		Usage:     t.GetMessage("config_set_repo_usage", 0, nil),
		ArgsUsage: "<owner/repo>",
		Action: func(ctx context.Context, command *cli.Command) error {
			owner, repo, ok := strings.Cut(command.Args().First(), "/")
			if !ok || owner == "" || repo == "" {
				return errors.New(t.GetMessage("config.invalid_repo_format", 0, nil))
			}

			cfg.VCS.Owner = owner
			cfg.VCS.Repo = repo
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config.repo_saved", 0, map[string]interface{}{
				"Owner": owner,
				"Repo":  repo,
			}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetTokenCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		Usage:     t.GetMessage("config_set_token_usage", 0, nil),
		ArgsUsage: "<token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			token := command.Args().First()
			if token == "" {
				return errors.New("token vacío")
			}

			cfg.VCS.Token = token
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Println(t.GetMessage("config.token_saved", 0, nil))
			return nil
		},
	}
}
