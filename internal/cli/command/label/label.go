package label

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cfg "github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/monorepo-tools/monokit/internal/infrastructure/vcs/github"
	"github.com/monorepo-tools/monokit/internal/services"
	"github.com/urfave/cli/v3"
)

type LabelCommandFactory struct {
	newVCSClient func(config *cfg.Config, t *i18n.Translations) ports.VCSClient
}

func NewLabelCommandFactory() *LabelCommandFactory {
	return &LabelCommandFactory{
		newVCSClient: func(config *cfg.Config, t *i18n.Translations) ports.VCSClient {
			return github.NewGitHubClient(config.VCS.Owner, config.VCS.Repo, config.VCS.Token, t)
		},
	}
}

// NewLabelCommandFactoryWithClient permite inyectar el cliente VCS en tests.
func NewLabelCommandFactoryWithClient(client ports.VCSClient) *LabelCommandFactory {
	return &LabelCommandFactory{
		newVCSClient: func(_ *cfg.Config, _ *i18n.Translations) ports.VCSClient {
			return client
		},
	}
}

func (c *LabelCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "label",
		Usage: t.GetMessage("label.command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "pr-number",
				Aliases:  []string{"n"},
				Usage:    t.GetMessage("label.pr_number_usage", 0, nil),
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("label.dry_run_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			if config.VCS.Owner == "" || config.VCS.Repo == "" {
				return errors.New(t.GetMessage("error.repo_not_configured", 0, nil))
			}

			prNumber := int(command.Int("pr-number"))
			rules := config.LabelRules
			if len(rules) == 0 {
				rules = models.DefaultLabelRules()
			}

			labeler := services.NewLabelerService(c.newVCSClient(config, t), rules)

			var plan models.LabelPlan
			var err error
			if command.Bool("dry-run") {
				plan, err = labeler.Plan(ctx, prNumber)
			} else {
				plan, err = labeler.Sync(ctx, prNumber)
			}
			if err != nil {
				return err
			}

			if plan.Empty() {
				fmt.Println(t.GetMessage("label.up_to_date", 0, map[string]interface{}{
					"PRNumber": prNumber,
				}))
				return nil
			}

			fmt.Println(t.GetMessage("label.plan", 0, map[string]interface{}{
				"PRNumber": prNumber,
				"Added":    formatLabels(plan.Add),
				"Removed":  formatLabels(plan.Remove),
			}))

			if !command.Bool("dry-run") {
				fmt.Println(t.GetMessage("label.synced", 0, map[string]interface{}{
					"PRNumber": prNumber,
				}))
			}
			return nil
		},
	}
}

func formatLabels(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ", ")
}
