package ci

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	cfg "github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/monorepo-tools/monokit/internal/infrastructure/vcs/github"
	"github.com/monorepo-tools/monokit/internal/logger"
	"github.com/monorepo-tools/monokit/internal/services"
	"github.com/urfave/cli/v3"
)

type CICommandFactory struct {
	gitService   ports.GitService
	newVCSClient func(config *cfg.Config, t *i18n.Translations) ports.VCSClient
}

func NewCICommandFactory(gitService ports.GitService) *CICommandFactory {
	return &CICommandFactory{
		gitService: gitService,
		newVCSClient: func(config *cfg.Config, t *i18n.Translations) ports.VCSClient {
			return github.NewGitHubClient(config.VCS.Owner, config.VCS.Repo, config.VCS.Token, t)
		},
	}
}

// NewCICommandFactoryWithClient permite inyectar el cliente VCS en tests.
func NewCICommandFactoryWithClient(gitService ports.GitService, client ports.VCSClient) *CICommandFactory {
	return &CICommandFactory{
		gitService: gitService,
		newVCSClient: func(_ *cfg.Config, _ *i18n.Translations) ports.VCSClient {
			return client
		},
	}
}

func (c *CICommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "ci",
		Usage: t.GetMessage("ci.command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newPlanCommand(t, config),
		},
	}
}

func (c *CICommandFactory) newPlanCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: t.GetMessage("ci.plan_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base",
				Usage: t.GetMessage("ci.base_usage", 0, nil),
				Value: "main",
			},
			&cli.IntFlag{
				Name:  "pr",
				Usage: t.GetMessage("ci.pr_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "pipelines",
				Usage: t.GetMessage("ci.pipelines_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: t.GetMessage("ci.format_usage", 0, nil),
				Value: "text",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			pipelinesPath := command.String("pipelines")
			if pipelinesPath == "" {
				pipelinesPath = config.PipelinesFile
			}

			pipelines, err := services.LoadPipelines(pipelinesPath)
			if err != nil {
				return err
			}

			changed, err := c.changedFiles(ctx, command, t, config)
			if err != nil {
				return err
			}

			plan := services.PlanPipelines(changed, pipelines)
			return printPlan(plan, command.String("format"), t)
		},
	}
}

// changedFiles resuelve los archivos cambiados: contra la API si se pasó un
// número de PR, contra el ref base local si no.
func (c *CICommandFactory) changedFiles(ctx context.Context, command *cli.Command, t *i18n.Translations, config *cfg.Config) ([]string, error) {
	if prNumber := int(command.Int("pr")); prNumber > 0 {
		if config.VCS.Owner == "" || config.VCS.Repo == "" {
			return nil, errors.New(t.GetMessage("error.repo_not_configured", 0, nil))
		}
		pr, err := c.newVCSClient(config, t).GetPR(ctx, prNumber)
		if err != nil {
			return nil, err
		}
		return pr.ChangedFiles, nil
	}

	base := command.String("base")

	// diff base...HEAD sobre la propia base da vacío; se avisa porque casi
	// siempre significa que faltó pasar --base o cambiar de branch
	if branch, err := c.gitService.CurrentBranch(); err == nil && branch == base {
		logger.Warn(ctx, "base ref equals the current branch, the diff will be empty", "base", base)
	}

	return c.gitService.ChangedFiles(base)
}

func printPlan(plan models.PipelinePlan, format string, t *i18n.Translations) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "text":
		if len(plan.Run) == 0 {
			fmt.Println(t.GetMessage("ci.nothing_to_run", 0, nil))
		} else {
			fmt.Println(t.GetMessage("ci.run_header", len(plan.Run), map[string]interface{}{
				"Count": len(plan.Run),
			}))
			for _, p := range plan.Run {
				fmt.Printf("  %s (%s)\n", p.Name, p.Stack)
			}
		}

		if len(plan.Skip) > 0 {
			fmt.Println(t.GetMessage("ci.skip_header", len(plan.Skip), map[string]interface{}{
				"Count": len(plan.Skip),
			}))
			for _, p := range plan.Skip {
				fmt.Printf("  %s (%s)\n", p.Name, p.Stack)
			}
		}
		return nil
	default:
		return fmt.Errorf("formato no soportado: %s", format)
	}
}
