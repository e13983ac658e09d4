package config

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/urfave/cli/v3"
)

type DoctorCommand struct {
	gitService ports.GitService
}

func NewDoctorCommand(gitService ports.GitService) *DoctorCommand {
	return &DoctorCommand{gitService: gitService}
}

type checkStatus int

const (
	checkStatusOK checkStatus = iota
	checkStatusWarning
	checkStatusError
)

type checkResult struct {
	status  checkStatus
	message string
}

type healthCheck struct {
	name string
	fn   func(cfg *config.Config) checkResult
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor.command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return d.runHealthCheck(t, cfg)
		},
	}
}

func (d *DoctorCommand) runHealthCheck(t *i18n.Translations, cfg *config.Config) error {
	fmt.Println(t.GetMessage("doctor.running_checks", 0, nil))

	checks := []healthCheck{
		{name: "doctor.check_git_installed", fn: d.checkGitInstalled},
		{name: "doctor.check_git_repo", fn: d.checkGitRepo},
		{name: "doctor.check_config", fn: d.checkConfig},
		{name: "doctor.check_token", fn: d.checkToken},
		{name: "doctor.check_remote", fn: d.checkRemote},
		{name: "doctor.check_layout", fn: d.checkLayout},
	}

	var warnings, failures int
	for _, check := range checks {
		checkName := t.GetMessage(check.name, 0, nil)
		result := check.fn(cfg)

		switch result.status {
		case checkStatusOK:
			fmt.Printf("%s %s\n", color.GreenString("✓"), checkName)
		case checkStatusWarning:
			warnings++
			fmt.Printf("%s %s\n", color.YellowString("!"), checkName)
		case checkStatusError:
			failures++
			fmt.Printf("%s %s\n", color.RedString("✗"), checkName)
		}
		if result.message != "" {
			fmt.Printf("  → %s\n", result.message)
		}
	}

	fmt.Println()
	switch {
	case failures > 0:
		fmt.Println(color.RedString(t.GetMessage("doctor.has_errors", 0, nil)))
	case warnings > 0:
		fmt.Println(color.YellowString(t.GetMessage("doctor.has_warnings", 0, nil)))
	default:
		fmt.Println(color.GreenString(t.GetMessage("doctor.all_good", 0, nil)))
	}

	return nil
}

func (d *DoctorCommand) checkGitInstalled(_ *config.Config) checkResult {
	if _, err := exec.LookPath("git"); err != nil {
		return checkResult{status: checkStatusError, message: "install git and make sure it is on the PATH"}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkGitRepo(_ *config.Config) checkResult {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	if err := cmd.Run(); err != nil {
		return checkResult{status: checkStatusWarning, message: "not inside a git work tree; migrate and ci plan need one"}
	}
	return checkResult{status: checkStatusOK}
}

// checkConfig relee el archivo de configuración desde el disco: una edición
// a mano puede dejar JSON roto o reglas inválidas que recién explotan al
// correr un comando.
func (d *DoctorCommand) checkConfig(cfg *config.Config) checkResult {
	if cfg.PathFile == "" {
		return checkResult{status: checkStatusWarning, message: "no configuration file loaded; run 'monokit config init'"}
	}
	if _, err := config.LoadConfig(cfg.PathFile); err != nil {
		return checkResult{status: checkStatusError, message: err.Error()}
	}
	return checkResult{status: checkStatusOK}
}

func (d *DoctorCommand) checkToken(cfg *config.Config) checkResult {
	if cfg.VCS.Token == "" {
		return checkResult{status: checkStatusWarning, message: "set MONOKIT_GITHUB_TOKEN or run 'monokit config set-token'"}
	}
	return checkResult{status: checkStatusOK}
}

// checkRemote compara el repositorio configurado con el remote origin. Un
// desajuste significa que label y ci plan --pr van a hablar con otro repo.
func (d *DoctorCommand) checkRemote(cfg *config.Config) checkResult {
	owner, repo, err := d.gitService.RepoInfo()
	if err != nil {
		return checkResult{status: checkStatusWarning, message: "could not read the origin remote"}
	}
	if cfg.VCS.Owner == "" || cfg.VCS.Repo == "" {
		return checkResult{
			status:  checkStatusWarning,
			message: fmt.Sprintf("origin points at %s/%s; save it with 'monokit config set-repo'", owner, repo),
		}
	}
	if !strings.EqualFold(owner, cfg.VCS.Owner) || !strings.EqualFold(repo, cfg.VCS.Repo) {
		return checkResult{
			status:  checkStatusWarning,
			message: fmt.Sprintf("configured %s/%s but origin points at %s/%s", cfg.VCS.Owner, cfg.VCS.Repo, owner, repo),
		}
	}
	return checkResult{status: checkStatusOK}
}

// checkLayout avisa si falta alguno de los directorios del monorepo. Antes
// de la migración es normal que falten, por eso es warning y no error.
func (d *DoctorCommand) checkLayout(_ *config.Config) checkResult {
	missing := ""
	for _, dir := range []string{"android", "ios", "kmp"} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			if missing != "" {
				missing += ", "
			}
			missing += dir + "/"
		}
	}
	if missing != "" {
		return checkResult{status: checkStatusWarning, message: "missing: " + missing}
	}
	return checkResult{status: checkStatusOK}
}
