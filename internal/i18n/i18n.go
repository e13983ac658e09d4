package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations arma el bundle con los mensajes por defecto en inglés y
// carga los locales activos desde localesPath (si existen).
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Mobile monorepo toolkit: PR labeling, CI planning and subtree migration"

	[app_description]
	other = "monokit automates the chores of an iOS/Android/KMP monorepo: syncing platform labels on pull requests, deciding which CI pipelines to run for a change, and importing platform repositories with git subtree."

	[help_command_usage]
	other = "Show help"

	[label.command_usage]
	other = "Sync platform labels on a pull request from its changed paths"

	[label.pr_number_usage]
	other = "Pull request number to label"

	[label.dry_run_usage]
	other = "Print the label plan without mutating the PR"

	[label.plan]
	other = "PR #{{.PRNumber}}: add {{.Added}}, remove {{.Removed}}"

	[label.synced]
	other = "Labels synced on PR #{{.PRNumber}}"

	[label.up_to_date]
	other = "PR #{{.PRNumber}} is already labeled correctly, nothing to do"

	[ci.command_usage]
	other = "CI helpers for the monorepo pipelines"

	[ci.plan_usage]
	other = "Decide which pipelines should run for the changed paths"

	[ci.base_usage]
	other = "Base ref to diff against (local mode)"

	[ci.pr_usage]
	other = "Pull request number to read changed files from (remote mode)"

	[ci.format_usage]
	other = "Output format: text or json"

	[ci.pipelines_usage]
	other = "Path to the pipelines definition file"

	[ci.run_header]
	one = "{{.Count}} pipeline to run:"
	other = "{{.Count}} pipelines to run:"

	[ci.skip_header]
	one = "{{.Count}} pipeline skipped:"
	other = "{{.Count}} pipelines skipped:"

	[ci.nothing_to_run]
	other = "No pipeline matches the changed paths"

	[migrate.command_usage]
	other = "Import source repositories into the monorepo with git subtree"

	[migrate.import_usage]
	other = "Merge a repository's history into a monorepo subdirectory"

	[migrate.repo_usage]
	other = "URL of the repository to import"

	[migrate.prefix_usage]
	other = "Subdirectory that will receive the history (e.g. android)"

	[migrate.branch_usage]
	other = "Branch of the source repository to import"

	[migrate.squash_usage]
	other = "Squash the imported history into a single commit"

	[migrate.dry_run_usage]
	other = "Print the git commands without running them"

	[migrate.dry_run_header]
	other = "Commands that would run:"

	[migrate.imported]
	other = "Imported {{.Repo}} into {{.Prefix}}/ (remote {{.Remote}})"

	[migrate.verify_usage]
	other = "Check that imported history is reachable under a prefix"

	[migrate.verify_ok]
	other = "History present under {{.Prefix}}/"

	[migrate.verify_empty]
	other = "No history found under {{.Prefix}}/; was the subtree imported?"

	[config_command_usage]
	other = "Manage the monokit configuration"

	[config_init_usage]
	other = "Create the configuration file with the default label rules"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_repo_usage]
	other = "Set the GitHub repository (owner/repo)"

	[config_set_token_usage]
	other = "Set the GitHub token"

	[current_config]
	other = "Current configuration"

	[config.language_label]
	other = "Language: {{.Lang}}"

	[config.repo_label]
	other = "Repository: {{.Owner}}/{{.Repo}}"

	[config.repo_not_set]
	other = "Repository: not set (use 'monokit config set-repo' or run inside CI)"

	[config.token_set]
	other = "GitHub token: configured"

	[config.token_not_set]
	other = "GitHub token: not set (use 'monokit config set-token' or GITHUB_TOKEN)"

	[config.rules_label]
	other = "Label rules:"

	[config.pipelines_label]
	other = "Pipelines file: {{.Path}}"

	[config.init_success]
	other = "Configuration created at {{.Path}}"

	[config.repo_saved]
	other = "Repository set to {{.Owner}}/{{.Repo}}"

	[config.token_saved]
	other = "Token saved"

	[config.invalid_repo_format]
	other = "Repository must be in owner/repo format"

	[doctor.command_usage]
	other = "Check that monokit can run in this environment"

	[doctor.running_checks]
	other = "Running checks..."

	[doctor.check_git_installed]
	other = "git installed"

	[doctor.check_git_repo]
	other = "inside a git work tree"

	[doctor.check_config]
	other = "configuration valid"

	[doctor.check_token]
	other = "GitHub token configured"

	[doctor.check_remote]
	other = "origin remote matches the configured repository"

	[doctor.check_layout]
	other = "monorepo layout (android/, ios/, kmp/)"

	[doctor.all_good]
	other = "Everything looks good"

	[doctor.has_warnings]
	other = "Some checks reported warnings"

	[doctor.has_errors]
	other = "Some checks failed"

	[error.get_pr]
	other = "error fetching PR #{{.PRNumber}}"

	[error.get_pr_files]
	other = "error fetching changed files for PR #{{.PRNumber}}"

	[error.add_labels]
	other = "could not add labels to PR #{{.PRNumber}}"

	[error.remove_label]
	other = "could not remove label '{{.Label}}' from PR #{{.PRNumber}}"

	[error.get_repo_labels]
	other = "error fetching repository labels"

	[error.create_label]
	other = "error creating label '{{.Label}}'"

	[error.repo_not_configured]
	other = "owner/repo not configured: set it with 'monokit config set-repo' or run inside CI"

	[error.insufficient_permissions]
	other = "the token does not have permission to edit labels on {{.Owner}}/{{.Repo}}"
	`
