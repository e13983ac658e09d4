package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

type IssuesService interface {
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, label *github.Label) (*github.Label, *github.Response, error)
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
	RemoveLabelForIssue(ctx context.Context, owner, repo string, number int, label string) (*github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

// labelColors son los colores de las etiquetas de plataforma que el cliente
// crea cuando faltan en el repositorio.
var labelColors = map[string]string{
	"android": "3DDC84",
	"ios":     "0E7AFE",
}

const defaultLabelColor = "EDEDED"

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

// GetPR trae del PR lo único que el labeler necesita: archivos cambiados y
// etiquetas actuales. Los archivos se paginan; un PR grande puede superar
// largamente la página de 100.
func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	pr, resp, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return models.PRData{}, domainerrors.NewPRNotFoundError(prNumber)
		}
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr", 0, map[string]interface{}{"PRNumber": prNumber}), err)
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		labels = append(labels, label.GetName())
	}

	files, err := ghc.listChangedFiles(ctx, prNumber)
	if err != nil {
		return models.PRData{}, err
	}

	return models.PRData{
		Number:       prNumber,
		Title:        pr.GetTitle(),
		Author:       pr.GetUser().GetLogin(),
		BaseBranch:   pr.GetBase().GetRef(),
		ChangedFiles: files,
		Labels:       labels,
	}, nil
}

func (ghc *GitHubClient) listChangedFiles(ctx context.Context, prNumber int) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var files []string
	for {
		commitFiles, resp, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr_files", 0, map[string]interface{}{"PRNumber": prNumber}), err)
		}

		for _, file := range commitFiles {
			files = append(files, file.GetFilename())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

func (ghc *GitHubClient) AddLabels(ctx context.Context, prNumber int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	_, resp, err := ghc.issuesService.AddLabelsToIssue(ctx, ghc.owner, ghc.repo, prNumber, labels)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
				"Owner": ghc.owner,
				"Repo":  ghc.repo,
			}), err)
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.add_labels", 0, map[string]interface{}{"PRNumber": prNumber}), err)
	}
	return nil
}

func (ghc *GitHubClient) RemoveLabel(ctx context.Context, prNumber int, label string) error {
	resp, err := ghc.issuesService.RemoveLabelForIssue(ctx, ghc.owner, ghc.repo, prNumber, label)
	if err != nil {
		// 404 acá significa que la etiqueta ya no está: el estado deseado.
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.remove_label", 0, map[string]interface{}{
			"Label":    label,
			"PRNumber": prNumber,
		}), err)
	}
	return nil
}

// EnsureLabelsExist crea en el repositorio las etiquetas que falten, con el
// color de la plataforma si es una etiqueta conocida.
func (ghc *GitHubClient) EnsureLabelsExist(ctx context.Context, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	existing, err := ghc.repoLabels(ctx)
	if err != nil {
		return err
	}

	for _, label := range labels {
		if labelExists(existing, label) {
			continue
		}

		color := defaultLabelColor
		if c, ok := labelColors[strings.ToLower(label)]; ok {
			color = c
		}

		newLabel := &github.Label{
			Name:  github.Ptr(label),
			Color: github.Ptr(color),
		}
		if _, _, err := ghc.issuesService.CreateLabel(ctx, ghc.owner, ghc.repo, newLabel); err != nil {
			// Una creación concurrente desde otro job devuelve 422.
			if strings.Contains(err.Error(), "already_exists") || strings.Contains(err.Error(), "422") {
				continue
			}
			return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_label", 0, map[string]interface{}{"Label": label}), err)
		}
	}

	return nil
}

func (ghc *GitHubClient) repoLabels(ctx context.Context) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var names []string
	for {
		labels, resp, err := ghc.issuesService.ListLabels(ctx, ghc.owner, ghc.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_repo_labels", 0, nil), err)
		}

		for _, label := range labels {
			names = append(names, label.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

func labelExists(existing []string, target string) bool {
	for _, l := range existing {
		if strings.EqualFold(l, target) {
			return true
		}
	}
	return false
}
