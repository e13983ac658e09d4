package git

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/monorepo-tools/monokit/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct {
}

func NewGitService() *GitService {
	return &GitService{}
}

// ChangedFiles lista los archivos que cambiaron entre baseRef y HEAD.
// Es el equivalente local de pedirle a la API los archivos de un PR.
func (s *GitService) ChangedFiles(baseRef string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--name-only", baseRef+"...HEAD")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("error al obtener el diff contra '%s': %w", baseRef, err)
	}

	files := make([]string, 0)
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}

	return files, nil
}

func (s *GitService) CurrentBranch() (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error al obtener el nombre de la branch: %v", err)
	}

	branchName := strings.TrimSpace(string(output))
	if branchName == "" {
		return "", fmt.Errorf("no se pudo detectar el nombre de la branch")
	}

	return branchName, nil
}

func (s *GitService) IsWorkTreeClean() (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("error al verificar el estado del work tree: %w", err)
	}
	return strings.TrimSpace(string(output)) == "", nil
}

func (s *GitService) RepoInfo() (string, string, error) {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("error al obtener la URL del repositorio: %w", err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

// HasCommitsUnder verifica que exista historia bajo el prefijo, que es la
// señal de que el subtree se importó con su historia completa.
func (s *GitService) HasCommitsUnder(prefix string) (bool, error) {
	cmd := exec.Command("git", "log", "--oneline", "-1", "--", prefix)
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("error al leer la historia bajo '%s': %w", prefix, err)
	}
	return strings.TrimSpace(string(output)) != "", nil
}

func (s *GitService) RemoteAdd(name, url string) error {
	return runGit("remote", "add", name, url)
}

func (s *GitService) RemoteRemove(name string) error {
	return runGit("remote", "remove", name)
}

func (s *GitService) Fetch(remote, branch string) error {
	return runGit("fetch", remote, branch)
}

func (s *GitService) SubtreeAdd(prefix, remote, branch string, squash bool) error {
	args := []string{"subtree", "add", "--prefix=" + prefix, remote, branch}
	if squash {
		args = append(args, "--squash")
	}
	return runGit(args...)
}

func runGit(args ...string) error {
	cmd := exec.Command("git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %v → %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func parseRepoURL(url string) (string, string, error) {
	sshRegex := regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex := regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)

	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, nil
	}

	return "", "", fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
}
