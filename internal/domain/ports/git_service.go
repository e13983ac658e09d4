package ports

// GitService son las operaciones locales de git que usan los comandos de
// migración y de planificación de CI.
type GitService interface {
	ChangedFiles(baseRef string) ([]string, error)
	CurrentBranch() (string, error)
	IsWorkTreeClean() (bool, error)
	// RepoInfo parsea owner y repo desde la URL del remote origin.
	RepoInfo() (owner string, repo string, err error)
	// HasCommitsUnder indica si hay historia bajo el prefijo dado.
	HasCommitsUnder(prefix string) (bool, error)

	RemoteAdd(name, url string) error
	RemoteRemove(name string) error
	Fetch(remote, branch string) error
	SubtreeAdd(prefix, remote, branch string, squash bool) error
}
