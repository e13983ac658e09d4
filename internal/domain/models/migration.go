package models

type (
	// MigrationSpec describe la importación de un repositorio origen como
	// subdirectorio del monorepo vía git subtree.
	MigrationSpec struct {
		RepoURL string
		Prefix  string
		Branch  string
		Squash  bool
	}

	// MigrationResult es el resultado de una importación: el nombre del
	// remote temporal usado y los comandos ejecutados (o que se hubieran
	// ejecutado con dry-run).
	MigrationResult struct {
		Remote   string
		Commands []string
		DryRun   bool
	}
)
