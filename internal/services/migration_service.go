package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/logger"
)

// MigrationService importa la historia de un repositorio origen como
// subdirectorio del monorepo usando git subtree. El remote queda agregado
// después de importar para poder hacer subtree pull mientras el repo
// origen siga recibiendo cambios.
type MigrationService struct {
	git ports.GitService
}

func NewMigrationService(git ports.GitService) *MigrationService {
	return &MigrationService{git: git}
}

func (s *MigrationService) Import(ctx context.Context, spec models.MigrationSpec, dryRun bool) (models.MigrationResult, error) {
	prefix := strings.Trim(spec.Prefix, "/")
	if prefix == "" {
		return models.MigrationResult{}, domainerrors.NewMigrationError("validate", fmt.Errorf("el prefijo no puede estar vacío"))
	}
	if strings.Contains(prefix, "..") {
		return models.MigrationResult{}, domainerrors.NewMigrationError("validate", fmt.Errorf("prefijo inválido: %s", prefix))
	}
	if spec.RepoURL == "" {
		return models.MigrationResult{}, domainerrors.NewMigrationError("validate", fmt.Errorf("la URL del repositorio no puede estar vacía"))
	}

	branch := spec.Branch
	if branch == "" {
		branch = "main"
	}

	remote := prefix + "-src"
	result := models.MigrationResult{
		Remote: remote,
		DryRun: dryRun,
		Commands: []string{
			fmt.Sprintf("git remote add %s %s", remote, spec.RepoURL),
			fmt.Sprintf("git fetch %s %s", remote, branch),
			subtreeCommand(prefix, remote, branch, spec.Squash),
		},
	}

	if dryRun {
		return result, nil
	}

	// subtree add se niega si el directorio ya existe o si hay cambios
	// sin commitear; se valida antes para fallar con un mensaje claro.
	if _, err := os.Stat(prefix); err == nil {
		return result, domainerrors.NewMigrationError("validate", fmt.Errorf("el directorio '%s' ya existe", prefix))
	}

	clean, err := s.git.IsWorkTreeClean()
	if err != nil {
		return result, domainerrors.NewMigrationError("status", err)
	}
	if !clean {
		return result, domainerrors.NewMigrationError("validate", fmt.Errorf("el work tree tiene cambios sin commitear"))
	}

	logger.Info(ctx, "importing repository", "prefix", prefix, "remote", remote)

	if err := s.git.RemoteAdd(remote, spec.RepoURL); err != nil {
		return result, domainerrors.NewMigrationError(result.Commands[0], err)
	}

	if err := s.git.Fetch(remote, branch); err != nil {
		// el remote recién agregado no sirve sin el fetch, se revierte
		if rmErr := s.git.RemoteRemove(remote); rmErr != nil {
			logger.Warn(ctx, "could not remove remote after failed fetch", "remote", remote, "error", rmErr)
		}
		return result, domainerrors.NewMigrationError(result.Commands[1], err)
	}

	if err := s.git.SubtreeAdd(prefix, remote, branch, spec.Squash); err != nil {
		return result, domainerrors.NewMigrationError(result.Commands[2], err)
	}

	return result, nil
}

// Verify confirma que la historia importada es alcanzable bajo el prefijo.
func (s *MigrationService) Verify(prefix string) (bool, error) {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return false, domainerrors.NewMigrationError("validate", fmt.Errorf("el prefijo no puede estar vacío"))
	}
	return s.git.HasCommitsUnder(prefix)
}

func subtreeCommand(prefix, remote, branch string, squash bool) string {
	cmd := fmt.Sprintf("git subtree add --prefix=%s %s %s", prefix, remote, branch)
	if squash {
		cmd += " --squash"
	}
	return cmd
}
