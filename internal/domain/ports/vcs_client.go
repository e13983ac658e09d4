package ports

import (
	"context"

	"github.com/monorepo-tools/monokit/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los
// sistemas de control de versiones.
type VCSClient interface {
	// GetPR obtiene los datos del PR: archivos cambiados y etiquetas actuales.
	GetPR(ctx context.Context, prNumber int) (models.PRData, error)
	// AddLabels agrega etiquetas al PR.
	AddLabels(ctx context.Context, prNumber int, labels []string) error
	// RemoveLabel quita una etiqueta del PR.
	RemoveLabel(ctx context.Context, prNumber int, label string) error
	// EnsureLabelsExist crea en el repositorio las etiquetas que falten.
	EnsureLabelsExist(ctx context.Context, labels []string) error
}
