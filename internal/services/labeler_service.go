package services

import (
	"context"
	"strings"

	"github.com/monorepo-tools/monokit/internal/domain/models"
	"github.com/monorepo-tools/monokit/internal/domain/ports"
	"github.com/monorepo-tools/monokit/internal/logger"
)

// LabelerService mantiene las etiquetas de plataforma de un PR en sintonía
// con sus archivos cambiados. Corre una vez por evento de PR y es
// idempotente: con el mismo conjunto de archivos, la segunda corrida no
// produce ninguna mutación.
type LabelerService struct {
	vcsClient ports.VCSClient
	rules     []models.LabelRule
}

func NewLabelerService(vcsClient ports.VCSClient, rules []models.LabelRule) *LabelerService {
	return &LabelerService{
		vcsClient: vcsClient,
		rules:     rules,
	}
}

// PlanLabels calcula las mutaciones para converger: agrega la etiqueta de
// una regla si algún archivo matchea un prefijo y la etiqueta falta; la
// quita si ningún archivo matchea y la etiqueta está. Una pasada, sin
// estado, determinística.
func PlanLabels(changedFiles, currentLabels []string, rules []models.LabelRule) models.LabelPlan {
	var plan models.LabelPlan

	for _, rule := range rules {
		matches := rule.Matches(changedFiles)
		present := hasLabel(currentLabels, rule.Label)

		switch {
		case matches && !present:
			plan.Add = append(plan.Add, rule.Label)
		case !matches && present:
			plan.Remove = append(plan.Remove, rule.Label)
		}
	}

	return plan
}

// Plan calcula el plan para un PR sin aplicarlo.
func (s *LabelerService) Plan(ctx context.Context, prNumber int) (models.LabelPlan, error) {
	pr, err := s.vcsClient.GetPR(ctx, prNumber)
	if err != nil {
		return models.LabelPlan{}, err
	}
	return PlanLabels(pr.ChangedFiles, pr.Labels, s.rules), nil
}

// Sync aplica el plan sobre el PR. Un error al agregar o quitar una
// etiqueta se loguea y se sigue con el resto: el run de CI no falla por
// una mutación de etiqueta. Los errores leyendo el PR sí se propagan,
// sin ellos no hay nada que calcular.
func (s *LabelerService) Sync(ctx context.Context, prNumber int) (models.LabelPlan, error) {
	pr, err := s.vcsClient.GetPR(ctx, prNumber)
	if err != nil {
		return models.LabelPlan{}, err
	}

	plan := PlanLabels(pr.ChangedFiles, pr.Labels, s.rules)
	if plan.Empty() {
		logger.Debug(ctx, "labels already in sync", "pr", prNumber)
		return plan, nil
	}

	if len(plan.Add) > 0 {
		if err := s.vcsClient.EnsureLabelsExist(ctx, plan.Add); err != nil {
			logger.Warn(ctx, "could not ensure labels exist", "pr", prNumber, "error", err)
		}
		if err := s.vcsClient.AddLabels(ctx, prNumber, plan.Add); err != nil {
			logger.Warn(ctx, "could not add labels", "pr", prNumber, "labels", strings.Join(plan.Add, ","), "error", err)
		}
	}

	for _, label := range plan.Remove {
		if err := s.vcsClient.RemoveLabel(ctx, prNumber, label); err != nil {
			logger.Warn(ctx, "could not remove label", "pr", prNumber, "label", label, "error", err)
		}
	}

	return plan, nil
}

func hasLabel(labels []string, target string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, target) {
			return true
		}
	}
	return false
}
