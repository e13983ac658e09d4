package services

import (
	"fmt"
	"os"

	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/domain/models"
	"gopkg.in/yaml.v3"
)

type pipelinesFile struct {
	Pipelines []models.Pipeline `yaml:"pipelines"`
}

// LoadPipelines lee las definiciones de pipelines desde el archivo YAML.
func LoadPipelines(path string) ([]models.Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainerrors.NewPipelineFileError(path, err)
	}

	var file pipelinesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domainerrors.NewPipelineFileError(path, err)
	}

	seen := make(map[string]struct{}, len(file.Pipelines))
	for _, p := range file.Pipelines {
		if p.Name == "" {
			return nil, domainerrors.NewPipelineFileError(path, fmt.Errorf("pipeline sin nombre"))
		}
		if _, dup := seen[p.Name]; dup {
			return nil, domainerrors.NewPipelineFileError(path, fmt.Errorf("pipeline duplicado: %s", p.Name))
		}
		seen[p.Name] = struct{}{}
	}

	return file.Pipelines, nil
}

// PlanPipelines decide qué pipelines correr para los archivos cambiados.
// Es la misma clasificación por prefijo del labeler: el pipeline de Android
// corre si cambió android/ o kmp/, el de iOS si cambió ios/ o kmp/.
func PlanPipelines(changedFiles []string, pipelines []models.Pipeline) models.PipelinePlan {
	plan := models.PipelinePlan{
		Run:  make([]models.Pipeline, 0, len(pipelines)),
		Skip: make([]models.Pipeline, 0),
	}

	for _, pipeline := range pipelines {
		if pipeline.ShouldRun(changedFiles) {
			plan.Run = append(plan.Run, pipeline)
		} else {
			plan.Skip = append(plan.Skip, pipeline)
		}
	}

	return plan
}
