package models

type (
	// Pipeline es una definición de pipeline de CI: corre en un stack
	// (tipo de máquina) y solo cuando cambian archivos bajo sus rutas.
	Pipeline struct {
		Name  string   `yaml:"name"`
		Stack string   `yaml:"stack"`
		Paths []string `yaml:"paths"`
	}

	// PipelinePlan es la decisión de qué pipelines ejecutar para un
	// conjunto de archivos cambiados.
	PipelinePlan struct {
		Run  []Pipeline `json:"run"`
		Skip []Pipeline `json:"skip"`
	}
)

// ShouldRun indica si el pipeline debe ejecutarse para los archivos
// cambiados. Un pipeline sin rutas corre siempre.
func (p Pipeline) ShouldRun(changedFiles []string) bool {
	if len(p.Paths) == 0 {
		return true
	}
	rule := LabelRule{Prefixes: p.Paths}
	return rule.Matches(changedFiles)
}
