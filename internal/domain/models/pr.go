package models

type (
	// PRData contiene la información de una Pull Request que necesita el
	// labeler: los archivos cambiados y las etiquetas actuales.
	PRData struct {
		Number       int
		Title        string
		Author       string
		BaseBranch   string
		ChangedFiles []string
		Labels       []string
	}

	// LabelPlan son las mutaciones necesarias para que las etiquetas del PR
	// converjan con los archivos cambiados. Un plan vacío significa que el
	// PR ya está etiquetado correctamente.
	LabelPlan struct {
		Add    []string
		Remove []string
	}
)

// Empty indica que no hay mutaciones pendientes.
func (p LabelPlan) Empty() bool {
	return len(p.Add) == 0 && len(p.Remove) == 0
}
