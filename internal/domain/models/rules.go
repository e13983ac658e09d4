package models

import "strings"

// LabelRule asocia una etiqueta con los prefijos de ruta que la activan.
// Un PR que toca cualquier archivo bajo uno de los prefijos recibe la
// etiqueta; un PR que no toca ninguno la pierde.
type LabelRule struct {
	Label    string   `json:"label"`
	Prefixes []string `json:"prefixes"`
}

// Matches indica si alguno de los archivos cambiados cae bajo un prefijo
// de la regla.
func (r LabelRule) Matches(changedFiles []string) bool {
	for _, file := range changedFiles {
		for _, prefix := range r.Prefixes {
			if strings.HasPrefix(file, prefix) {
				return true
			}
		}
	}
	return false
}

// DefaultLabelRules son las reglas del monorepo móvil: el módulo compartido
// kmp/ afecta a las dos plataformas.
func DefaultLabelRules() []LabelRule {
	return []LabelRule{
		{Label: "Android", Prefixes: []string{"android/", "kmp/"}},
		{Label: "iOS", Prefixes: []string{"ios/", "kmp/"}},
	}
}
