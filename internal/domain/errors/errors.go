package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// MigrationError indica que un paso de la importación subtree falló.
// El comando que falló queda en Step para poder reanudar a mano.
type MigrationError struct {
	Step string
	Err  error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration failed at %q: %v", e.Step, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

// NewMigrationError crea un nuevo error de migración
func NewMigrationError(step string, err error) *MigrationError {
	return &MigrationError{Step: step, Err: err}
}

// PRNotFoundError indica que el PR no existe en el proveedor VCS
type PRNotFoundError struct {
	Number int
}

func (e *PRNotFoundError) Error() string {
	return fmt.Sprintf("PR #%d no encontrado", e.Number)
}

// NewPRNotFoundError crea un nuevo error de PR no encontrado
func NewPRNotFoundError(number int) *PRNotFoundError {
	return &PRNotFoundError{Number: number}
}

// PipelineFileError indica que el archivo de pipelines no se pudo leer o parsear
type PipelineFileError struct {
	Path string
	Err  error
}

func (e *PipelineFileError) Error() string {
	return fmt.Sprintf("pipelines file %s: %v", e.Path, e.Err)
}

func (e *PipelineFileError) Unwrap() error {
	return e.Err
}

// NewPipelineFileError crea un nuevo error de archivo de pipelines
func NewPipelineFileError(path string, err error) *PipelineFileError {
	return &PipelineFileError{Path: path, Err: err}
}
