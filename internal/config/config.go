package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	domainerrors "github.com/monorepo-tools/monokit/internal/domain/errors"
	"github.com/monorepo-tools/monokit/internal/domain/models"
)

type (
	Config struct {
		Language      string             `json:"language"`
		PathFile      string             `json:"path_file"`
		VCS           VCSConfig          `json:"vcs"`
		LabelRules    []models.LabelRule `json:"label_rules"`
		PipelinesFile string             `json:"pipelines_file"`
	}

	VCSConfig struct {
		Provider string `json:"provider"`
		Owner    string `json:"owner,omitempty"`
		Repo     string `json:"repo,omitempty"`
		Token    string `json:"token,omitempty"`
	}

	// envOverrides son los valores que CI inyecta por entorno. En un job
	// nunca se escribe el archivo de configuración: el token y el repo
	// vienen de las variables que el runner ya expone.
	envOverrides struct {
		Token       string `env:"MONOKIT_GITHUB_TOKEN"`
		GitHubToken string `env:"GITHUB_TOKEN"`
		Repository  string `env:"GITHUB_REPOSITORY"`
	}
)

const (
	defaultLang          = "en"
	defaultProvider      = "github"
	defaultPipelinesFile = ".monokit/pipelines.yaml"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".monokit")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	if err := applyEnvOverrides(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		PathFile: path,
		VCS: VCSConfig{
			Provider: defaultProvider,
		},
		LabelRules:    models.DefaultLabelRules(),
		PipelinesFile: defaultPipelinesFile,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

// applyEnvOverrides pisa la configuración del archivo con las variables de
// entorno. MONOKIT_GITHUB_TOKEN tiene prioridad sobre GITHUB_TOKEN.
func applyEnvOverrides(config *Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return fmt.Errorf("error al leer las variables de entorno: %w", err)
	}

	if overrides.Token != "" {
		config.VCS.Token = overrides.Token
	} else if overrides.GitHubToken != "" && config.VCS.Token == "" {
		config.VCS.Token = overrides.GitHubToken
	}

	if overrides.Repository != "" {
		if owner, repo, ok := strings.Cut(overrides.Repository, "/"); ok {
			config.VCS.Owner = owner
			config.VCS.Repo = repo
		}
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return domainerrors.NewConfigError("language", "no puede estar vacío", nil)
	}

	if config.VCS.Provider != "" && config.VCS.Provider != "github" {
		return domainerrors.NewConfigError("vcs.provider", fmt.Sprintf("proveedor no soportado: %s", config.VCS.Provider), nil)
	}

	for i, rule := range config.LabelRules {
		if rule.Label == "" {
			return domainerrors.NewConfigError("label_rules", fmt.Sprintf("la regla %d no tiene etiqueta", i), nil)
		}
		if len(rule.Prefixes) == 0 {
			return domainerrors.NewConfigError("label_rules", fmt.Sprintf("la regla '%s' no tiene prefijos", rule.Label), nil)
		}
	}

	return nil
}
