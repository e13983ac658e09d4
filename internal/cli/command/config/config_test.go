package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/monorepo-tools/monokit/internal/config"
	"github.com/monorepo-tools/monokit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) (*i18n.Translations, *config.Config) {
	t.Helper()

	// el runner de CI expone GITHUB_* y pisaría lo que guardan los tests
	t.Setenv("MONOKIT_GITHUB_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_REPOSITORY", "")

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	return translations, cfg
}

func TestSetRepoCommand(t *testing.T) {
	t.Run("saves owner and repo", func(t *testing.T) {
		translations, cfg := setupConfigTest(t)

		cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"config", "set-repo", "acme/mobile-monorepo"})
		require.NoError(t, err)

		reloaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "acme", reloaded.VCS.Owner)
		assert.Equal(t, "mobile-monorepo", reloaded.VCS.Repo)
	})

	t.Run("rejects a value without a slash", func(t *testing.T) {
		translations, cfg := setupConfigTest(t)

		cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"config", "set-repo", "acme"})
		assert.Error(t, err)
	})
}

func TestSetTokenCommand(t *testing.T) {
	t.Run("saves the token", func(t *testing.T) {
		translations, cfg := setupConfigTest(t)

		cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"config", "set-token", "ghp_test"})
		require.NoError(t, err)
		assert.Equal(t, "ghp_test", cfg.VCS.Token)
	})

	t.Run("rejects an empty token", func(t *testing.T) {
		translations, cfg := setupConfigTest(t)

		cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"config", "set-token"})
		assert.Error(t, err)
	})
}

func TestInitCommand(t *testing.T) {
	translations, cfg := setupConfigTest(t)
	cfg.LabelRules = nil

	cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

	err := cmd.Run(context.Background(), []string{"config", "init"})
	require.NoError(t, err)

	require.Len(t, cfg.LabelRules, 2)
	assert.Equal(t, "Android", cfg.LabelRules[0].Label)
	assert.Equal(t, "iOS", cfg.LabelRules[1].Label)

	_, err = config.LoadConfig(cfg.PathFile)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Base(cfg.PathFile), "config.json")
}

func TestShowCommand(t *testing.T) {
	translations, cfg := setupConfigTest(t)
	cfg.VCS.Owner = "acme"
	cfg.VCS.Repo = "mobile-monorepo"

	cmd := NewConfigCommandFactory().CreateCommand(translations, cfg)

	err := cmd.Run(context.Background(), []string{"config", "show"})
	assert.NoError(t, err)
}
