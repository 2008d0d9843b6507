package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/spicalc/internal/config"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
	"github.com/thomas-vilte/spicalc/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()

	tmpConfigPath := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := config.CreateDefaultConfig(tmpConfigPath)
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, translations, tmpConfigPath
}

func runConfig(t *testing.T, cfg *config.Config, translations *i18n.Translations, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewConfigCommandFactory().WithOutput(out).CreateCommand(translations, cfg)
	app := &cli.Command{Commands: []*cli.Command{cmd}}

	err := app.Run(context.Background(), append([]string{"spi-calc", "config"}, args...))
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	t.Run("should display the defaults", func(t *testing.T) {
		// Arrange
		cfg, translations, path := setupConfigTest(t)

		// Act
		output, err := runConfig(t, cfg, translations, "show")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, path)
		assert.Contains(t, output, "embedded")
		assert.Contains(t, output, "en")
	})

	t.Run("should display a configured catalog and branch", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)
		cfg.CatalogPath = "/srv/courses.yaml"
		cfg.DefaultBranch = "ECE"

		output, err := runConfig(t, cfg, translations, "show")

		require.NoError(t, err)
		assert.Contains(t, output, "/srv/courses.yaml")
		assert.Contains(t, output, "ECE")
	})
}

func TestSetCommand(t *testing.T) {
	t.Run("should persist the language", func(t *testing.T) {
		// Arrange
		cfg, translations, path := setupConfigTest(t)

		// Act
		_, err := runConfig(t, cfg, translations, "set", "lang", "es")

		// Assert
		require.NoError(t, err)
		loaded, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "es", loaded.Language)
	})

	t.Run("should reject unsupported languages", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "lang", "fr")

		assert.ErrorIs(t, err, apperrors.ErrUnsupportedLanguage)
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("should validate the catalog before saving it", func(t *testing.T) {
		cfg, translations, path := setupConfigTest(t)
		catalogPath := filepath.Join(filepath.Dir(path), "courses.yaml")
		require.NoError(t, os.WriteFile(catalogPath, []byte("CSE:\n  \"1\": []\n"), 0644))

		_, err := runConfig(t, cfg, translations, "set", "catalog", catalogPath)
		require.NoError(t, err)
		assert.Equal(t, catalogPath, cfg.CatalogPath)

		_, err = runConfig(t, cfg, translations, "set", "catalog", filepath.Join(filepath.Dir(path), "missing.json"))
		assert.ErrorIs(t, err, apperrors.ErrCatalogRead)
		assert.Equal(t, catalogPath, cfg.CatalogPath)

		_, err = runConfig(t, cfg, translations, "set", "catalog", "embedded")
		require.NoError(t, err)
		assert.Empty(t, cfg.CatalogPath)
	})

	t.Run("should store a relative catalog path as absolute", func(t *testing.T) {
		// Arrange
		cfg, translations, path := setupConfigTest(t)
		dir := filepath.Dir(path)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "courses.json"), []byte(`{"CSE": {"1": []}}`), 0644))
		wd, wdErr := os.Getwd()
		require.NoError(t, wdErr)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		want, err := filepath.Abs("courses.json")
		require.NoError(t, err)

		// Act
		_, err = runConfig(t, cfg, translations, "set", "catalog", "courses.json")

		// Assert
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(cfg.CatalogPath))
		assert.Equal(t, want, cfg.CatalogPath)
		loaded, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, loaded.CatalogPath)
	})

	t.Run("should parse color as a boolean", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "color", "false")
		require.NoError(t, err)
		assert.False(t, cfg.UseColor)

		_, err = runConfig(t, cfg, translations, "set", "color", "maybe")
		assert.ErrorIs(t, err, apperrors.ErrInvalidBool)
	})

	t.Run("should set the default branch", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		output, err := runConfig(t, cfg, translations, "set", "default-branch", "ME")

		require.NoError(t, err)
		assert.Equal(t, "ME", cfg.DefaultBranch)
		assert.Contains(t, output, "ME")
	})

	t.Run("should fail on unknown keys", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "emoji", "true")

		assert.ErrorIs(t, err, apperrors.ErrUnknownConfigKey)
	})

	t.Run("should fail with missing arguments", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "lang")

		assert.ErrorIs(t, err, apperrors.ErrMissingArguments)
	})
}
