package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	apperrors "github.com/thomas-vilte/spicalc/internal/errors"
)

type (
	Config struct {
		Language      string `toml:"language"`
		CatalogPath   string `toml:"catalog_path"`
		UseColor      bool   `toml:"use_color"`
		DefaultBranch string `toml:"default_branch"`
		PathFile      string `toml:"-"`

		env envOverrides
	}

	// envOverrides are read from SPICALC_* variables on every load. They
	// change what the accessors report but are never saved to disk.
	envOverrides struct {
		Language      string `env:"SPICALC_LANG"`
		CatalogPath   string `env:"SPICALC_CATALOG"`
		NoColor       bool   `env:"SPICALC_NO_COLOR"`
		DefaultBranch string `env:"SPICALC_DEFAULT_BRANCH"`
	}
)

const (
	configDirName  = ".spi-calc"
	configFileName = "config.toml"

	defaultLang     = LangEN
	defaultUseColor = true
)

// LoadConfig reads the config file. path is either the file itself (.toml)
// or a home directory under which ~/.spi-calc/config.toml is used. A missing
// file is created with defaults.
func LoadConfig(path string) (*Config, error) {
	configPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		return CreateDefaultConfig(configPath)
	} else if err != nil {
		return nil, apperrors.ErrConfigLoad.WithError(err).WithContext("path", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, apperrors.ErrConfigLoad.WithError(err).WithContext("path", configPath)
	}

	config := Config{UseColor: defaultUseColor}
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, apperrors.ErrConfigLoad.WithError(err).WithContext("path", configPath)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if err := config.loadEnv(); err != nil {
		return nil, err
	}

	return &config, nil
}

func resolvePath(path string) (string, error) {
	if filepath.Ext(path) == ".toml" {
		return path, nil
	}
	if path == "" {
		return "", apperrors.ErrConfigLoad.WithError(errors.New("home directory is not set"))
	}
	return filepath.Join(path, configDirName, configFileName), nil
}

// CreateDefaultConfig writes a default config to path and returns it.
func CreateDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		UseColor: defaultUseColor,
		PathFile: path,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, apperrors.ErrConfigSave.WithError(err).WithContext("path", path)
	}

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	if err := config.loadEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	if config.PathFile == "" {
		return apperrors.ErrConfigSave.WithError(errors.New("config file path is not set"))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return apperrors.ErrConfigSave.WithError(err)
	}

	if err := os.WriteFile(config.PathFile, buf.Bytes(), 0644); err != nil {
		return apperrors.ErrConfigSave.WithError(err).WithContext("path", config.PathFile)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return apperrors.ErrConfigInvalid.WithError(errors.New("language cannot be empty"))
	}
	if !IsSupportedLanguage(config.Language) {
		return apperrors.ErrUnsupportedLanguage.WithContext("language", config.Language)
	}
	return nil
}

func (c *Config) loadEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return apperrors.ErrEnvOverrides.WithError(err)
	}
	if o.Language != "" && !IsSupportedLanguage(o.Language) {
		return apperrors.ErrUnsupportedLanguage.
			WithError(fmt.Errorf("SPICALC_LANG=%s", o.Language))
	}
	c.env = o
	return nil
}

// Lang is the effective language, SPICALC_LANG first.
func (c *Config) Lang() string {
	if c.env.Language != "" {
		return c.env.Language
	}
	return c.Language
}

// Catalog is the effective catalog path; blank means the embedded catalog.
func (c *Config) Catalog() string {
	if c.env.CatalogPath != "" {
		return c.env.CatalogPath
	}
	return c.CatalogPath
}

// Color reports whether colored output is enabled.
func (c *Config) Color() bool {
	if c.env.NoColor {
		return false
	}
	return c.UseColor
}

// Branch is the effective default branch; blank means the catalog's first.
func (c *Config) Branch() string {
	if c.env.DefaultBranch != "" {
		return c.env.DefaultBranch
	}
	return c.DefaultBranch
}
