package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
)

// Config is the optional YAML configuration of the invoice generator.
type Config struct {
	Defaults invoice.Defaults `yaml:"defaults"`
	Fonts    []FontConfig     `yaml:"fonts"`
	Logger   LoggerConfig     `yaml:"logger"`
	Output   OutputConfig     `yaml:"output"`
}

// FontConfig registers a TrueType font under Name.
type FontConfig struct {
	Name    string `yaml:"name"`
	Regular string `yaml:"regular"`
	Bold    string `yaml:"bold"`
}

// LoggerConfig mirrors logging.Options.
type LoggerConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// OutputConfig controls the destination picker.
type OutputConfig struct {
	// Filename is suggested when asking where to save the invoice.
	Filename string `yaml:"filename"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: invoice.DefaultValues(),
		Logger: LoggerConfig{
			Level:      "warn",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Output: OutputConfig{Filename: "invoice.pdf"},
	}
}

// LoadFrom reads the YAML file at path on top of Default. An empty path or a
// missing file yields the defaults unchanged.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	var errs []error
	if c.Logger.Level != "" {
		if _, err := zerolog.ParseLevel(c.Logger.Level); err != nil {
			errs = append(errs, fmt.Errorf("logger.level: %w", err))
		}
	}
	if c.Logger.MaxSizeMB < 0 || c.Logger.MaxBackups < 0 || c.Logger.MaxAgeDays < 0 {
		errs = append(errs, errors.New("logger: rotation limits must not be negative"))
	}
	for i, font := range c.Fonts {
		if strings.TrimSpace(font.Name) == "" {
			errs = append(errs, fmt.Errorf("fonts[%d]: name is required", i))
		}
		if strings.TrimSpace(font.Regular) == "" {
			errs = append(errs, fmt.Errorf("fonts[%d]: regular is required", i))
		}
	}
	return errors.Join(errs...)
}

// FontRegistry builds a registry holding the core fonts plus every configured
// font that could be registered. Fonts that fail are skipped and reported.
func (c Config) FontRegistry() (*fonts.Registry, []error) {
	registry := fonts.NewRegistry()
	var errs []error
	for _, font := range c.Fonts {
		err := registry.Register(fonts.Font{
			Name:    font.Name,
			Regular: font.Regular,
			Bold:    font.Bold,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return registry, errs
}
