package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-invoicegen/internal/config"
	"github.com/goliatone/go-invoicegen/internal/logging"
	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/model"
	"github.com/goliatone/go-invoicegen/pkg/pdf"
)

// Flags are the command line overrides shared by the front ends.
type Flags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	// Console receives human-readable log lines. Defaults to stderr.
	Console io.Writer
}

// Env is everything a front end needs to run the generator.
type Env struct {
	Config   config.Config
	Fonts    *fonts.Registry
	Form     model.FormModel
	Renderer *pdf.Renderer
}

// Load reads the configuration, initialises logging, registers fonts and
// builds the decorated invoice form.
func Load(flags Flags) (Env, error) {
	cfg, err := config.LoadFrom(flags.ConfigPath)
	if err != nil {
		return Env{}, err
	}
	if flags.LogLevel != "" {
		cfg.Logger.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.Logger.File = flags.LogFile
	}

	logging.Init(logging.Options{
		Level:      cfg.Logger.Level,
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
		Compress:   cfg.Logger.Compress,
		Console:    flags.Console,
	})
	if strings.TrimSpace(flags.ConfigPath) != "" {
		logging.Debug("configuration loaded", "path", flags.ConfigPath)
	}

	registry, errs := cfg.FontRegistry()
	for _, ferr := range errs {
		logging.Warn("font skipped", "error", ferr)
	}

	form := invoice.Form(resolveDefaultFonts(cfg.Defaults, registry))
	if err := model.Apply(&form, registry); err != nil {
		return Env{}, fmt.Errorf("bootstrap: decorate form: %w", err)
	}

	return Env{
		Config:   cfg,
		Fonts:    registry,
		Form:     form,
		Renderer: pdf.New(pdf.WithFonts(registry)),
	}, nil
}

// resolveDefaultFonts replaces default font names the registry does not know
// with the header and body fallbacks, so the selects preselect the font the
// renderer would use.
func resolveDefaultFonts(d invoice.Defaults, registry *fonts.Registry) invoice.Defaults {
	header := registry.Resolve(d.HeaderFont, fonts.DefaultHeader).Name
	body := registry.Resolve(d.BodyFont, fonts.DefaultBody).Name
	if header != d.HeaderFont || body != d.BodyFont {
		logging.Warn("default font not available",
			"header", d.HeaderFont, "header_used", header,
			"body", d.BodyFont, "body_used", body)
	}
	d.HeaderFont = header
	d.BodyFont = body
	return d
}
