package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-select prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// TextAreaConfig configures a multi-line text prompt.
type TextAreaConfig struct {
	Message string
	Default string
	Help    string
}

// PromptDriver abstracts the actual TUI implementation so collection logic can
// be tested without a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Info(ctx context.Context, msg string) error
	Error(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out    io.Writer
	errOut io.Writer
}

func newSurveyDriver() PromptDriver {
	return &surveyDriver{out: os.Stdout, errOut: os.Stderr}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return indexOf(cfg.Options, out), nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	return writeLine(ctx, d.out, msg)
}

func (d *surveyDriver) Error(ctx context.Context, msg string) error {
	return writeLine(ctx, d.errOut, msg)
}

// defaultsDriver answers every prompt with its default. It backs
// non-interactive runs.
type defaultsDriver struct {
	out io.Writer
}

// NewDefaultsDriver returns a PromptDriver that never reads input: prompts
// resolve to their defaults and messages are written to out.
func NewDefaultsDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &defaultsDriver{out: out}
}

func (d *defaultsDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return cfg.Default, ctx.Err()
}

func (d *defaultsDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	return cfg.Default, ctx.Err()
}

func (d *defaultsDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if cfg.DefaultIndex < 0 || cfg.DefaultIndex >= len(cfg.Options) {
		return 0, ctx.Err()
	}
	return cfg.DefaultIndex, ctx.Err()
}

func (d *defaultsDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	return cfg.Default, ctx.Err()
}

func (d *defaultsDriver) Info(ctx context.Context, msg string) error {
	return writeLine(ctx, d.out, msg)
}

func (d *defaultsDriver) Error(ctx context.Context, msg string) error {
	return writeLine(ctx, d.out, msg)
}

func writeLine(ctx context.Context, w io.Writer, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}
