package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/model"
	"github.com/goliatone/go-invoicegen/pkg/pdf"
)

// Collector walks an invoice form model in the terminal, snapshots the answers
// into an invoice.Record and reports the outcome of a run.
type Collector struct {
	form    model.FormModel
	driver  PromptDriver
	theme   Theme
	prefill map[string]any
}

// New constructs a collector for form. Without WithPromptDriver the survey
// driver is used.
func New(form model.FormModel, options ...Option) *Collector {
	c := &Collector{form: form}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = newSurveyDriver()
	}
	return c
}

// Collect prompts every field in order, prefilled with its default, and
// returns the snapshot. Answers are not validated.
func (c *Collector) Collect(ctx context.Context) (invoice.Record, error) {
	if ctx == nil {
		return invoice.Record{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return invoice.Record{}, err
	}

	if c.form.Title != "" {
		if err := c.driver.Info(ctx, c.form.Title); err != nil {
			return invoice.Record{}, err
		}
	}

	state := NewState(c.prefill)
	for _, field := range c.form.Fields {
		if err := c.promptField(ctx, field, state); err != nil {
			return invoice.Record{}, err
		}
	}
	return invoice.FromValues(state.Values()), nil
}

func (c *Collector) promptField(ctx context.Context, field model.Field, state *State) error {
	if len(field.Enum) > 0 {
		return c.promptEnum(ctx, field, state)
	}
	return c.promptString(ctx, field, state)
}

func (c *Collector) promptString(ctx context.Context, field model.Field, state *State) error {
	label := displayLabel(field)
	help := displayHelp(field)
	defaultVal := defaultStringValue(state, field)

	var (
		response string
		err      error
	)
	if field.IsTextArea() {
		response, err = c.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: defaultVal,
			Help:    help,
		})
	} else {
		response, err = c.driver.Input(ctx, InputConfig{
			Message: label,
			Default: defaultVal,
			Help:    help,
		})
	}
	if err != nil {
		return err
	}
	state.SetValue(field.Name, response)
	return nil
}

func (c *Collector) promptEnum(ctx context.Context, field model.Field, state *State) error {
	label := displayLabel(field)
	help := displayHelp(field)
	options := stringifyEnum(field.Enum)
	defaultIdx := indexOf(options, defaultStringValue(state, field))

	for {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			if err := c.driver.Error(ctx, fmt.Sprintf("Invalid %s selection", field.Name)); err != nil {
				return err
			}
			continue
		}
		state.SetValue(field.Name, options[idx])
		return nil
	}
}

// PickDestination asks where to save the invoice, suggesting suggested. The
// answer is returned with the .pdf extension applied. A blank answer or an
// interrupt cancels the run with invoice.ErrCancelled. Declining to overwrite
// an existing file asks again.
func (c *Collector) PickDestination(ctx context.Context, suggested string) (string, error) {
	for {
		path, err := c.driver.Input(ctx, InputConfig{
			Message: "Save invoice as",
			Default: suggested,
			Help:    "Path of the PDF file to write. Leave blank to cancel.",
		})
		if err != nil {
			return "", err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return "", invoice.ErrCancelled
		}

		dest := path
		if normalized, err := pdf.NormalizePath(path); err == nil {
			dest = normalized
		}
		info, err := os.Stat(dest)
		if err != nil || info.IsDir() {
			return dest, nil
		}
		overwrite, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s already exists. Replace it?", dest),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if overwrite {
			return dest, nil
		}
		suggested = path
	}
}

// Success reports a completed run.
func (c *Collector) Success(ctx context.Context, msg string) error {
	return c.driver.Info(ctx, c.theme.InfoPrefix+msg)
}

// Failure reports a failed run.
func (c *Collector) Failure(ctx context.Context, msg string) error {
	return c.driver.Error(ctx, c.theme.ErrorPrefix+msg)
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}

func stringifyEnum(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func defaultStringValue(state *State, field model.Field) string {
	if v, ok := state.GetValue(field.Name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if s, ok := field.Default.(string); ok {
		return s
	}
	return ""
}
