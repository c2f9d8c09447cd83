package tui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
	"github.com/goliatone/go-invoicegen/pkg/model"
)

type stubDriver struct {
	inputs    []string
	textAreas []string
	selectIdx []int
	confirm   []bool
	inputErr  error

	inputPos   int
	textPos    int
	selectPos  int
	confirmPos int

	inputDefaults []string
	textDefaults  []string
	selectConfigs []SelectConfig
	infoMessages  []string
	errorMessages []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputErr != nil {
		return "", s.inputErr
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputDefaults = append(s.inputDefaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	s.textDefaults = append(s.textDefaults, cfg.Default)
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectConfigs = append(s.selectConfigs, cfg)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) Error(_ context.Context, msg string) error {
	s.errorMessages = append(s.errorMessages, msg)
	return nil
}

func invoiceForm(t *testing.T) model.FormModel {
	t.Helper()
	form := invoice.Form(invoice.DefaultValues())
	if err := model.Apply(&form, fonts.NewRegistry()); err != nil {
		t.Fatalf("decorate form: %v", err)
	}
	return form
}

func TestCollect_BuildsRecordFromAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Quote", "USD 10"},
		textAreas: []string{"Me\nMy Co", "  You\n", "A\nB", "X"},
		selectIdx: []int{2, 0},
	}
	c := New(invoiceForm(t), WithPromptDriver(driver))

	got, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := invoice.Record{
		Title:         "Quote",
		SenderDetails: []string{"Me", "My Co"},
		ClientDetails: []string{"You"},
		Items: []invoice.LineItem{
			{Deliverable: "A", Description: "X"},
			{Deliverable: "B", Description: ""},
		},
		Total:      "USD 10",
		HeaderFont: fonts.Courier,
		BodyFont:   fonts.Helvetica,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_PrefillsDefaults(t *testing.T) {
	d := invoice.DefaultValues()
	driver := &stubDriver{
		inputs:    []string{"", ""},
		textAreas: []string{"", "", "", ""},
		selectIdx: []int{0, 1},
	}
	c := New(invoiceForm(t), WithPromptDriver(driver))

	if _, err := c.Collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}

	if diff := cmp.Diff([]string{d.Title, d.Total}, driver.inputDefaults); diff != "" {
		t.Fatalf("input defaults mismatch (-want +got):\n%s", diff)
	}
	if got := driver.textDefaults[0]; got != "Your Name\nYour Company Name\nYour Address, City, Pin Code\nGSTIN: ABCDEFGHIJKLMNO\nBank Name: XYZ Bank\nA/C No: 1234567890\nIFSC: XYZB0001234" {
		t.Fatalf("unexpected sender default %q", got)
	}
	header, body := driver.selectConfigs[0], driver.selectConfigs[1]
	if header.Options[header.DefaultIndex] != fonts.Helvetica {
		t.Fatalf("header font default = %q", header.Options[header.DefaultIndex])
	}
	if body.Options[body.DefaultIndex] != fonts.TimesRoman {
		t.Fatalf("body font default = %q", body.Options[body.DefaultIndex])
	}
}

func TestCollect_BlankAnswersPassThrough(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", ""},
		textAreas: []string{"", "", "", ""},
		selectIdx: []int{0, 0},
	}
	c := New(invoiceForm(t), WithPromptDriver(driver))

	got, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got.Title != "" || got.Total != "" {
		t.Fatalf("expected blank title and total, got %q / %q", got.Title, got.Total)
	}
	if diff := cmp.Diff([]invoice.LineItem{{}}, got.Items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_RetriesInvalidSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{7, 1}}
	form := model.FormModel{Fields: []model.Field{
		{Name: invoice.FieldBodyFont, Type: model.FieldTypeString, Enum: []any{"A", "B"}},
	}}

	got, err := New(form, WithPromptDriver(driver)).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got.BodyFont != "B" {
		t.Fatalf("body font = %q, want B", got.BodyFont)
	}
	if len(driver.errorMessages) != 1 {
		t.Fatalf("expected one selection error, got %v", driver.errorMessages)
	}
}

func TestCollect_AbortIsCancellation(t *testing.T) {
	driver := &stubDriver{inputErr: ErrAborted}
	_, err := New(invoiceForm(t), WithPromptDriver(driver)).Collect(context.Background())
	if !errors.Is(err, invoice.ErrCancelled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestPickDestination(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "old.pdf")
	if err := os.WriteFile(existing, []byte("%PDF"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	fresh := filepath.Join(dir, "new.pdf")
	notes := filepath.Join(dir, "notes")
	if err := os.WriteFile(notes, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	tests := []struct {
		name    string
		driver  *stubDriver
		want    string
		wantErr error
	}{
		{name: "new file", driver: &stubDriver{inputs: []string{" " + fresh + " "}}, want: fresh},
		{name: "blank cancels", driver: &stubDriver{inputs: []string{"  "}}, wantErr: invoice.ErrCancelled},
		{name: "interrupt cancels", driver: &stubDriver{inputErr: ErrAborted}, wantErr: invoice.ErrCancelled},
		{name: "overwrite accepted", driver: &stubDriver{inputs: []string{existing}, confirm: []bool{true}}, want: existing},
		{name: "extension applied before overwrite check", driver: &stubDriver{inputs: []string{filepath.Join(dir, "old")}, confirm: []bool{true}}, want: existing},
		{name: "file without extension is not the target", driver: &stubDriver{inputs: []string{notes}}, want: notes + ".pdf"},
		{name: "overwrite declined asks again", driver: &stubDriver{inputs: []string{existing, fresh}, confirm: []bool{false}}, want: fresh},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(model.FormModel{}, WithPromptDriver(tc.driver))
			got, err := c.PickDestination(context.Background(), "invoice.pdf")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("pick destination: %v", err)
			}
			if got != tc.want {
				t.Fatalf("path = %q, want %q", got, tc.want)
			}
			if tc.driver.confirmPos != len(tc.driver.confirm) {
				t.Fatalf("confirmations asked = %d, want %d", tc.driver.confirmPos, len(tc.driver.confirm))
			}
		})
	}
}

func TestNotifications_UseTheme(t *testing.T) {
	driver := &stubDriver{}
	c := New(model.FormModel{}, WithPromptDriver(driver), WithTheme(Theme{InfoPrefix: "ok: ", ErrorPrefix: "error: "}))

	_ = c.Success(context.Background(), "done")
	_ = c.Failure(context.Background(), "broken")

	if diff := cmp.Diff([]string{"ok: done"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"error: broken"}, driver.errorMessages); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsDriver_AcceptsDefaults(t *testing.T) {
	var out bytes.Buffer
	c := New(invoiceForm(t), WithPromptDriver(NewDefaultsDriver(&out)))

	got, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := invoice.FromValues(invoice.DefaultValues().Values())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
	if err := c.Success(context.Background(), "done"); err != nil {
		t.Fatalf("success: %v", err)
	}
	if out.String() != "Invoice Generator\ndone\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestCollect_PrefillTakesPrecedenceOverDefaults(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}, textAreas: []string{"", "", "", ""}, selectIdx: []int{0, 0}}
	c := New(invoiceForm(t), WithPromptDriver(driver), WithValues(map[string]any{
		invoice.FieldTitle:      "PROFORMA",
		invoice.FieldHeaderFont: fonts.Courier,
	}))

	if _, err := c.Collect(context.Background()); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if driver.inputDefaults[0] != "PROFORMA" {
		t.Fatalf("title default = %q", driver.inputDefaults[0])
	}
	header := driver.selectConfigs[0]
	if header.Options[header.DefaultIndex] != fonts.Courier {
		t.Fatalf("header default = %q", header.Options[header.DefaultIndex])
	}
}
