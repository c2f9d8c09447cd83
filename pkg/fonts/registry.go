package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-invoicegen/pkg/model"
)

// Names of the built-in PDF core fonts.
const (
	Helvetica  = "Helvetica"
	TimesRoman = "Times-Roman"
	Courier    = "Courier"
)

// Fallbacks used when a requested font is not registered.
const (
	DefaultHeader = Helvetica
	DefaultBody   = TimesRoman
)

// OptionsSource is the Metadata["options.source"] value that asks the
// registry to fill a field's Enum with the registered font names.
const OptionsSource = "fonts"

// Font describes a selectable typeface. Core fonts ship with every PDF reader
// and carry no files; custom fonts point at TrueType files on disk.
type Font struct {
	// Name is the user-facing identifier shown in selects.
	Name string
	// Family is the family name handed to the PDF writer.
	Family string
	// Regular is the TTF path for the regular style. Empty for core fonts.
	Regular string
	// Bold is the TTF path for the bold style. Falls back to Regular.
	Bold string
}

// Core reports whether the font is one of the built-in PDF fonts.
func (f Font) Core() bool {
	return f.Regular == ""
}

// BoldFile returns the file used for the bold style of a custom font.
func (f Font) BoldFile() string {
	if f.Bold != "" {
		return f.Bold
	}
	return f.Regular
}

var coreFonts = []Font{
	{Name: Helvetica, Family: "Helvetica"},
	{Name: TimesRoman, Family: "Times"},
	{Name: Courier, Family: "Courier"},
}

// Registry stores fonts by name, preserving registration order for display.
// A registry built with NewRegistry always knows the core fonts.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]Font
	order []string
}

// NewRegistry creates a registry seeded with the core fonts.
func NewRegistry() *Registry {
	r := &Registry{fonts: make(map[string]Font, len(coreFonts))}
	for _, font := range coreFonts {
		r.fonts[font.Name] = font
		r.order = append(r.order, font.Name)
	}
	return r
}

// Register adds a custom TrueType font. The regular file must exist; the bold
// file is optional. Duplicate names return an error.
func (r *Registry) Register(font Font) error {
	name := strings.TrimSpace(font.Name)
	if name == "" {
		return fmt.Errorf("fonts: font name is required")
	}
	if strings.TrimSpace(font.Regular) == "" {
		return fmt.Errorf("fonts: font %q: regular file is required", name)
	}

	regular, err := checkFile(font.Regular)
	if err != nil {
		return fmt.Errorf("fonts: font %q: %w", name, err)
	}
	font.Regular = regular
	if font.Bold != "" {
		bold, err := checkFile(font.Bold)
		if err != nil {
			return fmt.Errorf("fonts: font %q: %w", name, err)
		}
		font.Bold = bold
	}
	font.Name = name
	if font.Family == "" {
		font.Family = name
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fonts[name]; exists {
		return fmt.Errorf("fonts: font %q already registered", name)
	}
	r.fonts[name] = font
	r.order = append(r.order, name)
	return nil
}

// Get retrieves a font by name.
func (r *Registry) Get(name string) (Font, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	font, ok := r.fonts[name]
	return font, ok
}

// Has reports whether a font is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Resolve returns the named font, or the fallback when the name is unknown.
// If the fallback is unknown too, Helvetica is used.
func (r *Registry) Resolve(name, fallback string) Font {
	if font, ok := r.Get(name); ok {
		return font
	}
	if font, ok := r.Get(fallback); ok {
		return font
	}
	return coreFonts[0]
}

// Names lists registered fonts, core fonts first, then custom fonts in
// registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Decorate implements model.Decorator, filling the Enum of every field that
// asks for font options.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	names := r.Names()
	for idx, field := range form.Fields {
		if field.Metadata[model.MetadataOptionsSource] != OptionsSource {
			continue
		}
		enum := make([]any, len(names))
		for i, name := range names {
			enum[i] = name
		}
		form.Fields[idx].Enum = enum
	}
	return nil
}

func checkFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", abs)
	}
	return abs, nil
}
