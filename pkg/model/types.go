package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString FieldType = "string"
)

// Formats understood by collectors when choosing an input widget.
const (
	FormatTextArea = "textarea"
)

// Metadata keys shared between form builders and decorators.
const (
	MetadataOptionsSource = "options.source"
)

// Field models an individual input inside a form. Struct fields are annotated
// so collectors can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Format      string            `json:"format,omitempty"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Enum        []any             `json:"enum,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// IsTextArea reports whether the field collects multi-line text.
func (f Field) IsTextArea() bool {
	return f.Format == FormatTextArea
}

// FormModel is the top-level representation collectors consume.
type FormModel struct {
	ID       string            `json:"id"`
	Title    string            `json:"title,omitempty"`
	Fields   []Field           `json:"fields"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Field returns the field with the given name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
