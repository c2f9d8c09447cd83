package invoice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCancelled signals that the user dropped the request (closed a prompt or
// dismissed the destination picker). It is not a failure and must not be
// reported.
var ErrCancelled = errors.New("invoice: cancelled")

// LineItem is one table row, aligned by position across the deliverable and
// description lists.
type LineItem struct {
	Deliverable string `json:"deliverable"`
	Description string `json:"description"`
}

// Record is the snapshot of the invoice form taken when generation starts.
// Values are carried verbatim; the renderer decides presentation.
type Record struct {
	Title         string     `json:"title"`
	SenderDetails []string   `json:"senderDetails"`
	ClientDetails []string   `json:"clientDetails"`
	Items         []LineItem `json:"items"`
	Total         string     `json:"total"`
	HeaderFont    string     `json:"headerFont"`
	BodyFont      string     `json:"bodyFont"`
}

// FromValues builds a Record from collected form values keyed by field name.
// Missing keys read as empty strings. Multi-line fields are trimmed of
// surrounding whitespace and split into lines; nothing else is validated.
func FromValues(values map[string]any) Record {
	return Record{
		Title:         stringValue(values, FieldTitle),
		SenderDetails: SplitLines(strings.TrimSpace(stringValue(values, FieldSenderDetails))),
		ClientDetails: SplitLines(strings.TrimSpace(stringValue(values, FieldClientDetails))),
		Items: Pair(
			SplitLines(strings.TrimSpace(stringValue(values, FieldDeliverables))),
			SplitLines(strings.TrimSpace(stringValue(values, FieldDescriptions))),
		),
		Total:      stringValue(values, FieldTotal),
		HeaderFont: stringValue(values, FieldHeaderFont),
		BodyFont:   stringValue(values, FieldBodyFont),
	}
}

// SplitLines splits text on newlines, dropping carriage returns. Empty text
// yields a single empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Pair aligns deliverables and descriptions by position. The shorter list is
// padded with empty strings, so the result has max(len(a), len(b)) items.
func Pair(deliverables, descriptions []string) []LineItem {
	n := max(len(deliverables), len(descriptions))
	items := make([]LineItem, n)
	for i := range items {
		if i < len(deliverables) {
			items[i].Deliverable = deliverables[i]
		}
		if i < len(descriptions) {
			items[i].Description = descriptions[i]
		}
	}
	return items
}

func stringValue(values map[string]any, key string) string {
	raw, ok := values[key]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []any:
		lines := make([]string, len(v))
		for i, item := range v {
			lines[i] = fmt.Sprint(item)
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(v)
	}
}
