package invoice

import (
	"strings"

	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/model"
)

// Field names of the invoice form.
const (
	FieldTitle         = "title"
	FieldSenderDetails = "sender_details"
	FieldClientDetails = "client_details"
	FieldDeliverables  = "deliverables"
	FieldDescriptions  = "descriptions"
	FieldTotal         = "total"
	FieldHeaderFont    = "header_font"
	FieldBodyFont      = "body_font"
)

// FormID identifies the invoice form model.
const FormID = "invoice"

// Defaults pre-populates the invoice form. Multi-line fields hold one entry
// per line.
type Defaults struct {
	Title         string   `yaml:"title" json:"title"`
	SenderDetails []string `yaml:"sender_details" json:"senderDetails"`
	ClientDetails []string `yaml:"client_details" json:"clientDetails"`
	Deliverables  []string `yaml:"deliverables" json:"deliverables"`
	Descriptions  []string `yaml:"descriptions" json:"descriptions"`
	Total         string   `yaml:"total" json:"total"`
	HeaderFont    string   `yaml:"header_font" json:"headerFont"`
	BodyFont      string   `yaml:"body_font" json:"bodyFont"`
}

// DefaultValues returns the example invoice shown on first launch.
func DefaultValues() Defaults {
	return Defaults{
		Title: "SALES INVOICE",
		SenderDetails: []string{
			"Your Name",
			"Your Company Name",
			"Your Address, City, Pin Code",
			"GSTIN: ABCDEFGHIJKLMNO",
			"Bank Name: XYZ Bank",
			"A/C No: 1234567890",
			"IFSC: XYZB0001234",
		},
		ClientDetails: []string{
			"Client Name",
			"Client Company",
			"Client Address, City, Pin Code",
			"GSTN: PQRSTUVWXY123Z",
			"PAN: ABCDE1234F",
			"Client A/C: 0987654321",
		},
		Deliverables: []string{
			"Consulting Services (Jan 2024)",
			"Project Management (Feb 2024)",
			"Software Development (Mar 2024)",
			"Documentation & Training",
		},
		Descriptions: []string{
			"Detailed consultation on project strategy.",
			"Oversight and coordination of project tasks.",
			"Development of custom CRM module.",
			"User manuals and hands-on training sessions.",
		},
		Total:      "INR 1,50,000.00",
		HeaderFont: fonts.DefaultHeader,
		BodyFont:   fonts.DefaultBody,
	}
}

// Values flattens the defaults into the map shape collectors produce.
func (d Defaults) Values() map[string]any {
	return map[string]any{
		FieldTitle:         d.Title,
		FieldSenderDetails: strings.Join(d.SenderDetails, "\n"),
		FieldClientDetails: strings.Join(d.ClientDetails, "\n"),
		FieldDeliverables:  strings.Join(d.Deliverables, "\n"),
		FieldDescriptions:  strings.Join(d.Descriptions, "\n"),
		FieldTotal:         d.Total,
		FieldHeaderFont:    d.HeaderFont,
		FieldBodyFont:      d.BodyFont,
	}
}

// Form builds the invoice form model prefilled with d. Font fields are left
// without options; run the font registry as a decorator to fill them.
func Form(d Defaults) model.FormModel {
	values := d.Values()
	fontOptions := map[string]string{model.MetadataOptionsSource: fonts.OptionsSource}

	return model.FormModel{
		ID:    FormID,
		Title: "Invoice Generator",
		Fields: []model.Field{
			{Name: FieldTitle, Type: model.FieldTypeString, Label: "Invoice Title", Default: values[FieldTitle]},
			{
				Name:        FieldSenderDetails,
				Type:        model.FieldTypeString,
				Format:      model.FormatTextArea,
				Label:       "My Details (Name, Bank A/C, Branch etc.)",
				Description: "One detail per line.",
				Default:     values[FieldSenderDetails],
			},
			{
				Name:        FieldClientDetails,
				Type:        model.FieldTypeString,
				Format:      model.FormatTextArea,
				Label:       "Client Details (Name, GSTN, PAN, A/C No etc.)",
				Description: "One detail per line.",
				Default:     values[FieldClientDetails],
			},
			{
				Name:    FieldDeliverables,
				Type:    model.FieldTypeString,
				Format:  model.FormatTextArea,
				Label:   "Deliverables (one per line)",
				Default: values[FieldDeliverables],
			},
			{
				Name:    FieldDescriptions,
				Type:    model.FieldTypeString,
				Format:  model.FormatTextArea,
				Label:   "Inference/Description (one per line, matching deliverables)",
				Default: values[FieldDescriptions],
			},
			{Name: FieldTotal, Type: model.FieldTypeString, Label: "Total Amount Payable", Default: values[FieldTotal]},
			{Name: FieldHeaderFont, Type: model.FieldTypeString, Label: "Header Font", Default: values[FieldHeaderFont], Metadata: fontOptions},
			{Name: FieldBodyFont, Type: model.FieldTypeString, Label: "Body Font", Default: values[FieldBodyFont], Metadata: fontOptions},
		},
	}
}
