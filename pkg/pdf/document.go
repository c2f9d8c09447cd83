package pdf

import (
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/goliatone/go-invoicegen/pkg/fonts"
)

// document wraps an fpdf page with the font bookkeeping the layout needs. It
// implements Measurer, so widths are computed with the same metrics used to
// draw.
type document struct {
	pdf    *fpdf.Fpdf
	cp1252 func(string) string
	loaded map[string]bool
}

func newDocument(created time.Time, title string) *document {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created)
	pdf.SetCreator("go-invoicegen", false)
	if title = strings.TrimSpace(title); title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.AddPage()

	return &document{
		pdf:    pdf,
		cp1252: pdf.UnicodeTranslatorFromDescriptor(""),
		loaded: make(map[string]bool),
	}
}

// load embeds a custom font in both styles. Core fonts need no loading.
func (d *document) load(font fonts.Font) {
	if font.Core() || d.loaded[font.Family] {
		return
	}
	d.pdf.AddUTF8Font(font.Family, "", font.Regular)
	d.pdf.AddUTF8Font(font.Family, "B", font.BoldFile())
	d.loaded[font.Family] = true
}

// encode converts UTF-8 text for core fonts, which only cover cp1252.
func (d *document) encode(font fonts.Font, text string) string {
	if font.Core() {
		return d.cp1252(text)
	}
	return text
}

func (d *document) setFace(face Face) {
	d.pdf.SetFont(face.Font.Family, face.Style(), face.Size)
}

func (d *document) StringWidth(face Face, text string) float64 {
	d.setFace(face)
	return d.pdf.GetStringWidth(d.encode(face.Font, text))
}

func (d *document) draw(l Layout) {
	d.pdf.SetTextColor(l.Table.TextColor.R, l.Table.TextColor.G, l.Table.TextColor.B)
	d.text(l.Title)
	d.text(l.Sender)
	d.text(l.Client)
	d.table(l.Table)
}

func (d *document) text(block TextBlock) {
	if len(block.Lines) == 0 {
		return
	}
	d.setFace(block.Face)
	for _, line := range block.Lines {
		d.pdf.Text(line.X, line.Y, d.encode(block.Face.Font, line.Text))
	}
}

func (d *document) table(t Table) {
	d.pdf.SetLineWidth(t.GridWidth)
	d.pdf.SetDrawColor(t.Grid.R, t.Grid.G, t.Grid.B)

	y := t.Y
	for _, row := range t.Rows {
		style := "D"
		if row.Fill != nil {
			d.pdf.SetFillColor(row.Fill.R, row.Fill.G, row.Fill.B)
			style = "FD"
		}

		x := t.X
		for i, cell := range row.Cells {
			width := t.ColWidths[i]
			d.pdf.Rect(x, y, width, row.Height, style)

			d.setFace(cell.Face)
			for j, line := range cell.Lines {
				baseline := y + t.Padding + cell.Face.Size + float64(j)*t.Leading
				d.pdf.Text(x+t.Padding, baseline, d.encode(cell.Face.Font, line))
			}
			x += width
		}
		y += row.Height
	}
}
