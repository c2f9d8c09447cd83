package pdf

import (
	"strings"

	"github.com/goliatone/go-invoicegen/pkg/fonts"
	"github.com/goliatone/go-invoicegen/pkg/invoice"
)

// Page geometry in points, A4 portrait. Vertical positions are measured from
// the top edge of the page.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	inch = 72.0

	titleSize     = 36.0
	titleBaseline = 70.0

	bodySize    = 10.0
	bodyLeading = 12.0
	blockTop    = 150.0
	senderX     = inch
	clientInset = 3.5 * inch

	tableX       = inch
	tableTop     = 300.0
	cellPadding  = 5.0
	gridWidth    = 1.0
	tableColumns = 2
)

// Table captions.
const (
	HeaderDeliverables = "Deliverables"
	HeaderInference    = "Inference"
	TotalLabel         = "TOTAL PAYABLE:"
)

var (
	headerFill = Color{R: 0xEE, G: 0xEE, B: 0xEE}
	totalFill  = Color{R: 0xDD, G: 0xDD, B: 0xDD}
	gridColor  = Color{R: 0xCC, G: 0xCC, B: 0xCC}
	textColor  = Color{}
)

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// Face selects a font, style and size.
type Face struct {
	Font fonts.Font
	Bold bool
	Size float64
}

// Style returns the fpdf style string for the face.
func (f Face) Style() string {
	if f.Bold {
		return "B"
	}
	return ""
}

// Measurer reports the rendered width of text. The fpdf document implements
// it once the faces' fonts are loaded; tests substitute fixed-width metrics.
type Measurer interface {
	StringWidth(face Face, text string) float64
}

// TextLine is a line of text positioned by its baseline.
type TextLine struct {
	X, Y float64
	Text string
}

// TextBlock is a group of lines sharing one face.
type TextBlock struct {
	Face  Face
	Lines []TextLine
}

// RowKind tells header, item and total rows apart.
type RowKind int

const (
	RowHeader RowKind = iota
	RowItem
	RowTotal
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowTotal:
		return "total"
	default:
		return "item"
	}
}

// Cell holds the source text of a table cell and its wrapped lines.
type Cell struct {
	Text  string
	Lines []string
	Face  Face
}

// Row is one table row. Fill is nil for unshaded rows.
type Row struct {
	Kind   RowKind
	Cells  []Cell
	Height float64
	Fill   *Color
}

// Table is the line-item grid. Y is the top edge.
type Table struct {
	X, Y      float64
	ColWidths []float64
	Rows      []Row
	Height    float64
	Padding   float64
	Leading   float64
	Grid      Color
	GridWidth float64
	TextColor Color
}

// Width is the sum of the column widths.
func (t Table) Width() float64 {
	var w float64
	for _, c := range t.ColWidths {
		w += c
	}
	return w
}

// Layout is the fully positioned page. It is a pure function of the record,
// the font registry and the measurer.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	HeaderFont fonts.Font
	BodyFont   fonts.Font
	Title      TextBlock
	Sender     TextBlock
	Client     TextBlock
	Table      Table
}

// ResolveFonts picks the header and body fonts for a record, substituting the
// fixed defaults for names the registry does not know.
func ResolveFonts(rec invoice.Record, registry *fonts.Registry) (header, body fonts.Font) {
	if registry == nil {
		registry = fonts.NewRegistry()
	}
	header = registry.Resolve(rec.HeaderFont, fonts.DefaultHeader)
	body = registry.Resolve(rec.BodyFont, fonts.DefaultBody)
	return header, body
}

// BuildLayout positions every element of the invoice page.
//
// Positions are fixed: the address blocks start at the same baseline and the
// table's top edge is pinned regardless of how many address lines precede it.
// Long inputs can therefore overlap; that is a known limitation of the fixed
// layout.
func BuildLayout(rec invoice.Record, registry *fonts.Registry, m Measurer) Layout {
	header, body := ResolveFonts(rec, registry)

	l := Layout{
		PageWidth:  PageWidth,
		PageHeight: PageHeight,
		HeaderFont: header,
		BodyFont:   body,
	}

	titleFace := Face{Font: header, Bold: true, Size: titleSize}
	title := strings.ToUpper(rec.Title)
	l.Title = TextBlock{
		Face: titleFace,
		Lines: []TextLine{{
			X:    (PageWidth - m.StringWidth(titleFace, title)) / 2,
			Y:    titleBaseline,
			Text: title,
		}},
	}

	bodyFace := Face{Font: body, Size: bodySize}
	l.Sender = stackLines(bodyFace, senderX, blockTop, rec.SenderDetails)
	l.Client = stackLines(bodyFace, PageWidth-clientInset, blockTop, rec.ClientDetails)
	l.Table = buildTable(rec, header, body, m)
	return l
}

func stackLines(face Face, x, top float64, lines []string) TextBlock {
	block := TextBlock{Face: face, Lines: make([]TextLine, len(lines))}
	for i, line := range lines {
		block.Lines[i] = TextLine{X: x, Y: top + float64(i)*bodyLeading, Text: line}
	}
	return block
}

func buildTable(rec invoice.Record, header, body fonts.Font, m Measurer) Table {
	colWidth := (PageWidth - 2*inch) / tableColumns
	t := Table{
		X:         tableX,
		Y:         tableTop,
		ColWidths: []float64{colWidth, colWidth},
		Padding:   cellPadding,
		Leading:   bodyLeading,
		Grid:      gridColor,
		GridWidth: gridWidth,
		TextColor: textColor,
	}

	headerFace := Face{Font: header, Bold: true, Size: bodySize}
	itemFace := Face{Font: body, Size: bodySize}
	totalFace := Face{Font: body, Bold: true, Size: bodySize}

	rows := make([]Row, 0, len(rec.Items)+2)
	rows = append(rows, t.row(RowHeader, headerFace, &headerFill, m, HeaderDeliverables, HeaderInference))
	for _, item := range rec.Items {
		rows = append(rows, t.row(RowItem, itemFace, nil, m, item.Deliverable, item.Description))
	}
	rows = append(rows, t.row(RowTotal, totalFace, &totalFill, m, TotalLabel, rec.Total))

	t.Rows = rows
	for _, row := range rows {
		t.Height += row.Height
	}
	return t
}

func (t Table) row(kind RowKind, face Face, fill *Color, m Measurer, texts ...string) Row {
	row := Row{Kind: kind, Cells: make([]Cell, len(texts))}
	if fill != nil {
		c := *fill
		row.Fill = &c
	}

	maxLines := 0
	for i, text := range texts {
		lines := wrapText(m, face, text, t.ColWidths[i]-2*t.Padding)
		row.Cells[i] = Cell{Text: text, Lines: lines, Face: face}
		maxLines = max(maxLines, len(lines))
	}
	row.Height = float64(maxLines)*t.Leading + 2*t.Padding
	return row
}
