package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFieldColWidth = 60
	pdfValueColWidth = 115
	pdfLineHeight    = 5.5
)

// PDF renders the report as a two-column table with wrapped cells,
// followed by the flags section and the norms source note.
func PDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("HealthAssist — Personal Health Report"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, row := range doc.Rows {
		header := i == 0
		writeTableRow(pdf, tr, row[0], row[1], header)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Flags & Interpretations:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9.5)
	for _, f := range doc.Flags {
		pdf.MultiCell(0, pdfLineHeight, tr(f), "", "L", false)
		pdf.Ln(1)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Norms & Sources:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9.5)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.SourceNote), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTableRow emits one wrapped two-column row. Both cells render as
// MultiCells from the same baseline; the row advances to the taller of
// the two.
func writeTableRow(pdf *fpdf.Fpdf, tr func(string) string, field, value string, header bool) {
	if header {
		pdf.SetFont("Helvetica", "B", 9.5)
		pdf.SetFillColor(242, 242, 242)
	} else {
		pdf.SetFont("Helvetica", "", 9.5)
		pdf.SetFillColor(255, 255, 255)
	}

	left, _, _, _ := pdf.GetMargins()
	x, y := pdf.GetXY()

	pdf.MultiCell(pdfFieldColWidth, pdfLineHeight, tr(field), "1", "L", header)
	fieldBottom := pdf.GetY()

	pdf.SetXY(x+pdfFieldColWidth, y)
	pdf.MultiCell(pdfValueColWidth, pdfLineHeight, tr(value), "1", "L", header)
	valueBottom := pdf.GetY()

	bottom := fieldBottom
	if valueBottom > bottom {
		bottom = valueBottom
	}
	pdf.SetXY(left, bottom)
}
