// Package export renders laid-out report documents to PDF and Excel
// files for download.
package export

import (
	"fmt"
	"os"

	"github.com/buildcrew/construction_mgmt_app/internal/core/domain"
	portssvc "github.com/buildcrew/construction_mgmt_app/internal/core/ports/services"
	"github.com/go-pdf/fpdf"
)

// PDFRenderer writes report documents as landscape A4 PDF tables.
type PDFRenderer struct{}

func NewPDFRenderer() portssvc.DocumentRenderer {
	return &PDFRenderer{}
}

var _ portssvc.DocumentRenderer = (*PDFRenderer)(nil)

func (r *PDFRenderer) Render(doc domain.ReportDocument, path string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")

	if doc.DateRange != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, doc.DateRange, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(doc.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range doc.Columns {
		pdf.CellFormat(colWidth, 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range doc.Rows {
		for i := 0; i < len(doc.Columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if doc.Summary != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 8, doc.Summary, "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		// Never leave a partial file behind.
		_ = os.Remove(path)
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}
