package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/Rishikeshk9/astudio/internal/domain"
	"github.com/Rishikeshk9/astudio/internal/view"
)

// RenderTablePDF renders the currently visible table as a landscape A4 PDF,
// one row per filtered record.
func RenderTablePDF(title string, table view.Table) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	colW := usable / float64(len(table.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for _, col := range table.Columns {
		pdf.CellFormat(colW, 8, col.Label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for _, col := range table.Columns {
			pdf.CellFormat(colW, 7, view.CellText(row[col.Key]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, fmt.Sprintf("%d of %d records shown", len(table.Rows), table.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, domain.InternalError{Msg: "failed to render PDF", Err: err}
	}
	return buf.Bytes(), nil
}
