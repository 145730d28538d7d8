package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

const (
	pdfIDWidth    = 30.0
	pdfNameWidth  = 42.0
	pdfMoneyWidth = 16.0
	pdfRowHeight  = 6.0
	pdfHeadHeight = 10.0
)

// PDF renders the grid as a landscape A4 document. Day columns share the
// page width left after the fixed identifier, name and money columns.
// All text passes through the transliteration table.
func PDF(g domain.Grid, companyName string) (*bytes.Buffer, error) {
	if len(g.Rows) == 0 {
		return nil, ErrEmptyGrid
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(8, 10, 8)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	usable := pageW - left - right
	fixed := pdfIDWidth + pdfNameWidth + 3*pdfMoneyWidth
	dayW := (usable - fixed) / float64(g.DaysInMonth)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, Transliterate(companyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	subtitle := fmt.Sprintf("%s - %s %d Puantaj Cetveli", g.Region.Name, MonthName(g.Month.Month()), g.Month.Year())
	pdf.CellFormat(0, 6, Transliterate(subtitle), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	drawHeader := func() {
		pdf.SetFillColor(217, 217, 217)
		// Wide identifying columns: one line, larger type.
		pdf.SetFont("Arial", "B", 7)
		pdf.CellFormat(pdfIDWidth, pdfHeadHeight, "T.C. Kimlik No", "1", 0, "C", true, 0, "")
		pdf.CellFormat(pdfNameWidth, pdfHeadHeight, Transliterate("Adı Soyadı"), "1", 0, "C", true, 0, "")
		pdf.SetFont("Arial", "B", 6)
		for d := 1; d <= g.DaysInMonth; d++ {
			pdf.CellFormat(dayW, pdfHeadHeight, fmt.Sprintf("%d", d), "1", 0, "C", true, 0, "")
		}
		// Metric columns: two lines, smaller type, so they fit.
		pdf.SetFont("Arial", "B", 5)
		for _, label := range []string{"Günlük\nÜcret", "Yol\nYardımı", "Araç Sevk\nÜcreti"} {
			twoLineCell(pdf, pdfMoneyWidth, pdfHeadHeight, Transliterate(label))
		}
		pdf.Ln(pdfHeadHeight)
	}
	drawHeader()

	for _, row := range g.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-bottom {
			pdf.AddPage()
			drawHeader()
		}

		pdf.SetFont("Arial", "", 6)
		pdf.CellFormat(pdfIDWidth, pdfRowHeight, row.Employee.NationalID, "1", 0, "C", false, 0, "")
		pdf.CellFormat(pdfNameWidth, pdfRowHeight, Transliterate(row.Employee.Name), "1", 0, "L", false, 0, "")

		merged := 0
		if row.PreHire != nil {
			merged = row.PreHire.Days
			r, gc, b, _ := printRGB(row.PreHire.Color)
			pdf.SetFillColor(r, gc, b)
			pdf.CellFormat(dayW*float64(merged), pdfRowHeight, Transliterate(row.PreHire.Label), "1", 0, "C", true, 0, "")
		}
		for d := merged + 1; d <= g.DaysInMonth; d++ {
			ac := row.Cells[d-1]
			fill := false
			if r, gc, b, ok := printRGB(ac.Color); ok {
				pdf.SetFillColor(r, gc, b)
				fill = true
			}
			pdf.CellFormat(dayW, pdfRowHeight, Transliterate(ac.Symbol), "1", 0, "C", fill, 0, "")
		}

		for _, v := range []*float64{row.DailyWage, row.RoadAllowance, row.DrivingPay} {
			text := ""
			if v != nil {
				text = fmt.Sprintf("%.2f", *v)
			}
			pdf.CellFormat(pdfMoneyWidth, pdfRowHeight, text, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}

	if pdf.Err() {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// twoLineCell draws a bordered cell whose text wraps onto two lines,
// leaving the cursor to the right of the cell like CellFormat does.
func twoLineCell(pdf *gofpdf.Fpdf, w, h float64, text string) {
	x, y := pdf.GetXY()
	pdf.CellFormat(w, h, "", "1", 0, "C", true, 0, "")
	lineH := h / 3
	pdf.SetXY(x, y+lineH/2)
	pdf.MultiCell(w, lineH, text, "", "C", false)
	pdf.SetXY(x+w, y)
}
