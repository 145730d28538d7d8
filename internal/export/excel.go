package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

const sheetName = "Puantaj"

// Excel renders the grid as a spreadsheet: a two-row company/region
// header merged across all columns, a bold column header, one row per
// employee with per-cell fills from the print palette, and money columns
// as numeric cells with a currency format.
func Excel(g domain.Grid, companyName string) (*excelize.File, error) {
	if len(g.Rows) == 0 {
		return nil, ErrEmptyGrid
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	totalCols := 2 + g.DaysInMonth + 3
	lastCol, _ := excelize.ColumnNumberToName(totalCols)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	dayStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	moneyFmt := `#,##0.00" ₺"`
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})

	fillStyles := make(map[domain.CellColor]int)
	for color := range printPalette {
		hex, _ := printHex(color)
		id, _ := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{hex}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		fillStyles[color] = id
	}

	// Header block: company on row 1, region and month on row 2, both
	// merged across the full table width.
	_ = f.SetCellValue(sheetName, "A1", companyName)
	_ = f.MergeCell(sheetName, "A1", lastCol+"1")
	_ = f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)
	_ = f.SetRowHeight(sheetName, 1, 24)

	subtitle := fmt.Sprintf("%s — %s %d Puantaj Cetveli", g.Region.Name, MonthName(g.Month.Month()), g.Month.Year())
	_ = f.SetCellValue(sheetName, "A2", subtitle)
	_ = f.MergeCell(sheetName, "A2", lastCol+"2")
	_ = f.SetCellStyle(sheetName, "A2", lastCol+"2", titleStyle)

	headers := make([]string, 0, totalCols)
	headers = append(headers, "T.C. Kimlik No", "Adı Soyadı")
	for d := 1; d <= g.DaysInMonth; d++ {
		headers = append(headers, fmt.Sprintf("%d", d))
	}
	headers = append(headers, "Günlük Ücret", "Yol Yardımı", "Araç Sevk Ücreti")
	for c, v := range headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 3)
		_ = f.SetCellValue(sheetName, cell, v)
	}
	_ = f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	for i, row := range g.Rows {
		rowNum := i + 4
		idCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		nameCell, _ := excelize.CoordinatesToCellName(2, rowNum)
		_ = f.SetCellValue(sheetName, idCell, row.Employee.NationalID)
		_ = f.SetCellValue(sheetName, nameCell, row.Employee.Name)

		merged := 0
		if row.PreHire != nil {
			merged = row.PreHire.Days
			start, _ := excelize.CoordinatesToCellName(3, rowNum)
			end, _ := excelize.CoordinatesToCellName(2+merged, rowNum)
			_ = f.MergeCell(sheetName, start, end)
			_ = f.SetCellValue(sheetName, start, row.PreHire.Label)
			_ = f.SetCellStyle(sheetName, start, end, fillStyles[row.PreHire.Color])
		}
		for d := merged + 1; d <= g.DaysInMonth; d++ {
			cell, _ := excelize.CoordinatesToCellName(2+d, rowNum)
			ac := row.Cells[d-1]
			if ac.Symbol != "" {
				_ = f.SetCellValue(sheetName, cell, ac.Symbol)
			}
			if id, ok := fillStyles[ac.Color]; ok && ac.Color != domain.ColorNone {
				_ = f.SetCellStyle(sheetName, cell, cell, id)
			} else {
				_ = f.SetCellStyle(sheetName, cell, cell, dayStyle)
			}
		}

		money := []*float64{row.DailyWage, row.RoadAllowance, row.DrivingPay}
		for m, v := range money {
			cell, _ := excelize.CoordinatesToCellName(2+g.DaysInMonth+m+1, rowNum)
			if v != nil {
				_ = f.SetCellValue(sheetName, cell, *v)
			}
			_ = f.SetCellStyle(sheetName, cell, cell, moneyStyle)
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 16)
	_ = f.SetColWidth(sheetName, "B", "B", 28)
	firstDay, _ := excelize.ColumnNumberToName(3)
	lastDay, _ := excelize.ColumnNumberToName(2 + g.DaysInMonth)
	_ = f.SetColWidth(sheetName, firstDay, lastDay, 4)
	firstMoney, _ := excelize.ColumnNumberToName(2 + g.DaysInMonth + 1)
	_ = f.SetColWidth(sheetName, firstMoney, lastCol, 13)

	return f, nil
}
