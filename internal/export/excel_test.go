package export

import (
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

func sampleGrid() domain.Grid {
	month := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	wage := 950.0

	first := make([]domain.AttendanceCell, 31)
	first[0] = domain.AttendanceCell{Symbol: domain.SymbolHoliday, Color: domain.ColorYellow}
	first[1] = domain.AttendanceCell{Symbol: domain.SymbolPaidLeave, Color: domain.ColorYellow}
	first[2] = domain.AttendanceCell{Symbol: domain.SymbolAnnualLeave, Color: domain.ColorBlue}

	second := make([]domain.AttendanceCell, 31)
	second[10] = domain.AttendanceCell{Symbol: domain.SymbolMedical, Color: domain.ColorGreen}

	return domain.Grid{
		Region:      domain.Region{ID: 7, Name: "Sivas"},
		Month:       month,
		DaysInMonth: 31,
		Rows: []domain.AttendanceRow{
			{
				Employee:  domain.Employee{NationalID: "11111111111", Name: "Emine Kaya"},
				Cells:     first,
				DailyWage: &wage,
			},
			{
				Employee: domain.Employee{NationalID: "22222222222", Name: "Fatih Demir"},
				Cells:    second,
				PreHire:  &domain.MergedSpan{Days: 9, Label: "İşe giriş: 10.01.2025", Color: domain.ColorHighlight},
			},
		},
	}
}

func TestExcelEmptyGrid(t *testing.T) {
	if _, err := Excel(domain.Grid{}, "AYKA"); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("err = %v, want ErrEmptyGrid", err)
	}
}

func TestExcelLayout(t *testing.T) {
	g := sampleGrid()
	f, err := Excel(g, "AYKA İnşaat")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "AYKA İnşaat" {
		t.Errorf("A1 = %q", got)
	}
	if got := get("A2"); got != "Sivas — Ocak 2025 Puantaj Cetveli" {
		t.Errorf("A2 = %q", got)
	}

	// Column header: identifiers, then 1..31, then money columns.
	if got := get("A3"); got != "T.C. Kimlik No" {
		t.Errorf("A3 = %q", got)
	}
	if got := get("C3"); got != "1" {
		t.Errorf("C3 = %q", got)
	}
	lastDay, _ := excelize.CoordinatesToCellName(2+g.DaysInMonth, 3)
	if got := get(lastDay); got != "31" {
		t.Errorf("%s = %q, want 31", lastDay, got)
	}
	firstMoney, _ := excelize.CoordinatesToCellName(2+g.DaysInMonth+1, 3)
	if got := get(firstMoney); got != "Günlük Ücret" {
		t.Errorf("%s = %q", firstMoney, got)
	}

	// First employee row.
	if got := get("A4"); got != "11111111111" {
		t.Errorf("A4 = %q", got)
	}
	if got := get("C4"); got != domain.SymbolHoliday {
		t.Errorf("C4 = %q, want holiday symbol", got)
	}
	if got := get("E4"); got != domain.SymbolAnnualLeave {
		t.Errorf("E4 = %q, want annual leave symbol", got)
	}
	wageCell, _ := excelize.CoordinatesToCellName(2+g.DaysInMonth+1, 4)
	if got := get(wageCell); got != "950" {
		t.Errorf("%s = %q, want 950", wageCell, got)
	}

	// Second employee: day columns 1-9 merged into the hire note.
	if got := get("C5"); got != "İşe giriş: 10.01.2025" {
		t.Errorf("C5 = %q", got)
	}
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, m := range merges {
		if m.GetStartAxis() == "C5" && m.GetEndAxis() == "K5" {
			found = true
		}
	}
	if !found {
		t.Errorf("no C5:K5 merge for the pre-hire span, merges: %v", merges)
	}
	// Day 11 sits after the merge and must carry its own symbol.
	day11, _ := excelize.CoordinatesToCellName(2+11, 5)
	if got := get(day11); got != domain.SymbolMedical {
		t.Errorf("%s = %q, want medical symbol", day11, got)
	}
}

func TestExcelFilename(t *testing.T) {
	g := sampleGrid()
	if got := ExcelFilename(g); got != "puantaj_Sivas_Ocak_2025.xlsx" {
		t.Errorf("filename = %q", got)
	}
}
