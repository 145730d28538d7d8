package timesheet

import (
	"testing"
	"time"

	"github.com/YavuzBayraktar55/ayka-matrix-yeni-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApproved(t *testing.T) {
	approvedAt := date(2025, time.January, 2)
	tests := []struct {
		name string
		rec  domain.LeaveRecord
		want bool
	}{
		{"approval timestamp", domain.LeaveRecord{ApprovedAt: &approvedAt}, true},
		{"turkish status text", domain.LeaveRecord{StatusText: "Onaylandı"}, true},
		{"ascii status text", domain.LeaveRecord{StatusText: "onaylandi"}, true},
		{"english status", domain.LeaveRecord{StatusText: "Approved"}, true},
		{"numeric code 1", domain.LeaveRecord{StatusText: "1"}, true},
		{"numeric code 2", domain.LeaveRecord{StatusText: "2"}, true},
		{"pending", domain.LeaveRecord{StatusText: "Onay Bekliyor"}, false},
		{"rejected", domain.LeaveRecord{StatusText: "Reddedildi"}, false},
		{"empty", domain.LeaveRecord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Approved(tt.rec); got != tt.want {
				t.Errorf("Approved(%+v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestBuildOverlay(t *testing.T) {
	jan := date(2025, time.January, 1)
	approvedAt := date(2024, time.December, 20)

	t.Run("expands range and clamps to month", func(t *testing.T) {
		records := []domain.LeaveRecord{{
			EmployeeID: "11111111111",
			Type:       domain.LeavePaid,
			Start:      date(2024, time.December, 30),
			End:        date(2025, time.January, 2),
			ApprovedAt: &approvedAt,
		}}
		overlay := BuildOverlay(jan, 31, records)
		if len(overlay) != 2 {
			t.Fatalf("expected 2 overlay cells, got %d", len(overlay))
		}
		for _, day := range []int{1, 2} {
			if got := overlay[CellKey{EmployeeID: "11111111111", Day: day}]; got != domain.LeavePaid {
				t.Errorf("day %d = %v, want paid", day, got)
			}
		}
	})

	t.Run("unapproved records contribute nothing", func(t *testing.T) {
		records := []domain.LeaveRecord{{
			EmployeeID: "11111111111",
			Type:       domain.LeavePaid,
			Start:      date(2025, time.January, 3),
			End:        date(2025, time.January, 4),
			StatusText: "Onay Bekliyor",
		}}
		if overlay := BuildOverlay(jan, 31, records); len(overlay) != 0 {
			t.Errorf("expected empty overlay, got %d cells", len(overlay))
		}
	})

	t.Run("overlap resolves by type priority regardless of order", func(t *testing.T) {
		paid := domain.LeaveRecord{
			EmployeeID: "22222222222", Type: domain.LeavePaid,
			Start: date(2025, time.January, 10), End: date(2025, time.January, 12),
			ApprovedAt: &approvedAt,
		}
		annual := domain.LeaveRecord{
			EmployeeID: "22222222222", Type: domain.LeaveAnnual,
			Start: date(2025, time.January, 11), End: date(2025, time.January, 13),
			ApprovedAt: &approvedAt,
		}
		for _, records := range [][]domain.LeaveRecord{{paid, annual}, {annual, paid}} {
			overlay := BuildOverlay(jan, 31, records)
			if got := overlay[CellKey{EmployeeID: "22222222222", Day: 11}]; got != domain.LeaveAnnual {
				t.Errorf("day 11 = %v, want annual (priority)", got)
			}
			if got := overlay[CellKey{EmployeeID: "22222222222", Day: 10}]; got != domain.LeavePaid {
				t.Errorf("day 10 = %v, want paid", got)
			}
			if got := overlay[CellKey{EmployeeID: "22222222222", Day: 13}]; got != domain.LeaveAnnual {
				t.Errorf("day 13 = %v, want annual", got)
			}
		}
	})

	t.Run("same priority keeps earlier start", func(t *testing.T) {
		first := domain.LeaveRecord{
			EmployeeID: "33333333333", Type: domain.LeaveUnpaid,
			Start: date(2025, time.January, 5), End: date(2025, time.January, 8),
			ApprovedAt: &approvedAt,
		}
		second := domain.LeaveRecord{
			EmployeeID: "33333333333", Type: domain.LeaveUnpaid,
			Start: date(2025, time.January, 7), End: date(2025, time.January, 9),
			ApprovedAt: &approvedAt, ID: 99,
		}
		overlay := BuildOverlay(jan, 31, []domain.LeaveRecord{second, first})
		if got := overlay[CellKey{EmployeeID: "33333333333", Day: 7}]; got != domain.LeaveUnpaid {
			t.Errorf("day 7 = %v, want unpaid", got)
		}
	})

	t.Run("inverted range is skipped", func(t *testing.T) {
		records := []domain.LeaveRecord{{
			EmployeeID: "44444444444",
			Type:       domain.LeavePaid,
			Start:      date(2025, time.January, 10),
			End:        date(2025, time.January, 5),
			ApprovedAt: &approvedAt,
		}}
		if overlay := BuildOverlay(jan, 31, records); len(overlay) != 0 {
			t.Errorf("expected empty overlay for inverted range, got %d", len(overlay))
		}
	})
}

func TestLeaveCellMapping(t *testing.T) {
	tests := []struct {
		leave  domain.LeaveType
		symbol string
		color  domain.CellColor
	}{
		{domain.LeavePaid, domain.SymbolPaidLeave, domain.ColorYellow},
		{domain.LeaveUnpaid, domain.SymbolUnpaidLeave, domain.ColorRed},
		{domain.LeaveAnnual, domain.SymbolAnnualLeave, domain.ColorBlue},
		{domain.LeaveMedical, domain.SymbolMedical, domain.ColorGreen},
		{domain.LeaveOther, domain.SymbolUnpaidLeave, domain.ColorRed},
		{domain.LeaveType("sabbatical"), domain.SymbolUnpaidLeave, domain.ColorRed},
	}
	for _, tt := range tests {
		cell := domain.LeaveCell(tt.leave)
		if cell.Symbol != tt.symbol || cell.Color != tt.color {
			t.Errorf("LeaveCell(%v) = %+v, want symbol %q color %v", tt.leave, cell, tt.symbol, tt.color)
		}
	}
}
